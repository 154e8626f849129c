package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tableau/registry"
)

// Textures is the GPU texture backend. It implements registry.TextureUploader.
type Textures struct{}

// Upload creates a GPU texture from decoded pixel data and returns its handle.
// Three-channel images get an RGB8 internal format, four-channel RGBA8; the
// upload format is always RGBA since decoding normalizes to that.
func (Textures) Upload(img *registry.DecodedImage) (uint32, error) {
	if img == nil || len(img.Pixels) == 0 {
		return 0, fmt.Errorf("texture %q has no pixel data", imageName(img))
	}

	internalFormat := int32(gl.RGBA8)
	if img.Channels == 3 {
		internalFormat = gl.RGB8
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

// Bind attaches the texture to the given sampler unit.
func (Textures) Bind(unit int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Delete frees the GPU texture.
func (Textures) Delete(handle uint32) {
	if handle != 0 {
		gl.DeleteTextures(1, &handle)
	}
}

func imageName(img *registry.DecodedImage) string {
	if img == nil {
		return "<nil>"
	}
	return img.Name
}

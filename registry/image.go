package registry

import (
	"fmt"
	"image"
	"os"

	// Texture sources: PNG and JPEG from the standard library, BMP and TIFF
	// via golang.org/x/image.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodedImage is a CPU-side image ready for GPU upload.
// Pixels are RGBA8, 4 bytes per pixel, stored bottom-to-top so that row 0
// matches OpenGL's texture coordinate origin.
type DecodedImage struct {
	Name     string
	Width    int
	Height   int
	Channels int // source channel count: 3 (opaque) or 4 (with transparency)
	Pixels   []byte
}

// DecodeImage reads an image file and converts it for upload. Only 3- and
// 4-channel sources are accepted; anything else returns
// ErrUnsupportedFormat without decoding further.
func DecodeImage(path string) (*DecodedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("image %q (%s, %T): %d channel(s): %w",
			path, format, img, channels, ErrUnsupportedFormat)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	pixels := make([]byte, w*h*4)

	// Convert to RGBA8 and flip vertically in one pass.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := h - 1 - (y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			idx := (row*w + (x - bounds.Min.X)) * 4
			pixels[idx] = uint8(r >> 8)
			pixels[idx+1] = uint8(g >> 8)
			pixels[idx+2] = uint8(b >> 8)
			pixels[idx+3] = uint8(a >> 8)
		}
	}

	return &DecodedImage{
		Name:     path,
		Width:    w,
		Height:   h,
		Channels: channels,
		Pixels:   pixels,
	}, nil
}

// channelCount classifies a decoded image by its source channel layout.
// Go decoders do not expose the file's raw channel count, so grayscale and
// CMYK are recognised by concrete type and the RGB/RGBA split falls back on
// opacity: a fully opaque image carries no usable alpha channel.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.CMYK:
		return 0 // ink separations, not an RGB layout
	case *image.YCbCr:
		return 3
	}
	if op, ok := img.(interface{ Opaque() bool }); ok {
		if op.Opaque() {
			return 3
		}
		return 4
	}
	return 0
}

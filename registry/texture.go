// Package registry owns the scene's GPU textures and named materials and
// resolves them by tag at draw time.
package registry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// MaxTextureSlots caps the registry at the fixed-function texture unit
// count; every registered texture stays bound to its own unit for the whole
// scene.
const MaxTextureSlots = 16

var (
	// ErrUnsupportedFormat is returned for images that are not 3- or
	// 4-channel color.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrRegistryFull is returned when all texture slots are taken.
	ErrRegistryFull = errors.New("texture registry full")
)

// TextureUploader is the GPU seam of the registry. The OpenGL implementation
// lives in internal/opengl; tests substitute an in-memory fake.
type TextureUploader interface {
	// Upload creates a GPU texture from img and returns its handle.
	Upload(img *DecodedImage) (uint32, error)
	// Bind binds handle to the given texture unit.
	Bind(unit int, handle uint32)
	// Delete releases the GPU texture exactly once.
	Delete(handle uint32)
}

// TextureEntry associates a tag with a GPU texture handle. The entry's index
// in the registry is its texture unit.
type TextureEntry struct {
	Tag    string
	Handle uint32
}

// TextureRegistry loads images into GPU textures and resolves tags to
// texture units. It is driven from the render thread only and needs no
// locking. Entries keep registration order: the first loaded texture lives
// on unit 0.
type TextureRegistry struct {
	uploader TextureUploader
	entries  []TextureEntry
	log      *zap.Logger
}

func NewTextureRegistry(uploader TextureUploader, log *zap.Logger) *TextureRegistry {
	return &TextureRegistry{
		uploader: uploader,
		log:      log.Named("textures"),
	}
}

// Load decodes the image at path and registers it under tag. On any failure
// the registry is left unchanged; the error is logged here and returned so
// the caller can decide whether to continue. A load failure is never fatal
// to scene construction.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextureSlots {
		err := fmt.Errorf("loading %q as %q: %w", path, tag, ErrRegistryFull)
		r.log.Warn("Texture rejected", zap.String("tag", tag), zap.Error(err))
		return err
	}

	img, err := DecodeImage(path)
	if err != nil {
		r.log.Warn("Texture load failed",
			zap.String("tag", tag), zap.String("path", path), zap.Error(err))
		return err
	}

	handle, err := r.uploader.Upload(img)
	if err != nil {
		err = fmt.Errorf("upload %q: %w", path, err)
		r.log.Warn("Texture upload failed", zap.String("tag", tag), zap.Error(err))
		return err
	}

	r.entries = append(r.entries, TextureEntry{Tag: tag, Handle: handle})
	r.log.Info("Texture loaded",
		zap.String("tag", tag),
		zap.String("path", path),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
		zap.Int("unit", len(r.entries)-1))
	return nil
}

// BindAll binds every registered texture to the unit matching its
// registration index. The shader's sampler uniforms consume this implicit
// order-dependent mapping, so call it once after all loads.
func (r *TextureRegistry) BindAll() {
	for i, entry := range r.entries {
		r.uploader.Bind(i, entry.Handle)
	}
}

// FindUnit returns the texture unit registered for tag, or -1 when the tag
// is unknown. First match wins on duplicate tags.
func (r *TextureRegistry) FindUnit(tag string) int {
	for i, entry := range r.entries {
		if entry.Tag == tag {
			return i
		}
	}
	return -1
}

// Len reports the number of registered textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// Release deletes every registered GPU texture exactly once and empties the
// registry. Safe to call more than once.
func (r *TextureRegistry) Release() {
	for _, entry := range r.entries {
		r.uploader.Delete(entry.Handle)
	}
	r.entries = nil
}

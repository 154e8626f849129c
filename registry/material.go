package registry

import (
	"tableau/math"
)

// Material is a named set of Phong lighting-response properties, applied to
// a surface independently of its texture. Immutable after definition.
type Material struct {
	Tag       string
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// MaterialRegistry holds the materials defined during scene setup.
// Definitions are append-only; duplicate tags are allowed and resolve
// first-match-wins, matching texture lookup semantics.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define registers a material under tag. Uniqueness is not enforced.
func (r *MaterialRegistry) Define(tag string, diffuse, specular math.Vec3, shininess float32) {
	r.materials = append(r.materials, Material{
		Tag:       tag,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	})
}

// Find returns the first material registered under tag. ok is false when no
// material matches.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len reports the number of defined materials.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}

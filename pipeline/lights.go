package pipeline

import (
	"fmt"

	"tableau/math"
)

// MaxPointLights is the point light array size in the shader contract.
const MaxPointLights = 5

// DirectionalLight is a single scene-wide light with parallel rays.
type DirectionalLight struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
}

// PointLight is a positional light following the shader's indexed array
// convention.
type PointLight struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// SpotLight is a cone light with distance attenuation and soft edges.
// CutOffDeg and OuterCutOffDeg are half-angles in degrees; their cosines are
// what the shader consumes.
type SpotLight struct {
	Position  math.Vec3
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOffDeg      float32
	OuterCutOffDeg float32
}

// SetLightingEnabled toggles the shader's lighting path. When disabled,
// surfaces render with their raw texture or flat color.
func (p *Pipeline) SetLightingEnabled(enabled bool) {
	p.prog.SetBool(p.cfg.UseLighting, enabled)
}

// SetDirectionalLight uploads the directional light and marks it active.
func (p *Pipeline) SetDirectionalLight(l DirectionalLight) {
	prefix := p.cfg.DirectionalLight
	p.prog.SetVec3(field(prefix, "direction"), l.Direction)
	p.prog.SetVec3(field(prefix, "ambient"), l.Ambient)
	p.prog.SetVec3(field(prefix, "diffuse"), l.Diffuse)
	p.prog.SetVec3(field(prefix, "specular"), l.Specular)
	p.prog.SetBool(field(prefix, "bActive"), true)
}

// SetPointLight uploads the point light at the given array index and marks
// it active. Index must be in [0, MaxPointLights).
func (p *Pipeline) SetPointLight(index int, l PointLight) error {
	if index < 0 || index >= MaxPointLights {
		return fmt.Errorf("point light index %d out of range [0,%d)", index, MaxPointLights)
	}
	prefix := p.cfg.PointLights
	p.prog.SetVec3(indexed(prefix, index, "position"), l.Position)
	p.prog.SetVec3(indexed(prefix, index, "ambient"), l.Ambient)
	p.prog.SetVec3(indexed(prefix, index, "diffuse"), l.Diffuse)
	p.prog.SetVec3(indexed(prefix, index, "specular"), l.Specular)
	p.prog.SetBool(indexed(prefix, index, "bActive"), true)
	return nil
}

// SetSpotLight uploads the spot light and marks it active. Cutoff angles are
// converted to cosines here so the shader compares against dot products
// directly.
func (p *Pipeline) SetSpotLight(l SpotLight) {
	prefix := p.cfg.SpotLight
	p.prog.SetVec3(field(prefix, "position"), l.Position)
	p.prog.SetVec3(field(prefix, "direction"), l.Direction)
	p.prog.SetVec3(field(prefix, "ambient"), l.Ambient)
	p.prog.SetVec3(field(prefix, "diffuse"), l.Diffuse)
	p.prog.SetVec3(field(prefix, "specular"), l.Specular)
	p.prog.SetFloat(field(prefix, "constant"), l.Constant)
	p.prog.SetFloat(field(prefix, "linear"), l.Linear)
	p.prog.SetFloat(field(prefix, "quadratic"), l.Quadratic)
	p.prog.SetFloat(field(prefix, "cutOff"), cosDeg(l.CutOffDeg))
	p.prog.SetFloat(field(prefix, "outerCutOff"), cosDeg(l.OuterCutOffDeg))
	p.prog.SetBool(field(prefix, "bActive"), true)
}

func cosDeg(deg float32) float32 {
	return math.Cos(math.Radians(deg))
}

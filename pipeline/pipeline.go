// Package pipeline pushes per-draw uniform state (transform, texture or flat
// color, material, UV scale, lights) to the active shader program. Uniform
// state persists between draws; callers fully specify what they need before
// each mesh draw, there is no automatic reset.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"tableau/math"
	"tableau/registry"
)

// ProgramState writes uniform values to a shader program. The OpenGL
// implementation lives in internal/opengl; tests substitute a recording fake.
type ProgramState interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, x, y float32)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, x, y, z, w float32)
	SetMat4(name string, m math.Mat4)
}

// TextureResolver resolves a texture tag to its sampler unit (-1 when unknown).
type TextureResolver interface {
	FindUnit(tag string) int
}

// MaterialResolver resolves a material tag to its properties.
type MaterialResolver interface {
	Find(tag string) (registry.Material, bool)
	Len() int
}

// UniformConfig names every uniform the pipeline writes. The pipeline takes
// it at construction so the shader contract lives in one enumerable table
// rather than in scattered string constants.
type UniformConfig struct {
	Model        string
	View         string
	Projection   string
	ViewPosition string

	UseTexture     string
	UseLighting    string
	Color          string
	TextureSampler string
	UVScale        string

	MaterialDiffuse   string
	MaterialSpecular  string
	MaterialShininess string

	DirectionalLight string // struct prefix, e.g. "directionalLight"
	PointLights      string // array prefix, e.g. "pointLights"
	SpotLight        string // struct prefix, e.g. "spotLight"
}

// DefaultUniformConfig matches the uniform names in internal/opengl's shaders.
func DefaultUniformConfig() UniformConfig {
	return UniformConfig{
		Model:        "model",
		View:         "view",
		Projection:   "projection",
		ViewPosition: "viewPosition",

		UseTexture:     "bUseTexture",
		UseLighting:    "bUseLighting",
		Color:          "objectColor",
		TextureSampler: "objectTexture",
		UVScale:        "UVscale",

		MaterialDiffuse:   "material.diffuseColor",
		MaterialSpecular:  "material.specularColor",
		MaterialShininess: "material.shininess",

		DirectionalLight: "directionalLight",
		PointLights:      "pointLights",
		SpotLight:        "spotLight",
	}
}

// Pipeline configures shader uniform state for the next mesh draw.
type Pipeline struct {
	prog      ProgramState
	cfg       UniformConfig
	textures  TextureResolver
	materials MaterialResolver
	log       *zap.Logger
}

func New(prog ProgramState, textures TextureResolver, materials MaterialResolver, cfg UniformConfig, log *zap.Logger) *Pipeline {
	return &Pipeline{
		prog:      prog,
		cfg:       cfg,
		textures:  textures,
		materials: materials,
		log:       log.Named("pipeline"),
	}
}

// SetTransform composes the model matrix from scale, XYZ rotation in
// degrees, and position, and uploads it. See math.ComposeModel for the
// composition order contract.
func (p *Pipeline) SetTransform(scale, rotationDeg, position math.Vec3) {
	p.ApplyModel(math.ComposeModel(scale, rotationDeg, position))
}

// ApplyModel uploads a prebuilt model matrix. Use this when the fixed
// ComposeModel order does not fit and the caller multiplied externally.
func (p *Pipeline) ApplyModel(m math.Mat4) {
	p.prog.SetMat4(p.cfg.Model, m)
}

// SetView uploads the view matrix and camera position for specular lighting.
func (p *Pipeline) SetView(view math.Mat4, viewPosition math.Vec3) {
	p.prog.SetMat4(p.cfg.View, view)
	p.prog.SetVec3(p.cfg.ViewPosition, viewPosition)
}

// SetProjection uploads the projection matrix.
func (p *Pipeline) SetProjection(projection math.Mat4) {
	p.prog.SetMat4(p.cfg.Projection, projection)
}

// SetColor disables texture sampling for the next draw and uploads a flat
// RGBA color.
func (p *Pipeline) SetColor(r, g, b, a float32) {
	p.prog.SetBool(p.cfg.UseTexture, false)
	p.prog.SetVec4(p.cfg.Color, r, g, b, a)
}

// SetTexture enables texture sampling and uploads the sampler unit resolved
// through the registry. An unregistered tag uploads unit -1; the shader
// tolerates it but the draw is a caller contract violation, so it is logged
// at debug level rather than failed.
func (p *Pipeline) SetTexture(tag string) {
	p.prog.SetBool(p.cfg.UseTexture, true)
	unit := p.textures.FindUnit(tag)
	if unit < 0 {
		p.log.Debug("Texture tag not registered", zap.String("tag", tag))
	}
	p.prog.SetInt(p.cfg.TextureSampler, int32(unit))
}

// SetMaterial uploads the lighting-response properties registered under tag.
// A no-op when no materials are registered or the tag is unknown.
func (p *Pipeline) SetMaterial(tag string) {
	if p.materials.Len() == 0 {
		return
	}
	mat, ok := p.materials.Find(tag)
	if !ok {
		p.log.Debug("Material tag not registered", zap.String("tag", tag))
		return
	}
	p.prog.SetVec3(p.cfg.MaterialDiffuse, mat.Diffuse)
	p.prog.SetVec3(p.cfg.MaterialSpecular, mat.Specular)
	p.prog.SetFloat(p.cfg.MaterialShininess, mat.Shininess)
}

// SetUVScale uploads the texture coordinate scale factor.
func (p *Pipeline) SetUVScale(u, v float32) {
	p.prog.SetVec2(p.cfg.UVScale, u, v)
}

// field joins a struct prefix and field name, e.g. "spotLight.cutOff".
func field(prefix, name string) string {
	return prefix + "." + name
}

// indexed joins an array prefix, index, and field, e.g. "pointLights[2].ambient".
func indexed(prefix string, i int, name string) string {
	return fmt.Sprintf("%s[%d].%s", prefix, i, name)
}

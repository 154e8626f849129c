package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tableau/math"
	"tableau/registry"
)

// recordingProgram captures every uniform write by name.
type recordingProgram struct {
	values map[string]interface{}
}

func newRecordingProgram() *recordingProgram {
	return &recordingProgram{values: make(map[string]interface{})}
}

func (r *recordingProgram) SetBool(name string, v bool)       { r.values[name] = v }
func (r *recordingProgram) SetInt(name string, v int32)       { r.values[name] = v }
func (r *recordingProgram) SetFloat(name string, v float32)   { r.values[name] = v }
func (r *recordingProgram) SetVec2(name string, x, y float32) { r.values[name] = [2]float32{x, y} }
func (r *recordingProgram) SetVec3(name string, v math.Vec3)  { r.values[name] = v }
func (r *recordingProgram) SetVec4(name string, x, y, z, w float32) {
	r.values[name] = [4]float32{x, y, z, w}
}
func (r *recordingProgram) SetMat4(name string, m math.Mat4) { r.values[name] = m }

// unitMap is a stub texture resolver.
type unitMap map[string]int

func (u unitMap) FindUnit(tag string) int {
	if unit, ok := u[tag]; ok {
		return unit
	}
	return -1
}

func newTestPipeline(units unitMap, mats *registry.MaterialRegistry) (*Pipeline, *recordingProgram) {
	if mats == nil {
		mats = registry.NewMaterialRegistry()
	}
	prog := newRecordingProgram()
	return New(prog, units, mats, DefaultUniformConfig(), zap.NewNop()), prog
}

func TestSetColorDisablesTexturing(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	p.SetColor(0.9, 0.1, 0.1, 1.0)

	assert.Equal(t, false, prog.values["bUseTexture"])
	assert.Equal(t, [4]float32{0.9, 0.1, 0.1, 1.0}, prog.values["objectColor"])
}

func TestSetTextureUploadsResolvedUnit(t *testing.T) {
	p, prog := newTestPipeline(unitMap{"floor": 0, "label": 3}, nil)

	p.SetTexture("label")

	assert.Equal(t, true, prog.values["bUseTexture"])
	assert.Equal(t, int32(3), prog.values["objectTexture"])
}

func TestSetTextureUnknownTagUploadsMinusOne(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	p.SetTexture("missing")

	assert.Equal(t, true, prog.values["bUseTexture"])
	assert.Equal(t, int32(-1), prog.values["objectTexture"])
}

func TestSetMaterialUploadsProperties(t *testing.T) {
	mats := registry.NewMaterialRegistry()
	mats.Define("glass", math.NewVec3(0.6, 0.7, 0.8), math.NewVec3(0.9, 0.9, 1.0), 85)
	p, prog := newTestPipeline(unitMap{}, mats)

	p.SetMaterial("glass")

	assert.Equal(t, math.NewVec3(0.6, 0.7, 0.8), prog.values["material.diffuseColor"])
	assert.Equal(t, math.NewVec3(0.9, 0.9, 1.0), prog.values["material.specularColor"])
	assert.Equal(t, float32(85), prog.values["material.shininess"])
}

func TestSetMaterialUnknownTagIsNoOp(t *testing.T) {
	mats := registry.NewMaterialRegistry()
	mats.Define("wood", math.NewVec3(0.6, 0.4, 0.2), math.NewVec3(0.2, 0.1, 0.1), 10)
	p, prog := newTestPipeline(unitMap{}, mats)

	p.SetMaterial("chrome")

	assert.NotContains(t, prog.values, "material.diffuseColor")
}

func TestSetMaterialEmptyRegistryIsNoOp(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	p.SetMaterial("glass")

	assert.Empty(t, prog.values)
}

func TestSetTransformUploadsComposedModel(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	scale := math.NewVec3(2, 1, 2)
	rot := math.NewVec3(0, 45, 0)
	pos := math.NewVec3(0, 3, -1)
	p.SetTransform(scale, rot, pos)

	assert.Equal(t, math.ComposeModel(scale, rot, pos), prog.values["model"])
}

func TestStatePersistsUntilOverwritten(t *testing.T) {
	p, prog := newTestPipeline(unitMap{"smile": 5}, nil)

	p.SetColor(0, 1, 0, 1)
	assert.Equal(t, false, prog.values["bUseTexture"])

	// The next draw switches to texturing; the color uniform simply goes stale.
	p.SetTexture("smile")
	assert.Equal(t, true, prog.values["bUseTexture"])
	assert.Equal(t, [4]float32{0, 1, 0, 1}, prog.values["objectColor"])
}

func TestSetUVScale(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	p.SetUVScale(2, 3)

	assert.Equal(t, [2]float32{2, 3}, prog.values["UVscale"])
}

func TestSetDirectionalLight(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	p.SetDirectionalLight(DirectionalLight{
		Direction: math.NewVec3(-0.05, -0.3, -0.1),
		Ambient:   math.NewVec3(0.05, 0.05, 0.05),
		Diffuse:   math.NewVec3(0.6, 0.6, 0.6),
		Specular:  math.Vec3Zero,
	})

	assert.Equal(t, math.NewVec3(-0.05, -0.3, -0.1), prog.values["directionalLight.direction"])
	assert.Equal(t, true, prog.values["directionalLight.bActive"])
}

func TestSetPointLightIndexed(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	l := PointLight{
		Position: math.NewVec3(-4, 8, 0),
		Ambient:  math.NewVec3(0.05, 0.05, 0.05),
		Diffuse:  math.NewVec3(0.3, 0.3, 0.3),
		Specular: math.NewVec3(0.1, 0.1, 0.1),
	}
	require.NoError(t, p.SetPointLight(2, l))

	assert.Equal(t, math.NewVec3(-4, 8, 0), prog.values["pointLights[2].position"])
	assert.Equal(t, true, prog.values["pointLights[2].bActive"])
	assert.NotContains(t, prog.values, "pointLights[0].position")
}

func TestSetPointLightOutOfRange(t *testing.T) {
	p, _ := newTestPipeline(unitMap{}, nil)

	assert.Error(t, p.SetPointLight(-1, PointLight{}))
	assert.Error(t, p.SetPointLight(MaxPointLights, PointLight{}))
}

func TestSetSpotLightUploadsCutoffCosines(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	p.SetSpotLight(SpotLight{
		Position:       math.NewVec3(0, 6, 0),
		Direction:      math.NewVec3(0, -1, 0),
		Constant:       1.0,
		Linear:         0.09,
		Quadratic:      0.032,
		CutOffDeg:      42.5,
		OuterCutOffDeg: 48.0,
	})

	assert.InDelta(t, float64(math.Cos(math.Radians(42.5))), float64(prog.values["spotLight.cutOff"].(float32)), 1e-6)
	assert.InDelta(t, float64(math.Cos(math.Radians(48.0))), float64(prog.values["spotLight.outerCutOff"].(float32)), 1e-6)
	assert.Equal(t, true, prog.values["spotLight.bActive"])
}

func TestSetLightingEnabled(t *testing.T) {
	p, prog := newTestPipeline(unitMap{}, nil)

	p.SetLightingEnabled(true)
	assert.Equal(t, true, prog.values["bUseLighting"])

	p.SetLightingEnabled(false)
	assert.Equal(t, false, prog.values["bUseLighting"])
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableau/math"
)

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()

	assert.Equal(t, math.Vec3One, tr.Scale)
	assert.Equal(t, math.Vec3Zero, tr.RotationDeg)
	assert.Equal(t, math.Vec3Zero, tr.Position)
	assert.Equal(t, math.Mat4Identity(), tr.Matrix())
}

func TestTransformMatrixComposition(t *testing.T) {
	tr := Transform{
		Scale:       math.NewVec3(2, 3, 4),
		RotationDeg: math.NewVec3(30, 45, 60),
		Position:    math.NewVec3(5, -6, 7),
	}

	expected := math.ComposeModel(tr.Scale, tr.RotationDeg, tr.Position)
	assert.Equal(t, expected, tr.Matrix())
}

func TestDefaultWindowConfig(t *testing.T) {
	cfg := DefaultWindowConfig()

	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.True(t, cfg.VSync)
}

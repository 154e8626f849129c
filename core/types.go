package core

import (
	"tableau/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Transform holds the per-draw placement parameters: scale factors, XYZ
// rotation in degrees, and a world-space position. It is recomputed per draw
// call and never persisted.
type Transform struct {
	Scale       math.Vec3
	RotationDeg math.Vec3
	Position    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Scale:    math.Vec3One,
		Position: math.Vec3Zero,
	}
}

// Matrix composes the model matrix. Composition order is fixed by
// math.ComposeModel: scale, then X/Y/Z rotation, then translation.
func (t Transform) Matrix() math.Mat4 {
	return math.ComposeModel(t.Scale, t.RotationDeg, t.Position)
}

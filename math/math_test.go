package math

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func vecNear(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	if math.Abs(float64(got.X-want.X)) > epsilon ||
		math.Abs(float64(got.Y-want.Y)) > epsilon ||
		math.Abs(float64(got.Z-want.Z)) > epsilon {
		t.Errorf("%s: expected (%v,%v,%v), got (%v,%v,%v)",
			name, want.X, want.Y, want.Z, got.X, got.Y, got.Z)
	}
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got := v1.Add(v2); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := v2.Sub(v1); got != NewVec3(3, 3, 3) {
		t.Errorf("Sub: got %v", got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	// Right x Up = Back in a right-handed system
	if got := NewVec3(1, 0, 0).Cross(Vec3Up); got != NewVec3(0, 0, 1) {
		t.Errorf("Cross: got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := NewVec3(3, 0, 4).Normalize()
	if math.Abs(float64(n.Length()-1)) > epsilon {
		t.Errorf("Normalize: expected length 1, got %v", n.Length())
	}
	// Zero vector stays zero rather than dividing by zero
	if got := Vec3Zero.Normalize(); got != Vec3Zero {
		t.Errorf("Normalize zero: got %v", got)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4MulOrder(t *testing.T) {
	// a.Mul(b) applies a first: translate after scaling must not scale the offset
	m := Mat4Scale(NewVec3(2, 2, 2)).Mul(Mat4Translation(NewVec3(1, 0, 0)))
	vecNear(t, "scale then translate", m.TransformPoint(NewVec3(1, 1, 1)), NewVec3(3, 2, 2))

	// Reversed order scales the translation as well
	m = Mat4Translation(NewVec3(1, 0, 0)).Mul(Mat4Scale(NewVec3(2, 2, 2)))
	vecNear(t, "translate then scale", m.TransformPoint(NewVec3(1, 1, 1)), NewVec3(4, 2, 2))
}

func TestMat4Rotations(t *testing.T) {
	halfPi := float32(math.Pi / 2)

	vecNear(t, "rotX: +Y to +Z", Mat4RotationX(halfPi).TransformPoint(NewVec3(0, 1, 0)), NewVec3(0, 0, 1))
	vecNear(t, "rotY: +Z to +X", Mat4RotationY(halfPi).TransformPoint(NewVec3(0, 0, 1)), NewVec3(1, 0, 0))
	vecNear(t, "rotZ: +X to +Y", Mat4RotationZ(halfPi).TransformPoint(NewVec3(1, 0, 0)), NewVec3(0, 1, 0))
}

func TestComposeModelIdentity(t *testing.T) {
	m := ComposeModel(Vec3One, Vec3Zero, Vec3Zero)
	ident := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(m[i][j]-ident[i][j])) > epsilon {
				t.Errorf("ComposeModel identity: [%d][%d] = %v", i, j, m[i][j])
			}
		}
	}
}

func TestComposeModelOrder(t *testing.T) {
	scale := NewVec3(2, 3, 4)
	rotation := NewVec3(30, 45, 60)
	position := NewVec3(5, -6, 7)
	point := NewVec3(1, 2, 3)

	// Manual composition: scale, rotate X, rotate Y, rotate Z, translate
	expected := point
	expected = Mat4Scale(scale).TransformPoint(expected)
	expected = Mat4RotationX(Radians(rotation.X)).TransformPoint(expected)
	expected = Mat4RotationY(Radians(rotation.Y)).TransformPoint(expected)
	expected = Mat4RotationZ(Radians(rotation.Z)).TransformPoint(expected)
	expected = Mat4Translation(position).TransformPoint(expected)

	got := ComposeModel(scale, rotation, position).TransformPoint(point)
	vecNear(t, "ComposeModel", got, expected)
}

func TestComposeModelTranslationLast(t *testing.T) {
	// The translation must not be affected by scale or rotation
	m := ComposeModel(NewVec3(10, 10, 10), NewVec3(0, 90, 0), NewVec3(1, 2, 3))
	vecNear(t, "origin lands on position", m.TransformPoint(Vec3Zero), NewVec3(1, 2, 3))
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 2, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	// The view matrix maps the eye position to the origin
	vecNear(t, "LookAt eye", m.TransformPoint(eye), Vec3Zero)

	// The target ends up on the negative Z axis in view space
	at := m.TransformPoint(Vec3Zero)
	if at.Z >= 0 {
		t.Errorf("LookAt: expected target in front of the camera (z < 0), got %v", at.Z)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(Radians(45), 16.0/9.0, 0.1, 100)
	if m[0][0] == 0 || m[1][1] == 0 {
		t.Error("Perspective: expected non-zero focal scales")
	}
	if m[2][3] != -1 {
		t.Errorf("Perspective: expected w' = -z, got m[2][3] = %v", m[2][3])
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(float64(got)-math.Pi) > epsilon {
		t.Errorf("Radians(180): got %v", got)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4RotationY(0.5)
	m2 := Mat4Translation(NewVec3(1, 2, 3))
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkComposeModel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ComposeModel(Vec3One, NewVec3(10, 20, 30), NewVec3(1, 2, 3))
	}
}

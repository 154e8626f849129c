package math

import "math"

// Mat4 is a 4x4 transform stored ready for glUniformMatrix4fv: m[c][r] is
// row r of column c, so &m[0][0] can be uploaded without transposing.
// a.Mul(b) returns the transform that applies a first, then b.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// TransformPoint applies the matrix to a point (w = 1).
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	r := v.ToVec4(1).MulMat(m)
	if r.W != 0 && r.W != 1 {
		return Vec3{X: r.X / r.W, Y: r.Y / r.W, Z: r.Z / r.W}
	}
	return r.ToVec3()
}

func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = t.X
	m[3][1] = t.Y
	m[3][2] = t.Z
	return m
}

func Mat4Scale(s Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = s.X
	m[1][1] = s.Y
	m[2][2] = s.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180.0
}

// Cos is a float32 cosine for angles in radians.
func Cos(rad float32) float32 {
	return float32(math.Cos(float64(rad)))
}

// ComposeModel builds a model matrix from scale factors, intrinsic XYZ Euler
// rotation in degrees, and a translation. Reading the product column-vector
// style it is Translation * Rz * Ry * Rx * Scale: scale is applied first,
// then the X, Y, and Z rotations in that order, then the translation.
// Callers needing a different composition must multiply externally; this
// order is a contract, not an implementation detail.
func ComposeModel(scale, rotationDeg, position Vec3) Mat4 {
	return Mat4Scale(scale).
		Mul(Mat4RotationX(Radians(rotationDeg.X))).
		Mul(Mat4RotationY(Radians(rotationDeg.Y))).
		Mul(Mat4RotationZ(Radians(rotationDeg.Z))).
		Mul(Mat4Translation(position))
}

func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	tanHalfFovy := float32(math.Tan(float64(fovY) / 2))

	var m Mat4
	m[0][0] = 1 / (aspect * tanHalfFovy)
	m[1][1] = 1 / tanHalfFovy
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		{xAxis.X, yAxis.X, zAxis.X, 0},
		{xAxis.Y, yAxis.Y, zAxis.Y, 0},
		{xAxis.Z, yAxis.Z, zAxis.Z, 0},
		{-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1},
	}
}

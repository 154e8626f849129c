package scene

import (
	stdmath "math"

	"tableau/core"
	"tableau/math"
)

var vec3Down = math.NewVec3(0, -1, 0)

// CreatePlane generates a flat plane in the XZ plane, centered at the origin,
// facing up. UVs span [0,1] across the full extent.
func CreatePlane(width, depth float32, subdivisions int) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfD := depth / 2.0

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)

			vertices = append(vertices, core.Vertex{
				Position: math.NewVec3(-halfW+u*width, 0, -halfD+v*depth),
				Normal:   math.Vec3Up,
				UV:       math.NewVec2(u, v),
			})
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return NewMesh("Plane", vertices, indices)
}

// CreateBox generates an axis-aligned box centered at the origin with
// per-face normals and UVs.
func CreateBox(width, height, depth float32) *Mesh {
	w := width / 2
	h := height / 2
	d := depth / 2

	type face struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}
	faces := []face{
		{math.NewVec3(0, 0, 1), [4]math.Vec3{
			math.NewVec3(-w, -h, d), math.NewVec3(w, -h, d),
			math.NewVec3(w, h, d), math.NewVec3(-w, h, d)}},
		{math.NewVec3(0, 0, -1), [4]math.Vec3{
			math.NewVec3(w, -h, -d), math.NewVec3(-w, -h, -d),
			math.NewVec3(-w, h, -d), math.NewVec3(w, h, -d)}},
		{math.NewVec3(0, 1, 0), [4]math.Vec3{
			math.NewVec3(-w, h, d), math.NewVec3(w, h, d),
			math.NewVec3(w, h, -d), math.NewVec3(-w, h, -d)}},
		{math.NewVec3(0, -1, 0), [4]math.Vec3{
			math.NewVec3(-w, -h, -d), math.NewVec3(w, -h, -d),
			math.NewVec3(w, -h, d), math.NewVec3(-w, -h, d)}},
		{math.NewVec3(1, 0, 0), [4]math.Vec3{
			math.NewVec3(w, -h, d), math.NewVec3(w, -h, -d),
			math.NewVec3(w, h, -d), math.NewVec3(w, h, d)}},
		{math.NewVec3(-1, 0, 0), [4]math.Vec3{
			math.NewVec3(-w, -h, -d), math.NewVec3(-w, -h, d),
			math.NewVec3(-w, h, d), math.NewVec3(-w, h, -d)}},
	}

	uvs := [4]math.Vec2{
		math.NewVec2(0, 0), math.NewVec2(1, 0),
		math.NewVec2(1, 1), math.NewVec2(0, 1),
	}

	var vertices []core.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, core.Vertex{
				Position: c,
				Normal:   f.normal,
				UV:       uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return NewMesh("Box", vertices, indices)
}

// CreateCylinder generates a capped cylinder along the Y axis, centered at
// the origin.
func CreateCylinder(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2.0

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := math.NewVec3(cosT, 0, sinT)
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: math.NewVec3(cosT*radius, -halfHeight, sinT*radius),
			Normal:   normal,
			UV:       math.NewVec2(u, 0),
		})
		vertices = append(vertices, core.Vertex{
			Position: math.NewVec3(cosT*radius, halfHeight, sinT*radius),
			Normal:   normal,
			UV:       math.NewVec2(u, 1),
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendCap(&vertices, &indices, radius, halfHeight, segments, true)
	appendCap(&vertices, &indices, radius, -halfHeight, segments, false)

	return NewMesh("Cylinder", vertices, indices)
}

// appendCap adds a fan-triangulated disc at the given height. up selects the
// facing direction and winding.
func appendCap(vertices *[]core.Vertex, indices *[]uint32, radius, y float32, segments int, up bool) {
	normal := math.Vec3Up
	if !up {
		normal = vec3Down
	}

	center := uint32(len(*vertices))
	*vertices = append(*vertices, core.Vertex{
		Position: math.NewVec3(0, y, 0),
		Normal:   normal,
		UV:       math.NewVec2(0.5, 0.5),
	})

	for i := 0; i < segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		nextTheta := float64(i+1) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		cosN := float32(stdmath.Cos(nextTheta))
		sinN := float32(stdmath.Sin(nextTheta))

		v1 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: math.NewVec3(cosT*radius, y, sinT*radius),
			Normal:   normal,
			UV:       math.NewVec2(cosT*0.5+0.5, sinT*0.5+0.5),
		})
		v2 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: math.NewVec3(cosN*radius, y, sinN*radius),
			Normal:   normal,
			UV:       math.NewVec2(cosN*0.5+0.5, sinN*0.5+0.5),
		})
		if up {
			*indices = append(*indices, center, v1, v2)
		} else {
			*indices = append(*indices, center, v2, v1)
		}
	}
}

// CreateCone generates a cone along the Y axis with its tip at +height/2.
func CreateCone(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2.0

	slopeAngle := float32(stdmath.Atan2(float64(radius), float64(height)))
	ny := float32(stdmath.Cos(float64(slopeAngle)))
	nr := float32(stdmath.Sin(float64(slopeAngle)))

	tipIdx := uint32(0)
	vertices = append(vertices, core.Vertex{
		Position: math.NewVec3(0, halfHeight, 0),
		Normal:   math.Vec3Up,
		UV:       math.NewVec2(0.5, 0),
	})

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := math.NewVec3(cosT*nr, ny, sinT*nr).Normalize()

		vertices = append(vertices, core.Vertex{
			Position: math.NewVec3(cosT*radius, -halfHeight, sinT*radius),
			Normal:   normal,
			UV:       math.NewVec2(float32(i)/float32(segments), 1),
		})
	}

	for i := 0; i < segments; i++ {
		indices = append(indices, tipIdx, uint32(i+1), uint32(i+2))
	}

	appendCap(&vertices, &indices, radius, -halfHeight, segments, false)

	return NewMesh("Cone", vertices, indices)
}

// CreatePrism generates a triangular prism: an isosceles triangle in the XY
// plane (apex up) extruded along Z, centered at the origin.
func CreatePrism(width, height, depth float32) *Mesh {
	w := width / 2
	h := height / 2
	d := depth / 2

	leftNormal := math.NewVec3(-height, w, 0).Normalize()
	rightNormal := math.NewVec3(height, w, 0).Normalize()

	var vertices []core.Vertex
	var indices []uint32

	quad := func(normal math.Vec3, a, b, c, e math.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: normal, UV: math.NewVec2(0, 0)},
			core.Vertex{Position: b, Normal: normal, UV: math.NewVec2(1, 0)},
			core.Vertex{Position: c, Normal: normal, UV: math.NewVec2(1, 1)},
			core.Vertex{Position: e, Normal: normal, UV: math.NewVec2(0, 1)},
		)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	tri := func(normal math.Vec3, a, b, c math.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: normal, UV: math.NewVec2(0, 0)},
			core.Vertex{Position: b, Normal: normal, UV: math.NewVec2(1, 0)},
			core.Vertex{Position: c, Normal: normal, UV: math.NewVec2(0.5, 1)},
		)
		indices = append(indices, base, base+1, base+2)
	}

	// Front and back triangle faces
	tri(math.NewVec3(0, 0, 1),
		math.NewVec3(-w, -h, d), math.NewVec3(w, -h, d), math.NewVec3(0, h, d))
	tri(math.NewVec3(0, 0, -1),
		math.NewVec3(w, -h, -d), math.NewVec3(-w, -h, -d), math.NewVec3(0, h, -d))

	// Bottom
	quad(vec3Down,
		math.NewVec3(-w, -h, -d), math.NewVec3(w, -h, -d),
		math.NewVec3(w, -h, d), math.NewVec3(-w, -h, d))

	// Slanted sides
	quad(rightNormal,
		math.NewVec3(w, -h, d), math.NewVec3(w, -h, -d),
		math.NewVec3(0, h, -d), math.NewVec3(0, h, d))
	quad(leftNormal,
		math.NewVec3(-w, -h, -d), math.NewVec3(-w, -h, d),
		math.NewVec3(0, h, d), math.NewVec3(0, h, -d))

	return NewMesh("Prism", vertices, indices)
}

// CreateTorus generates a torus in the XZ plane, centered at the origin.
func CreateTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= majorSegments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(majorSegments)
		cosTheta := float32(stdmath.Cos(theta))
		sinTheta := float32(stdmath.Sin(theta))

		for j := 0; j <= minorSegments; j++ {
			phi := float64(j) * 2.0 * stdmath.Pi / float64(minorSegments)
			cosPhi := float32(stdmath.Cos(phi))
			sinPhi := float32(stdmath.Sin(phi))

			position := math.NewVec3(
				(majorRadius+minorRadius*cosPhi)*cosTheta,
				minorRadius*sinPhi,
				(majorRadius+minorRadius*cosPhi)*sinTheta,
			)
			normal := math.NewVec3(cosPhi*cosTheta, sinPhi, cosPhi*sinTheta).Normalize()

			vertices = append(vertices, core.Vertex{
				Position: position,
				Normal:   normal,
				UV: math.NewVec2(
					float32(i)/float32(majorSegments),
					float32(j)/float32(minorSegments),
				),
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			current := uint32(i*(minorSegments+1) + j)
			next := uint32((i+1)*(minorSegments+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return NewMesh("Torus", vertices, indices)
}

// CreateSphere generates a UV sphere centered at the origin.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := math.NewVec3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV: math.NewVec2(
					float32(seg)/float32(segments),
					float32(ring)/float32(rings),
				),
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return NewMesh("Sphere", vertices, indices)
}

// Package scene holds CPU-side geometry: procedural primitives and glTF
// loading. GPU upload is the backend's job.
package scene

import (
	"tableau/core"
)

// Mesh holds CPU-side vertex and index data.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
}

// NewMesh builds a mesh from prepared vertex and index slices.
func NewMesh(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// TriangleCount returns the number of triangles the mesh draws.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

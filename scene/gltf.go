package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"tableau/core"
	"tableau/math"
)

// LoadGLTFMesh opens a .glb or .gltf file and flattens every mesh primitive
// in it into a single Mesh. Node transforms are ignored; the caller places
// the result with its own transform.
func LoadGLTFMesh(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return MeshFromDocument(doc)
}

// MeshFromDocument flattens all mesh primitives of a glTF document into one
// indexed Mesh. Primitives without indices are triangulated sequentially.
func MeshFromDocument(doc *gltf.Document) (*Mesh, error) {
	var vertices []core.Vertex
	var indices []uint32

	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			base := uint32(len(vertices))

			verts, err := readPrimitiveVertices(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
			vertices = append(vertices, verts...)

			if prim.Indices != nil {
				primIndices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d indices: %w", mi, pi, err)
				}
				for _, idx := range primIndices {
					indices = append(indices, base+idx)
				}
			} else {
				for i := range verts {
					indices = append(indices, base+uint32(i))
				}
			}
		}
	}

	if len(vertices) == 0 {
		return nil, fmt.Errorf("document contains no mesh primitives")
	}

	name := "gltf"
	if len(doc.Meshes) > 0 && doc.Meshes[0].Name != "" {
		name = doc.Meshes[0].Name
	}
	return NewMesh(name, vertices, indices), nil
}

func readPrimitiveVertices(doc *gltf.Document, prim *gltf.Primitive) ([]core.Vertex, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.NewVec3(p[0], p[1], p[2]),
			Normal:   math.Vec3Up,
		}
		if i < len(normals) {
			v.Normal = math.NewVec3(normals[i][0], normals[i][1], normals[i][2])
		}
		if i < len(uvs) {
			v.UV = math.NewVec2(uvs[i][0], uvs[i][1])
		}
		verts[i] = v
	}
	return verts, nil
}

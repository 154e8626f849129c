package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tableau/core"
	"tableau/scene"
)

// MeshBuffers holds the OpenGL buffer objects for an uploaded mesh.
type MeshBuffers struct {
	vao         uint32
	vbo         uint32
	ebo         uint32
	indexCount  int32
	vertexCount int32
	hasIndices  bool
}

// UploadMesh copies vertex and index data into GPU buffers. Attribute
// locations follow the vertex shader: 0 position, 1 normal, 2 UV.
func UploadMesh(m *scene.Mesh) *MeshBuffers {
	if len(m.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	b := &MeshBuffers{
		indexCount:  int32(len(m.Indices)),
		vertexCount: int32(len(m.Vertices)),
		hasIndices:  len(m.Indices) > 0,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(m.Vertices)*int(stride),
		gl.Ptr(m.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	if b.hasIndices {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(m.Indices)*4,
			gl.Ptr(m.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return b
}

// Draw issues the draw call for the uploaded geometry.
func (b *MeshBuffers) Draw() {
	gl.BindVertexArray(b.vao)
	if b.hasIndices {
		gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, b.vertexCount)
	}
	gl.BindVertexArray(0)
}

// Release frees the GPU buffers. Safe to call more than once.
func (b *MeshBuffers) Release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}

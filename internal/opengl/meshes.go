package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"room-renderer/core"
	"room-renderer/scene"
)

type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// MeshStore uploads the unit shape meshes once and draws them by type.
type MeshStore struct {
	meshes map[scene.ShapeType]meshBuffers
}

func NewMeshStore() *MeshStore {
	return &MeshStore{
		meshes: make(map[scene.ShapeType]meshBuffers),
	}
}

// LoadShape generates the shape's mesh and uploads it. Loading an already
// loaded shape is a no-op.
func (s *MeshStore) LoadShape(shape scene.ShapeType) error {
	if _, ok := s.meshes[shape]; ok {
		return nil
	}

	data := scene.BuildShape(shape)
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return fmt.Errorf("no mesh data for shape %s", shape)
	}

	s.meshes[shape] = upload(data)
	return nil
}

// Draw issues the indexed draw call for a loaded shape. Unloaded shapes are
// silently skipped.
func (s *MeshStore) Draw(shape scene.ShapeType) {
	mesh, ok := s.meshes[shape]
	if !ok {
		return
	}
	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all uploaded buffers.
func (s *MeshStore) Destroy() {
	for _, mesh := range s.meshes {
		gl.DeleteVertexArrays(1, &mesh.vao)
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteBuffers(1, &mesh.ebo)
	}
	s.meshes = make(map[scene.ShapeType]meshBuffers)
}

func upload(data core.MeshData) meshBuffers {
	var mesh meshBuffers
	mesh.indexCount = int32(len(data.Indices))

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	vertexSize := int(unsafe.Sizeof(core.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*vertexSize,
		gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4,
		gl.Ptr(data.Indices), gl.STATIC_DRAW)

	stride := int32(vertexSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride,
		unsafe.Offsetof(core.Vertex{}.Position))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride,
		unsafe.Offsetof(core.Vertex{}.Normal))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride,
		unsafe.Offsetof(core.Vertex{}.UV))

	gl.BindVertexArray(0)
	return mesh
}

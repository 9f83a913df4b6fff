package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/cubeview/pkg/scene"
)

// Vertex attribute locations shared with the shaders
const (
	PositionAttrib = 0
	TexCoordAttrib = 1
)

// Mesh represents a 3D mesh with vertices and indices
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved position/UV geometry
func NewMesh(geometry scene.Geometry) *Mesh {
	// Create VAO, VBO, and EBO
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(geometry.Vertices, StaticDraw)
	ebo := NewEBO(geometry.Indices, StaticDraw)

	stride := int32(scene.FloatsPerVertex * 4)
	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(PositionAttrib, scene.PositionComponents, gl.FLOAT, false, stride, 0)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(TexCoordAttrib, scene.TexCoordComponents, gl.FLOAT, false, stride, scene.PositionComponents*4)

	// Unbind VAO before the buffers so the element binding stays recorded
	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(geometry.Indices)),
	}
}

// Draw renders the mesh with whatever program is bound
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

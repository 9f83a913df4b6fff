// Package scene holds the static data of the viewer: the cube mesh, its
// default texture and the background colour.
package scene

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout: position (3 floats) followed by texture coordinates (2 floats)
const (
	PositionComponents = 3
	TexCoordComponents = 2
	FloatsPerVertex    = PositionComponents + TexCoordComponents
)

// Geometry is an indexed triangle list with interleaved position/UV vertices
type Geometry struct {
	Vertices []float32
	Indices  []uint16
}

// VertexCount returns the number of vertices in g
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i
func (g Geometry) Position(i int) mgl32.Vec3 {
	base := i * FloatsPerVertex
	return mgl32.Vec3{g.Vertices[base], g.Vertices[base+1], g.Vertices[base+2]}
}

// TexCoord returns the texture coordinates of vertex i
func (g Geometry) TexCoord(i int) mgl32.Vec2 {
	base := i*FloatsPerVertex + PositionComponents
	return mgl32.Vec2{g.Vertices[base], g.Vertices[base+1]}
}

// Cube returns a 2x2x2 cube centred on the origin: four vertices per face so
// every face carries its own UVs, two triangles per face.
func Cube() Geometry {
	vertices := []float32{
		// +Z
		-1, -1, 1, 0, 0,
		1, -1, 1, 1, 0,
		1, 1, 1, 1, 1,
		-1, 1, 1, 0, 1,

		// -Z
		-1, 1, -1, 1, 0,
		1, 1, -1, 0, 0,
		1, -1, -1, 0, 1,
		-1, -1, -1, 1, 1,

		// +X
		1, -1, -1, 0, 0,
		1, 1, -1, 1, 0,
		1, 1, 1, 1, 1,
		1, -1, 1, 0, 1,

		// -X
		-1, -1, 1, 1, 0,
		-1, 1, 1, 0, 0,
		-1, 1, -1, 0, 1,
		-1, -1, -1, 1, 1,

		// +Y
		1, 1, -1, 1, 0,
		-1, 1, -1, 0, 0,
		-1, 1, 1, 0, 1,
		1, 1, 1, 1, 1,

		// -Y
		1, -1, 1, 0, 0,
		-1, -1, 1, 1, 0,
		-1, -1, -1, 1, 1,
		1, -1, -1, 0, 1,
	}

	indices := []uint16{
		0, 1, 2, 2, 3, 0, // +Z
		4, 5, 6, 6, 7, 4, // -Z
		8, 9, 10, 10, 11, 8, // +X
		12, 13, 14, 14, 15, 12, // -X
		16, 17, 18, 18, 19, 16, // +Y
		20, 21, 22, 22, 23, 20, // -Y
	}

	return Geometry{Vertices: vertices, Indices: indices}
}

// TexelColor is the base colour of the cube texture
var TexelColor = color.RGBA{R: 0x20, G: 0xA0, B: 0xC0, A: 0xFF}

// ClearColor is the background colour
var ClearColor = mgl32.Vec4{0.156863, 0.156863, 0.156863, 1.0}

// DefaultTextureSize is the edge length of DefaultTexture in pixels
const DefaultTextureSize = 64

// DefaultTexture returns a square texture in TexelColor with a darker border,
// so cube edges stay visible without lighting.
func DefaultTexture() *image.RGBA {
	const border = 2

	edge := color.RGBA{R: TexelColor.R / 2, G: TexelColor.G / 2, B: TexelColor.B / 2, A: 0xFF}
	img := image.NewRGBA(image.Rect(0, 0, DefaultTextureSize, DefaultTextureSize))

	for y := 0; y < DefaultTextureSize; y++ {
		for x := 0; x < DefaultTextureSize; x++ {
			c := TexelColor
			if x < border || y < border || x >= DefaultTextureSize-border || y >= DefaultTextureSize-border {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeCounts(t *testing.T) {
	g := Cube()

	require.Equal(t, 24, g.VertexCount())
	require.Len(t, g.Vertices, 24*FloatsPerVertex)
	require.Len(t, g.Indices, 36)

	for _, idx := range g.Indices {
		assert.Less(t, int(idx), g.VertexCount())
	}
}

func TestCubeFacesArePlanarQuads(t *testing.T) {
	g := Cube()

	for face := 0; face < 6; face++ {
		// the four vertices of a face share exactly one coordinate
		shared := -1
		for axis := 0; axis < 3; axis++ {
			v := g.Position(face * 4)[axis]
			same := true
			for i := 1; i < 4; i++ {
				if g.Position(face*4 + i)[axis] != v {
					same = false
				}
			}
			if same {
				require.Equal(t, -1, shared, "face %d is degenerate", face)
				shared = axis
			}
		}
		assert.NotEqual(t, -1, shared, "face %d is not axis aligned", face)

		// both triangles of the face only use the face's own vertices
		for _, idx := range g.Indices[face*6 : face*6+6] {
			assert.GreaterOrEqual(t, int(idx), face*4)
			assert.Less(t, int(idx), face*4+4)
		}
	}
}

func TestCubeCoordinates(t *testing.T) {
	g := Cube()

	for i := 0; i < g.VertexCount(); i++ {
		for _, c := range g.Position(i) {
			assert.Contains(t, []float32{-1, 1}, c)
		}
		for _, c := range g.TexCoord(i) {
			assert.Contains(t, []float32{0, 1}, c)
		}
	}
}

func TestCubeTrianglesHaveArea(t *testing.T) {
	g := Cube()

	for i := 0; i < len(g.Indices); i += 3 {
		a := g.Position(int(g.Indices[i]))
		b := g.Position(int(g.Indices[i+1]))
		c := g.Position(int(g.Indices[i+2]))
		assert.Greater(t, b.Sub(a).Cross(c.Sub(a)).Len(), float32(0), "triangle %d", i/3)
	}
}

func TestDefaultTexture(t *testing.T) {
	img := DefaultTexture()

	require.Equal(t, DefaultTextureSize, img.Bounds().Dx())
	require.Equal(t, DefaultTextureSize, img.Bounds().Dy())

	assert.Equal(t, TexelColor, img.RGBAAt(DefaultTextureSize/2, DefaultTextureSize/2))
	assert.NotEqual(t, TexelColor, img.RGBAAt(0, 0))
	assert.Equal(t, uint8(0xFF), img.RGBAAt(0, 0).A)
}

package openglhelper

import (
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWindow opens a real window, skipping when the machine has no display
func newTestWindow(t *testing.T) *Window {
	t.Helper()
	if runtime.GOOS == "darwin" {
		t.Skip("GLFW windows must be created on the main thread on macOS")
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display available")
	}

	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	w, err := NewWindow(WindowSettings{Width: 320, Height: 240, Title: "cubeview test"})
	if err != nil {
		t.Skipf("cannot create window: %v", err)
	}
	t.Cleanup(w.Close)
	return w
}

func TestWindowSizeMatchesCreatedWindow(t *testing.T) {
	w := newTestWindow(t)

	width, height := w.glfwWindow.GetSize()
	gotWidth, gotHeight := w.Size()
	assert.Equal(t, width, gotWidth)
	assert.Equal(t, height, gotHeight)
	assert.Positive(t, gotWidth)
	assert.Positive(t, gotHeight)
}

func TestBufferDataLivesOnTheGPU(t *testing.T) {
	newTestWindow(t)

	// core profiles keep the element buffer binding in the VAO
	vao := NewVAO()
	vao.Bind()
	defer vao.Delete()

	vertices := []float32{0, 1, 2, 3, 4, 5}
	vbo := NewVBO(vertices, StaticDraw)
	defer vbo.Delete()

	var size, usage int32
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_USAGE, &usage)
	require.Equal(t, int32(len(vertices)*4), size)
	assert.Equal(t, int32(gl.STATIC_DRAW), usage)

	ebo := NewEBO([]uint16{0, 1, 2}, StaticDraw)
	defer ebo.Delete()
	gl.GetBufferParameteriv(gl.ELEMENT_ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	assert.Equal(t, int32(6), size)
}

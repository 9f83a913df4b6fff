// Package render draws the textured cube with OpenGL.
package render

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"

	"github.com/leterax/cubeview/internal/openglhelper"
	"github.com/leterax/cubeview/pkg/loop"
	"github.com/leterax/cubeview/pkg/scene"
)

var (
	//go:embed shaders/cube.vert
	vertexShaderSource string
	//go:embed shaders/cube.frag
	fragmentShaderSource string
)

// Uniform names used by the cube shaders
const (
	transformUniform = "transform"
	textureUniform   = "colorTexture"
)

// Options selects optional assets. Empty paths use the built-in ones.
type Options struct {
	TexturePath        string
	VertexShaderPath   string
	FragmentShaderPath string
}

// CubeRenderer owns the GPU resources for the cube
type CubeRenderer struct {
	window *openglhelper.Window

	shader  *openglhelper.Shader
	mesh    *openglhelper.Mesh
	texture *openglhelper.Texture
}

var _ loop.Renderer = (*CubeRenderer)(nil)

// NewCubeRenderer compiles the shaders and uploads the cube and its texture.
// The window's GL context must be current.
func NewCubeRenderer(window *openglhelper.Window, opts Options) (*CubeRenderer, error) {
	shader, err := loadShader(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	texture, err := loadTexture(opts)
	if err != nil {
		shader.Delete()
		return nil, err
	}

	r := &CubeRenderer{
		window:  window,
		shader:  shader,
		mesh:    openglhelper.NewMesh(scene.Cube()),
		texture: texture,
	}

	// Set up initial OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	r.Resize(window.FramebufferSize())

	r.shader.Use()
	r.shader.SetInt(textureUniform, 0)

	return r, nil
}

func loadShader(opts Options) (*openglhelper.Shader, error) {
	if opts.VertexShaderPath != "" {
		log.Info().
			Str("vertex", opts.VertexShaderPath).
			Str("fragment", opts.FragmentShaderPath).
			Msg("loading shaders from files")
		return openglhelper.LoadShaderFromFiles(opts.VertexShaderPath, opts.FragmentShaderPath)
	}
	return openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
}

func loadTexture(opts Options) (*openglhelper.Texture, error) {
	if opts.TexturePath != "" {
		log.Info().Str("path", opts.TexturePath).Msg("loading texture")
		return openglhelper.LoadTextureFromFile(opts.TexturePath)
	}
	return openglhelper.NewTexture(scene.DefaultTexture()), nil
}

// Resize sets the viewport to the framebuffer size
func (r *CubeRenderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetTransform uploads the view-projection matrix
func (r *CubeRenderer) SetTransform(transform mgl32.Mat4) {
	r.shader.Use()
	r.shader.SetMat4(transformUniform, transform)
}

// Clear clears the colour and depth targets
func (r *CubeRenderer) Clear(color mgl32.Vec4, depth float32) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.ClearDepth(float64(depth))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw issues the single draw call for the cube
func (r *CubeRenderer) Draw() {
	r.shader.Use()
	r.texture.Bind(0)
	r.mesh.Draw()
}

// Present reports any pending GL error, then swaps buffers
func (r *CubeRenderer) Present() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		// drain the remaining flags so the next frame starts clean
		for gl.GetError() != gl.NO_ERROR {
		}
		return fmt.Errorf("OpenGL error 0x%04X", code)
	}

	r.window.SwapBuffers()
	return nil
}

// Delete releases all GPU resources
func (r *CubeRenderer) Delete() {
	r.mesh.Delete()
	r.texture.Delete()
	r.shader.Delete()
}

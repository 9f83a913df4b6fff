package openglhelper

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"

	"github.com/leterax/cubeview/pkg/clock"
	"github.com/leterax/cubeview/pkg/input"
)

// WindowSettings configures NewWindow
type WindowSettings struct {
	Width, Height int
	Title         string
	VSync         bool
	// PointerWarp selects recentring the hidden cursor after every move.
	// Without it the cursor is disabled and GLFW reports relative motion.
	PointerWarp bool
}

// Window handles GLFW window creation and turns GLFW callbacks into input
// events. It must only be used from the main thread.
type Window struct {
	glfwWindow  *glfw.Window
	width       int
	height      int
	title       string
	pointerWarp bool

	events []input.Event
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(settings WindowSettings) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if settings.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL context created")

	// The window manager may not honour the requested size
	width, height := glfwWindow.GetSize()

	w := &Window{
		glfwWindow:  glfwWindow,
		width:       width,
		height:      height,
		title:       settings.Title,
		pointerWarp: settings.PointerWarp,
	}

	glfwWindow.SetCloseCallback(w.closeCallback)
	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetCursorPosCallback(w.cursorPosCallback)
	glfwWindow.SetSizeCallback(w.sizeCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

// Callback functions

func (w *Window) closeCallback(_ *glfw.Window) {
	w.events = append(w.events, input.WindowClose{})
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	k := translateKey(key)
	// movement keys are sampled while held in PollEvents
	if k == input.KeyUnknown || k.IsMovement() {
		return
	}
	w.events = append(w.events, input.KeyDown{Key: k})
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.events = append(w.events, input.PointerMoved{X: xpos, Y: ypos})
}

func (w *Window) sizeCallback(_ *glfw.Window, width, height int) {
	w.width = width
	w.height = height
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.events = append(w.events, input.Resized{Width: width, Height: height})
}

// PollEvents processes pending GLFW events and returns everything queued
// since the previous call. Held movement keys produce one KeyDown each.
func (w *Window) PollEvents() []input.Event {
	glfw.PollEvents()

	for _, k := range input.MovementKeys {
		if w.glfwWindow.GetKey(glfwKey(k)) == glfw.Press {
			w.events = append(w.events, input.KeyDown{Key: k})
		}
	}

	events := w.events
	w.events = nil
	return events
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the window dimensions in screen coordinates
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// FramebufferSize returns the drawable size in pixels
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfwWindow.GetFramebufferSize()
}

// Title returns the title the window was created with
func (w *Window) Title() string {
	return w.title
}

// SetTitle changes the displayed title. Title keeps returning the one passed to NewWindow.
func (w *Window) SetTitle(title string) {
	w.glfwWindow.SetTitle(title)
}

// SetPointerPosition warps the cursor to a position in window coordinates
func (w *Window) SetPointerPosition(x, y float64) {
	w.glfwWindow.SetCursorPos(x, y)
}

// PointerWarp reports whether the cursor is recentred after moves
func (w *Window) PointerWarp() bool {
	return w.pointerWarp
}

// SetPointerCaptured captures or releases the mouse cursor
func (w *Window) SetPointerCaptured(captured bool) {
	switch {
	case !captured:
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	case w.pointerWarp:
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	default:
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	}
}

// Time returns a clock source backed by the GLFW timer
func (w *Window) Time() clock.Source {
	return func() time.Duration {
		return time.Duration(glfw.GetTime() * float64(time.Second))
	}
}

// Package loop drives the viewer frame by frame: it drains input, updates the
// camera, rebuilds the view-projection transform and hands it to the renderer.
package loop

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"

	"github.com/leterax/cubeview/pkg/camera"
	"github.com/leterax/cubeview/pkg/clock"
	"github.com/leterax/cubeview/pkg/input"
)

// Window is the windowing and input collaborator
type Window interface {
	// Size returns the window's inner size in screen coordinates
	Size() (width, height int)
	// PollEvents returns the events queued since the last call without blocking
	PollEvents() []input.Event
	// SetPointerPosition warps the pointer, in window coordinates
	SetPointerPosition(x, y float64)
	// PointerWarp reports whether the pointer is recentred after every move.
	// When false the window delivers unbounded relative positions instead.
	PointerWarp() bool
	// SetPointerCaptured grabs or releases the pointer
	SetPointerCaptured(captured bool)
}

// Renderer is the GPU collaborator drawing the cube
type Renderer interface {
	// Resize updates the viewport to a framebuffer size in pixels
	Resize(width, height int)
	// SetTransform uploads the per-frame view-projection matrix
	SetTransform(transform mgl32.Mat4)
	Clear(color mgl32.Vec4, depth float32)
	Draw()
	Present() error
}

// State of the loop
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Settings holds the per-frame constants of the loop
type Settings struct {
	// MoveSpeed is in world units per second
	MoveSpeed float32
	// FOV is the vertical field of view in degrees
	FOV        float32
	Near, Far  float32
	ClearColor mgl32.Vec4
}

// DefaultSettings returns the stock viewer settings
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:  camera.DefaultMoveSpeed,
		FOV:        45,
		Near:       0.1,
		Far:        100,
		ClearColor: mgl32.Vec4{0, 0, 0, 1},
	}
}

var movementBindings = map[input.Key]camera.Direction{
	input.KeyW:          camera.Forward,
	input.KeyArrowUp:    camera.Forward,
	input.KeyS:          camera.Backward,
	input.KeyArrowDown:  camera.Backward,
	input.KeyA:          camera.Left,
	input.KeyArrowLeft:  camera.Left,
	input.KeyD:          camera.Right,
	input.KeyArrowRight: camera.Right,
}

// Driver runs the frame loop. All of its state is owned by the goroutine
// calling Run or Frame.
type Driver struct {
	window   Window
	renderer Renderer
	camera   *camera.Controller
	clock    *clock.FrameClock
	settings Settings

	state    State
	captured bool
	onFrame  func(dT float32)

	// per-frame input state, reset at the start of every Frame
	moved        map[camera.Direction]bool
	pointerMoved bool
}

// NewDriver creates a driver in the Running state with the pointer captured
func NewDriver(window Window, renderer Renderer, cam *camera.Controller, clk *clock.FrameClock, settings Settings) *Driver {
	d := &Driver{
		window:   window,
		renderer: renderer,
		camera:   cam,
		clock:    clk,
		settings: settings,
		state:    Running,
		captured: true,
		moved:    make(map[camera.Direction]bool),
	}
	window.SetPointerCaptured(true)
	return d
}

// SetFrameHook registers fn to be called with dT (milliseconds) after every
// frame. A nil fn removes the hook.
func (d *Driver) SetFrameHook(fn func(dT float32)) {
	d.onFrame = fn
}

// State returns the current loop state
func (d *Driver) State() State {
	return d.state
}

// Captured reports whether mouse-look is active
func (d *Driver) Captured() bool {
	return d.captured
}

// Stop moves the loop to Stopped. It is terminal.
func (d *Driver) Stop() {
	if d.state != Stopped {
		log.Debug().Msg("render loop stopping")
	}
	d.state = Stopped
}

// Run executes frames until the loop stops or ctx is cancelled
func (d *Driver) Run(ctx context.Context) error {
	for d.state == Running {
		if ctx.Err() != nil {
			d.Stop()
			break
		}

		if err := d.Frame(); err != nil {
			d.Stop()
			return err
		}
	}

	return nil
}

// Frame runs one loop iteration. Events that stop the loop still let the
// current frame be drawn; Run checks the state before the next one.
func (d *Driver) Frame() error {
	dT := d.clock.Tick()
	speed := d.settings.MoveSpeed * (dT / 1000)

	clear(d.moved)
	d.pointerMoved = false
	for _, ev := range d.window.PollEvents() {
		d.HandleEvent(ev, speed)
	}

	// Every event in the batch was queued before any warp, so samples chain
	// from each other and the reference only moves to the centre afterwards.
	if d.pointerMoved && d.captured && d.window.PointerWarp() {
		d.camera.Recenter(d.center())
	}

	width, height := d.window.Size()
	projection := Projection(width, height, d.settings.FOV, d.settings.Near, d.settings.Far)
	d.renderer.SetTransform(projection.Mul4(d.camera.ViewMatrix()))

	d.renderer.Clear(d.settings.ClearColor, 1.0)
	d.renderer.Draw()
	if err := d.renderer.Present(); err != nil {
		return fmt.Errorf("failed to present frame: %w", err)
	}

	if d.onFrame != nil {
		d.onFrame(dT)
	}

	return nil
}

// HandleEvent applies a single input event of the current frame. speed is the
// movement distance for this frame in world units. Each direction moves the
// camera at most once per frame, however many keys are bound to it.
func (d *Driver) HandleEvent(ev input.Event, speed float32) {
	switch e := ev.(type) {
	case input.WindowClose:
		d.Stop()

	case input.KeyDown:
		d.handleKey(e.Key, speed)

	case input.PointerMoved:
		if !d.captured {
			return
		}
		d.camera.ApplyPointer(e.X, e.Y)
		d.pointerMoved = true
		if d.window.PointerWarp() {
			d.window.SetPointerPosition(d.center())
		}

	case input.Resized:
		log.Debug().Int("width", e.Width).Int("height", e.Height).Msg("framebuffer resized")
		d.renderer.Resize(e.Width, e.Height)
	}
}

func (d *Driver) handleKey(key input.Key, speed float32) {
	if dir, ok := movementBindings[key]; ok {
		if !d.moved[dir] {
			d.moved[dir] = true
			d.camera.ApplyMovement(dir, speed)
		}
		return
	}

	switch key {
	case input.KeyEscape:
		d.Stop()
	case input.KeyC:
		d.captured = !d.captured
		d.window.SetPointerCaptured(d.captured)
		d.camera.ResetMouse()
		log.Debug().Bool("captured", d.captured).Msg("pointer capture toggled")
	}
}

func (d *Driver) center() (x, y float64) {
	width, height := d.window.Size()
	return float64(width / 2), float64(height / 2)
}

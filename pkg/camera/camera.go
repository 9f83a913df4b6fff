// Package camera implements the first-person fly camera: WASD movement along
// the view direction and mouse-look via yaw and pitch.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement direction relative to the camera
type Direction int

// Movement directions
const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// MouseTracking remembers the previous pointer sample so absolute pointer
// positions can be turned into deltas.
type MouseTracking struct {
	LastX, LastY float64
	// FirstMove is set until the first delta has been consumed
	FirstMove bool
}

// Controller owns the camera state. It is not safe for concurrent use; the
// render loop is its only user.
type Controller struct {
	// Position and orientation
	position mgl32.Vec3
	front    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Camera options
	sensitivity float32
	pitchLimit  float32

	mouse MouseTracking
}

// Option configures a Controller
type Option func(*Controller)

// WithPosition sets the starting position
func WithPosition(pos mgl32.Vec3) Option {
	return func(c *Controller) {
		c.position = pos
	}
}

// WithOrientation sets the starting yaw and pitch in degrees. The front vector
// is derived from them.
func WithOrientation(yaw, pitch float32) Option {
	return func(c *Controller) {
		c.yaw = yaw
		c.pitch = pitch
		c.front = mgl32.Vec3{} // derived in NewController once the pitch is clamped
	}
}

// WithSensitivity sets the mouse sensitivity in degrees per pixel
func WithSensitivity(degPerPixel float32) Option {
	return func(c *Controller) {
		c.sensitivity = degPerPixel
	}
}

// WithPitchLimit sets the absolute pitch bound in degrees. Values above 90 are
// reduced to 90.
func WithPitchLimit(deg float32) Option {
	return func(c *Controller) {
		if deg > 90 {
			deg = 90
		}
		if deg < 0 {
			deg = -deg
		}
		c.pitchLimit = deg
	}
}

// NewController creates a camera at (0,0,3) looking down -Z
func NewController(opts ...Option) *Controller {
	c := &Controller{
		position:    DefaultPosition,
		front:       DefaultFront,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		sensitivity: DefaultSensitivity,
		pitchLimit:  DefaultPitchLimit,
		mouse:       MouseTracking{FirstMove: true},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.pitch = c.clampPitch(c.pitch)
	if c.front == (mgl32.Vec3{}) {
		c.front = frontFromAngles(c.yaw, c.pitch)
	}
	return c
}

// frontFromAngles computes the unit view direction for yaw and pitch in
// degrees. Every orientation change goes through here.
func frontFromAngles(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))

	front := mgl32.Vec3{
		float32(math.Cos(p) * math.Cos(y)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}
	return front.Normalize()
}

func (c *Controller) clampPitch(pitch float32) float32 {
	if pitch > c.pitchLimit {
		return c.pitchLimit
	}
	if pitch < -c.pitchLimit {
		return -c.pitchLimit
	}
	return pitch
}

// ApplyMovement moves the camera by speed units. speed is expected to be
// pre-scaled by the frame time.
func (c *Controller) ApplyMovement(dir Direction, speed float32) {
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(speed))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(speed))
	case Left:
		c.position = c.position.Sub(c.Right().Mul(speed))
	case Right:
		c.position = c.position.Add(c.Right().Mul(speed))
	}
}

// ApplyMouseDelta rotates the camera by a pointer delta in pixels. Positive dy
// looks up. The first call only arms the tracker so an uninitialised previous
// position never turns into a jump.
func (c *Controller) ApplyMouseDelta(dx, dy float32) {
	if c.mouse.FirstMove {
		c.mouse.FirstMove = false
		return
	}

	c.yaw += dx * c.sensitivity
	c.pitch = c.clampPitch(c.pitch + dy*c.sensitivity)

	c.front = frontFromAngles(c.yaw, c.pitch)
}

// ApplyPointer feeds an absolute pointer position. Screen Y grows downwards,
// so the vertical delta is inverted before rotating.
func (c *Controller) ApplyPointer(x, y float64) {
	dx := float32(x - c.mouse.LastX)
	dy := float32(c.mouse.LastY - y)

	c.mouse.LastX = x
	c.mouse.LastY = y

	c.ApplyMouseDelta(dx, dy)
}

// Recenter records a warped pointer position as the new reference
func (c *Controller) Recenter(x, y float64) {
	c.mouse.LastX = x
	c.mouse.LastY = y
}

// ResetMouse makes the next pointer sample a reference-only sample again
func (c *Controller) ResetMouse() {
	c.mouse.FirstMove = true
}

// LookAt turns the camera towards target. Yaw and pitch are recovered from the
// direction so later mouse deltas continue from the same orientation.
func (c *Controller) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = c.clampPitch(mgl32.RadToDeg(float32(math.Asin(float64(direction.Y())))))

	c.front = frontFromAngles(c.yaw, c.pitch)
}

// ViewMatrix returns the current view matrix
func (c *Controller) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), WorldUp)
}

// Position returns the current camera position
func (c *Controller) Position() mgl32.Vec3 {
	return c.position
}

// Front returns the unit view direction
func (c *Controller) Front() mgl32.Vec3 {
	return c.front
}

// Right returns the unit strafe direction, perpendicular to front and world up
func (c *Controller) Right() mgl32.Vec3 {
	return c.front.Cross(WorldUp).Normalize()
}

// Orientation returns yaw and pitch in degrees
func (c *Controller) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// PitchLimit returns the absolute pitch bound in degrees
func (c *Controller) PitchLimit() float32 {
	return c.pitchLimit
}

// Mouse returns a copy of the pointer tracking state
func (c *Controller) Mouse() MouseTracking {
	return c.mouse
}

package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera constants
const (
	// Movement speed in world units per second
	DefaultMoveSpeed = 10.0
	// Mouse sensitivity in degrees per pixel
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Pitch is clamped to [-DefaultPitchLimit, DefaultPitchLimit]. Staying
	// short of 90 keeps front x worldUp away from zero.
	DefaultPitchLimit = 89.0
)

var (
	// DefaultPosition is where the camera starts, three units in front of the cube
	DefaultPosition = mgl32.Vec3{0, 0, 3}
	// DefaultFront is the initial view direction
	DefaultFront = mgl32.Vec3{0, 0, -1}
	// WorldUp is the Y-up axis used for strafing and the view matrix
	WorldUp = mgl32.Vec3{0, 1, 0}
)

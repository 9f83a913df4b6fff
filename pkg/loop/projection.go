package loop

import "github.com/go-gl/mathgl/mgl32"

// AspectRatio returns width/height. Zero sizes, as reported for minimised
// windows, are treated as 1.
func AspectRatio(width, height int) float32 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return float32(width) / float32(height)
}

// Projection returns a perspective projection for the given window size
func Projection(width, height int, fovDeg, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), AspectRatio(width, height), near, far)
}

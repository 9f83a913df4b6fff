package clock

// Counter accumulates frame deltas and reports the frame rate once every
// elapsed second.
type Counter struct {
	frames  int
	elapsed float32 // milliseconds
}

// Add records one frame that took dtMs milliseconds. When at least a second
// has accumulated it returns the frame count for that window and true, and
// starts a new window.
func (c *Counter) Add(dtMs float32) (fps int, ok bool) {
	c.frames++
	c.elapsed += dtMs

	if c.elapsed < 1000 {
		return 0, false
	}

	fps = c.frames
	c.frames = 0
	c.elapsed = 0
	return fps, true
}

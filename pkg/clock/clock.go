// Package clock measures frame times for the render loop.
package clock

import "time"

// Source returns a monotonic timestamp measured from an arbitrary epoch
type Source func() time.Duration

// Monotonic returns a Source backed by Go's monotonic clock, with its epoch
// at the moment of the call.
func Monotonic() Source {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// FrameClock turns successive clock samples into frame deltas
type FrameClock struct {
	now  Source
	last time.Duration
}

// New creates a FrameClock. The previous sample is taken here so the first
// Tick measures from construction rather than from the clock's epoch.
func New(src Source) *FrameClock {
	return &FrameClock{
		now:  src,
		last: src(),
	}
}

// Tick samples the clock and returns the milliseconds elapsed since the
// previous sample. A sample that goes backwards yields 0 and becomes the new
// reference.
func (c *FrameClock) Tick() float32 {
	current := c.now()
	elapsed := current - c.last
	c.last = current

	if elapsed < 0 {
		return 0
	}
	return float32(elapsed) / float32(time.Millisecond)
}

// Package input defines the window-independent input events consumed by the
// render loop. Events are plain values so camera and loop logic can be driven
// from tests without a display.
package input

import "fmt"

// Event is a single polled input event. It is implemented only by the types
// in this package.
type Event interface {
	event()
}

// KeyDown reports a pressed (or held) key
type KeyDown struct {
	Key Key
}

// WindowClose reports that the user asked to close the window
type WindowClose struct{}

// PointerMoved reports the absolute pointer position in window coordinates
type PointerMoved struct {
	X, Y float64
}

// Resized reports the new framebuffer size in pixels
type Resized struct {
	Width, Height int
}

func (KeyDown) event()      {}
func (WindowClose) event()  {}
func (PointerMoved) event() {}
func (Resized) event()      {}

func (e KeyDown) String() string      { return fmt.Sprintf("KeyDown(%s)", e.Key) }
func (WindowClose) String() string    { return "WindowClose" }
func (e PointerMoved) String() string { return fmt.Sprintf("PointerMoved(%g, %g)", e.X, e.Y) }
func (e Resized) String() string      { return fmt.Sprintf("Resized(%dx%d)", e.Width, e.Height) }

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "Unknown", KeyUnknown.String())
	assert.Equal(t, "Unknown", Key(999).String())
}

func TestIsMovement(t *testing.T) {
	for _, k := range MovementKeys {
		assert.True(t, k.IsMovement(), k.String())
	}
	assert.False(t, KeyEscape.IsMovement())
	assert.False(t, KeyC.IsMovement())
	assert.False(t, KeyUnknown.IsMovement())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "KeyDown(A)", KeyDown{Key: KeyA}.String())
	assert.Equal(t, "WindowClose", WindowClose{}.String())
	assert.Equal(t, "PointerMoved(1.5, 2)", PointerMoved{X: 1.5, Y: 2}.String())
	assert.Equal(t, "Resized(1024x600)", Resized{Width: 1024, Height: 600}.String())
}

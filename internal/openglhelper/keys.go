package openglhelper

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/cubeview/pkg/input"
)

// Key mapping between GLFW and the viewer's input keys
var keyMap = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.KeyUp:     input.KeyArrowUp,
	glfw.KeyDown:   input.KeyArrowDown,
	glfw.KeyLeft:   input.KeyArrowLeft,
	glfw.KeyRight:  input.KeyArrowRight,
	glfw.KeyC:      input.KeyC,
}

var reverseKeyMap = func() map[input.Key]glfw.Key {
	m := make(map[input.Key]glfw.Key, len(keyMap))
	for g, k := range keyMap {
		m[k] = g
	}
	return m
}()

func translateKey(key glfw.Key) input.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return input.KeyUnknown
}

func glfwKey(key input.Key) glfw.Key {
	if k, ok := reverseKeyMap[key]; ok {
		return k
	}
	return glfw.KeyUnknown
}

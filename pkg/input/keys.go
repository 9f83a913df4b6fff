package input

// Key identifies a keyboard key the viewer reacts to
type Key int

// Keys understood by the viewer
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyC
)

var keyNames = map[Key]string{
	KeyEscape:     "Escape",
	KeyW:          "W",
	KeyA:          "A",
	KeyS:          "S",
	KeyD:          "D",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyC:          "C",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MovementKeys are sampled every frame while held rather than reported on
// press, so movement is continuous instead of following the OS key repeat.
var MovementKeys = []Key{KeyW, KeyA, KeyS, KeyD, KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight}

// IsMovement reports whether k is one of MovementKeys
func (k Key) IsMovement() bool {
	for _, m := range MovementKeys {
		if k == m {
			return true
		}
	}
	return false
}

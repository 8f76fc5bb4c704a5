package key

import "fmt"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Input.
type Key uint8

const (
	// KeyNull represents no key. It is the zero value so an empty
	// Input is already the null input.
	KeyNull Key = iota

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Input.Rune.
	KeyRune

	// Editing keys
	KeyBackspace
	KeyEnter
	KeyTab
	KeyDelete

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Line navigation keys
	KeyHome
	KeyEnd
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNull:
		return "Null"
	case KeyRune:
		return "Rune"
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || k == KeyHome || k == KeyEnd
}

package key

import (
	"fmt"
	"strings"
)

// Input is a normalized key press: which key, the character for rune
// keys, and whether Control was held. The zero value is the null input.
type Input struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune inputs.
	Rune rune

	// Ctrl is true if the Control modifier was held.
	Ctrl bool
}

// Null returns the null input, produced for any event the mapping does
// not recognize.
func Null() Input {
	return Input{}
}

// NewRuneInput creates an input for a character key.
func NewRuneInput(r rune) Input {
	return Input{Key: KeyRune, Rune: r}
}

// NewCtrlInput creates an input for Control plus a character key.
func NewCtrlInput(r rune) Input {
	return Input{Key: KeyRune, Rune: r, Ctrl: true}
}

// NewSpecialInput creates an input for a non-character key.
func NewSpecialInput(k Key) Input {
	return Input{Key: k}
}

// IsRune returns true if this is a character input.
func (in Input) IsRune() bool {
	return in.Key == KeyRune && in.Rune != 0
}

// IsNull returns true if this is the null input.
func (in Input) IsNull() bool {
	return in.Key == KeyNull
}

// Equals returns true if two inputs represent the same key press.
func (in Input) Equals(other Input) bool {
	return in.Key == other.Key && in.Rune == other.Rune && in.Ctrl == other.Ctrl
}

// String returns a canonical representation like "a", "C-e" or "Backspace".
func (in Input) String() string {
	var parts []string
	if in.Ctrl {
		parts = append(parts, "C")
	}

	var keyName string
	switch in.Key {
	case KeyRune:
		if in.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(in.Rune)
		}
	default:
		keyName = in.Key.String()
	}
	parts = append(parts, keyName)

	return strings.Join(parts, "-")
}

// GoString implements fmt.GoStringer for debugging.
func (in Input) GoString() string {
	return fmt.Sprintf("Input{Key: %s, Rune: %q, Ctrl: %t}", in.Key, in.Rune, in.Ctrl)
}

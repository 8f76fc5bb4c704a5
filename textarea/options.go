package textarea

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/editkit/style"
)

// defaultTab is the default indentation unit.
const defaultTab = "    "

// ErrTabNotSpaces is returned when an indentation unit contains
// anything other than space characters.
var ErrTabNotSpaces = errors.New("tab string must contain only spaces")

// Option is a functional option for configuring a TextArea.
type Option func(*TextArea)

// WithStyle sets the base render style.
func WithStyle(s style.Style) Option {
	return func(t *TextArea) {
		t.style = s
	}
}

// WithBlock sets the decorative frame.
func WithBlock(b *Block) Option {
	return func(t *TextArea) {
		t.block = b
	}
}

// WithTabWidth sets the indentation unit to the given number of spaces.
// Non-positive widths are ignored.
func WithTabWidth(width int) Option {
	return func(t *TextArea) {
		if width > 0 {
			t.tab = strings.Repeat(" ", width)
		}
	}
}

// SetTabString sets the indentation unit. Only space characters are
// allowed; anything else is rejected immediately with ErrTabNotSpaces.
// An empty string disables InsertTab.
func (t *TextArea) SetTabString(tab string) error {
	for _, r := range tab {
		if r != ' ' {
			return fmt.Errorf("%w: %q", ErrTabNotSpaces, tab)
		}
	}
	t.tab = tab
	return nil
}

// SetStyle sets the base render style.
func (t *TextArea) SetStyle(s style.Style) {
	t.style = s
}

// SetBlock sets the decorative frame.
func (t *TextArea) SetBlock(b *Block) {
	t.block = b
}

// RemoveBlock clears the decorative frame.
func (t *TextArea) RemoveBlock() {
	t.block = nil
}

package textarea

import (
	"fmt"

	"github.com/dshills/editkit/key"
)

// operation is a single edit or navigation primitive.
type operation func(*TextArea)

// ctrlBindings is the Emacs-style table consulted when the ctrl
// modifier is set.
var ctrlBindings = map[rune]operation{
	'h': (*TextArea).DeleteChar,
	'm': (*TextArea).InsertNewline,
	'p': (*TextArea).CursorUp,
	'n': (*TextArea).CursorDown,
	'f': (*TextArea).CursorForward,
	'b': (*TextArea).CursorBack,
	'a': (*TextArea).CursorStart,
	'e': (*TextArea).CursorEnd,
}

// plainBindings routes unmodified special keys.
var plainBindings = map[key.Key]operation{
	key.KeyBackspace: (*TextArea).DeleteChar,
	key.KeyTab:       (*TextArea).InsertTab,
	key.KeyEnter:     (*TextArea).InsertNewline,
	key.KeyUp:        (*TextArea).CursorUp,
	key.KeyDown:      (*TextArea).CursorDown,
	key.KeyLeft:      (*TextArea).CursorBack,
	key.KeyRight:     (*TextArea).CursorForward,
	key.KeyHome:      (*TextArea).CursorStart,
	key.KeyEnd:       (*TextArea).CursorEnd,
}

// HandleInput routes one normalized input to a buffer operation.
// Inputs with no binding, including the null input, are silently
// ignored; dispatch never fails.
func (t *TextArea) HandleInput(in key.Input) {
	if in.Ctrl {
		if in.IsRune() {
			if op, ok := ctrlBindings[in.Rune]; ok {
				op(t)
			}
		}
	} else if in.IsRune() {
		t.InsertRune(in.Rune)
	} else if op, ok := plainBindings[in.Key]; ok {
		op(t)
	}

	if debugChecks {
		if err := t.Check(); err != nil {
			panic(fmt.Sprintf("textarea: invariant violated after %s: %v", in, err))
		}
	}
}

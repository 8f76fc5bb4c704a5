package key

import (
	"github.com/gdamore/tcell/v2"
)

// FromEvent converts a tcell event into a normalized Input.
// The mapping is pure and total: non-key events and key codes outside
// the recognized set produce the null input.
func FromEvent(ev tcell.Event) Input {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return Null()
	}
	return FromKeyEvent(kev)
}

// FromKeyEvent converts a tcell key event into a normalized Input.
func FromKeyEvent(ev *tcell.EventKey) Input {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return Input{Key: KeyRune, Rune: ev.Rune(), Ctrl: ctrl}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Input{Key: KeyBackspace, Ctrl: ctrl}
	case tcell.KeyEnter:
		return Input{Key: KeyEnter, Ctrl: ctrl}
	case tcell.KeyTab:
		return Input{Key: KeyTab, Ctrl: ctrl}
	case tcell.KeyDelete:
		return Input{Key: KeyDelete, Ctrl: ctrl}
	case tcell.KeyUp:
		return Input{Key: KeyUp, Ctrl: ctrl}
	case tcell.KeyDown:
		return Input{Key: KeyDown, Ctrl: ctrl}
	case tcell.KeyLeft:
		return Input{Key: KeyLeft, Ctrl: ctrl}
	case tcell.KeyRight:
		return Input{Key: KeyRight, Ctrl: ctrl}
	case tcell.KeyHome:
		return Input{Key: KeyHome, Ctrl: ctrl}
	case tcell.KeyEnd:
		return Input{Key: KeyEnd, Ctrl: ctrl}
	default:
		// tcell folds Ctrl plus a letter into dedicated C0 key codes.
		// Unfold the ones not already claimed above (Backspace, Tab,
		// Enter share codes with Ctrl-H, Ctrl-I, Ctrl-M) so the
		// dispatcher sees the letter with the ctrl flag set.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return Input{Key: KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Ctrl: true}
		}
		return Null()
	}
}

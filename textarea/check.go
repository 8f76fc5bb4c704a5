package textarea

import (
	"errors"
	"fmt"
)

// Check verifies the structural invariants: the buffer has at least one
// line, every line ends with the sentinel, and the cursor addresses an
// existing character. It returns nil when the buffer is intact.
//
// A non-nil result signals a defect in the buffer logic itself, never a
// user-facing condition; correct input handling cannot trigger it. The
// test suite calls it after every operation, and builds tagged
// editkitdebug run it after every dispatched input.
func (t *TextArea) Check() error {
	if len(t.lines) == 0 {
		return errors.New("buffer has no lines")
	}

	for i, l := range t.lines {
		if len(l) == 0 || l[len(l)-1] != sentinel {
			return fmt.Errorf("line %d does not end with the sentinel: %q", i, string(l))
		}
	}

	if t.row < 0 || t.row >= len(t.lines) {
		return fmt.Errorf("cursor row %d out of range (%d lines)", t.row, len(t.lines))
	}
	if n := t.lines[t.row].runeCount(); t.col < 0 || t.col >= n {
		return fmt.Errorf("cursor col %d out of range (line %d has %d characters)", t.col, t.row, n)
	}

	return nil
}

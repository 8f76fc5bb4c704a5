package textarea

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// InsertRune inserts a single character before the character the cursor
// addresses and advances the cursor column by one.
func (t *TextArea) InsertRune(r rune) {
	l, ok := t.lines[t.row].insert(t.col, string(r))
	if !ok {
		return
	}
	t.lines[t.row] = l
	t.col++
	t.touch()
}

// InsertString inserts s at the cursor and advances the cursor column
// by the number of characters inserted. s must not contain a line break;
// callers needing one use InsertNewline. Violating the contract is a
// programmer error and panics.
func (t *TextArea) InsertString(s string) {
	if strings.ContainsAny(s, "\n\r") {
		panic(fmt.Sprintf("textarea: InsertString must not receive a line break: %q", s))
	}

	l, ok := t.lines[t.row].insert(t.col, s)
	if !ok {
		return
	}
	t.lines[t.row] = l
	t.col += utf8.RuneCountInString(s)
	t.touch()
}

// InsertTab inserts spaces up to the next indentation stop. No-op when
// the indentation unit is empty.
func (t *TextArea) InsertTab() {
	if len(t.tab) == 0 {
		return
	}
	// The tab string is all spaces, so byte length equals width.
	n := len(t.tab) - t.col%len(t.tab)
	t.InsertString(t.tab[:n])
}

// InsertNewline splits the current line at the cursor. The text from the
// cursor to end of line, sentinel included, becomes the next line; the
// current line is re-terminated with a fresh sentinel. The cursor moves
// to the start of the new line. This is the only way lines are created.
func (t *TextArea) InsertNewline() {
	head, tail := t.lines[t.row].split(t.col)
	t.lines[t.row] = head
	t.lines = slices.Insert(t.lines, t.row+1, tail)
	t.row++
	t.col = 0
	t.touch()
}

// DeleteChar removes the character before the cursor (backspace
// semantics). At the start of a line it merges the line into the
// previous one, leaving the cursor on the join point. At the start of
// the buffer it is a no-op.
func (t *TextArea) DeleteChar() {
	if t.col == 0 {
		if t.row == 0 {
			return
		}
		// The join point is where the previous line's sentinel was;
		// the cursor lands on the character that replaced it.
		joinCol := t.lines[t.row-1].runeCount() - 1
		t.lines[t.row-1] = t.lines[t.row-1].merge(t.lines[t.row])
		t.lines = slices.Delete(t.lines, t.row, t.row+1)
		t.row--
		t.col = joinCol
		t.touch()
		return
	}

	l, ok := t.lines[t.row].remove(t.col - 1)
	if !ok {
		return
	}
	t.lines[t.row] = l
	t.col--
	t.touch()
}

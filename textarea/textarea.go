package textarea

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/editkit/style"
)

// TextArea is a multi-line editing buffer with a single cursor.
// It is not safe for concurrent mutation; the owning context applies
// one input at a time.
type TextArea struct {
	id       string
	lines    []line
	row, col int
	tab      string
	style    style.Style
	block    *Block
	revision atomic.Uint64
}

// New creates an empty TextArea: one sentinel-only line with the cursor
// at the origin. The indentation unit defaults to four spaces.
func New(opts ...Option) *TextArea {
	t := &TextArea{
		id:    uuid.New().String(),
		lines: []line{newLine("")},
		tab:   defaultTab,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ID returns the widget's unique identifier.
func (t *TextArea) ID() string {
	return t.id
}

// Lines returns the logical text lines with the sentinel stripped.
// The returned slice is a copy; mutating it does not affect the buffer.
func (t *TextArea) Lines() []string {
	out := make([]string, len(t.lines))
	for i, l := range t.lines {
		out[i] = l.trim()
	}
	return out
}

// LineCount returns the number of lines.
func (t *TextArea) LineCount() int {
	return len(t.lines)
}

// Line returns the logical text of one line, or "" if row is out of
// range.
func (t *TextArea) Line(row int) string {
	if row < 0 || row >= len(t.lines) {
		return ""
	}
	return t.lines[row].trim()
}

// Cursor returns the 0-based character-wise (row, col) cursor position.
func (t *TextArea) Cursor() (row, col int) {
	return t.row, t.col
}

// Revision returns a counter that increments on every text mutation.
// Cursor movement does not change it.
func (t *TextArea) Revision() uint64 {
	return t.revision.Load()
}

// Style returns the configured base style.
func (t *TextArea) Style() style.Style {
	return t.style
}

// Block returns the configured frame, or nil.
func (t *TextArea) Block() *Block {
	return t.block
}

// TabString returns the configured indentation unit.
func (t *TextArea) TabString() string {
	return t.tab
}

// touch records a text mutation.
func (t *TextArea) touch() {
	t.revision.Add(1)
}

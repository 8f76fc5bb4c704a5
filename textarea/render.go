package textarea

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/editkit/style"
)

// Span is a run of text rendered with a single style.
type Span struct {
	Text  string
	Style style.Style
}

// Width returns the display width of the span in terminal cells.
// Wide characters occupy two cells.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Text)
}

// RenderLines returns the styled span decomposition of the buffer, one
// span sequence per line. The cursor's line decomposes into three
// spans: the text before the cursor, the character under the cursor
// with reverse video, and the text after it. When the cursor sits on
// the sentinel, the highlighted cell is a blank. Other lines are a
// single plain span; their trailing sentinel renders indistinguishably
// from an ordinary space.
func (t *TextArea) RenderLines() [][]Span {
	base := t.style
	cursorStyle := base.Reverse()

	out := make([][]Span, len(t.lines))
	for i, l := range t.lines {
		if i != t.row {
			out[i] = []Span{{Text: string(l), Style: base}}
			continue
		}

		j, r, ok := l.runeAt(t.col)
		if !ok {
			// Defensive: address the sentinel cell.
			j, r = len(l)-1, sentinel
		}
		k := j + utf8.RuneLen(r)

		out[i] = []Span{
			{Text: string(l[:j]), Style: base},
			{Text: string(l[j:k]), Style: cursorStyle},
			{Text: string(l[k:]), Style: base},
		}
	}
	return out
}

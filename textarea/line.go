package textarea

import "unicode/utf8"

// sentinel is the synthetic trailing space appended to every line so
// the cursor always addresses an in-bounds character, even past the
// last real character of a line.
const sentinel = ' '

// line is a single buffer line. newLine appends the sentinel and every
// mutator preserves it, so "a line ends with the sentinel" holds by
// construction rather than by after-the-fact assertion.
type line string

// newLine wraps logical content in a sentinel-terminated line.
func newLine(content string) line {
	return line(content + string(sentinel))
}

// trim returns the logical text with the sentinel stripped.
func (l line) trim() string {
	return string(l[:len(l)-1])
}

// runeCount returns the number of characters including the sentinel.
func (l line) runeCount() int {
	return utf8.RuneCountInString(string(l))
}

// byteIndex resolves a character offset to a byte offset. Columns count
// Unicode scalar values; resolution is a linear scan because characters
// are variable-width.
func (l line) byteIndex(col int) (int, bool) {
	if col < 0 {
		return 0, false
	}
	n := 0
	for i := range string(l) {
		if n == col {
			return i, true
		}
		n++
	}
	return 0, false
}

// runeAt returns the byte offset and character at a column.
func (l line) runeAt(col int) (int, rune, bool) {
	if col < 0 {
		return 0, 0, false
	}
	n := 0
	for i, r := range string(l) {
		if n == col {
			return i, r, true
		}
		n++
	}
	return 0, 0, false
}

// insert places s before the character at col. s must not contain a
// line break; callers enforce that contract.
func (l line) insert(col int, s string) (line, bool) {
	i, ok := l.byteIndex(col)
	if !ok {
		return l, false
	}
	return l[:i] + line(s) + l[i:], true
}

// remove drops the character at col. The sentinel itself cannot be
// removed; a column at or past it reports failure.
func (l line) remove(col int) (line, bool) {
	if col >= l.runeCount()-1 {
		return l, false
	}
	i, r, ok := l.runeAt(col)
	if !ok {
		return l, false
	}
	return l[:i] + l[i+utf8.RuneLen(r):], true
}

// split divides the line at col. The head keeps everything before the
// split point plus a fresh sentinel; the tail takes the rest, including
// the existing sentinel.
func (l line) split(col int) (head, tail line) {
	i, ok := l.byteIndex(col)
	if !ok {
		i = len(l) - 1
	}
	return newLine(string(l[:i])), line(l[i:])
}

// merge appends other onto l, dropping l's sentinel. The other line's
// sentinel becomes the merged line's terminator, so the result is a
// valid line by construction.
func (l line) merge(other line) line {
	return l[:len(l)-1] + other
}

package textarea

// CursorForward moves the cursor one character right, wrapping to the
// start of the next line from the last character. At the final sentinel
// of the last line it stays put.
func (t *TextArea) CursorForward() {
	if t.col+1 >= t.lines[t.row].runeCount() {
		if t.row+1 < len(t.lines) {
			t.row++
			t.col = 0
		}
		return
	}
	t.col++
}

// CursorBack moves the cursor one character left, wrapping to the end
// of the previous line from column zero. At the origin it stays put.
func (t *TextArea) CursorBack() {
	if t.col == 0 {
		if t.row > 0 {
			t.row--
			t.col = t.lines[t.row].runeCount() - 1
		}
		return
	}
	t.col--
}

// CursorDown moves the cursor to the next line if one exists, clamping
// the column to the target line's last valid index.
func (t *TextArea) CursorDown() {
	if t.row+1 >= len(t.lines) {
		return
	}
	t.row++
	if n := t.lines[t.row].runeCount(); t.col >= n {
		t.col = n - 1
	}
}

// CursorUp moves the cursor to the previous line if one exists, clamping
// the column to the target line's last valid index.
func (t *TextArea) CursorUp() {
	if t.row == 0 {
		return
	}
	t.row--
	if n := t.lines[t.row].runeCount(); t.col >= n {
		t.col = n - 1
	}
}

// CursorStart moves the cursor to column zero.
func (t *TextArea) CursorStart() {
	t.col = 0
}

// CursorEnd moves the cursor to the line's last character index, which
// is the sentinel when the line has no other text.
func (t *TextArea) CursorEnd() {
	t.col = t.lines[t.row].runeCount() - 1
}

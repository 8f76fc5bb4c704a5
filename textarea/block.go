package textarea

import "github.com/dshills/editkit/style"

// BorderSet holds the runes used to draw a frame.
type BorderSet struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// DefaultBorders returns single-line box drawing runes.
func DefaultBorders() BorderSet {
	return BorderSet{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
	}
}

// Block is an optional decorative frame around the textarea. The
// textarea stores it opaquely and passes it through to the rendering
// collaborator; it never affects editing behavior.
type Block struct {
	Title   string
	Borders BorderSet
	Style   style.Style
}

// NewBlock creates a frame with default borders and the given title.
func NewBlock(title string) *Block {
	return &Block{
		Title:   title,
		Borders: DefaultBorders(),
	}
}

// WithStyle sets the frame style.
func (b *Block) WithStyle(s style.Style) *Block {
	b.Style = s
	return b
}

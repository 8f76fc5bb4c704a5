package style

// Attribute is a bit set of text attributes.
type Attribute uint16

const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
	AttrHidden
)

// Has reports whether attr is set.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style describes how a run of text is drawn. The zero value is not
// the terminal default; use Default.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// Default returns the terminal's own colors with no attributes.
func Default() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// New returns a style with the given foreground over the default
// background.
func New(fg Color) Style {
	return Default().WithForeground(fg)
}

// WithForeground returns a copy with the foreground replaced.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy with the background replaced.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a copy with bold added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Reverse returns a copy with reverse video added. The cursor cell
// renders with this.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Equals compares two styles field by field.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault reports whether the style would draw like Default().
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() &&
		s.Background.IsDefault() &&
		s.Attributes == AttrNone
}

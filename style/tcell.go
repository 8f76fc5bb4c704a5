package style

import "github.com/gdamore/tcell/v2"

// ToTcell converts a Style for a tcell screen. Default colors are left
// untouched so the terminal's own scheme shows through.
func ToTcell(s Style) tcell.Style {
	ts := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		ts = ts.Foreground(toTcellColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		ts = ts.Background(toTcellColor(s.Background))
	}

	if s.Attributes.Has(AttrBold) {
		ts = ts.Bold(true)
	}
	if s.Attributes.Has(AttrDim) {
		ts = ts.Dim(true)
	}
	if s.Attributes.Has(AttrItalic) {
		ts = ts.Italic(true)
	}
	if s.Attributes.Has(AttrUnderline) {
		ts = ts.Underline(true)
	}
	if s.Attributes.Has(AttrBlink) {
		ts = ts.Blink(true)
	}
	if s.Attributes.Has(AttrReverse) {
		ts = ts.Reverse(true)
	}
	if s.Attributes.Has(AttrStrikethrough) {
		ts = ts.StrikeThrough(true)
	}

	return ts
}

func toTcellColor(c Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

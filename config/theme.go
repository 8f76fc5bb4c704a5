package config

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/editkit/style"
)

// validateHex accepts the empty string (terminal default) or a
// "#rrggbb" value.
func validateHex(hex string) error {
	if hex == "" {
		return nil
	}
	_, err := colorful.Hex(hex)
	return err
}

// BaseStyle builds the widget style from the theme colors.
func (c Config) BaseStyle() style.Style {
	s := style.Default()
	if fg, ok := themeColor(c.Theme.Foreground); ok {
		s = s.WithForeground(fg)
	}
	if bg, ok := themeColor(c.Theme.Background); ok {
		s = s.WithBackground(bg)
	}
	return s
}

// FrameStyle derives the border color by pulling the foreground
// halfway toward the background, so the frame reads as muted on any
// theme. An unset background mutes toward black.
func (c Config) FrameStyle() style.Style {
	fg, ok := themeColor(c.Theme.Foreground)
	if !ok {
		return c.BaseStyle()
	}
	bg, ok := themeColor(c.Theme.Background)
	if !ok {
		bg = style.ColorBlack
	}
	return c.BaseStyle().WithForeground(fg.Blend(bg, 0.5))
}

// themeColor parses a theme hex value. Empty or malformed values fall
// back to the terminal default.
func themeColor(hex string) (style.Color, bool) {
	if hex == "" {
		return style.ColorDefault, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return style.ColorDefault, false
	}
	r, g, b := c.RGB255()
	return style.ColorFromRGB(r, g, b), true
}

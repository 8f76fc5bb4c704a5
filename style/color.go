package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color: the terminal default, a palette index, or
// a true-color RGB value.
type Color struct {
	R, G, B uint8
	// Indexed selects palette mode; R holds the index and G, B are
	// unused.
	Indexed bool
	// Default marks the terminal's own color.
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// A few fixed colors for callers that don't need a theme.
var (
	ColorBlack = Color{}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorRed   = Color{R: 255}
	ColorGreen = Color{G: 255}
	ColorBlue  = Color{B: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB builds a true color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex builds a palette color (0-255).
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex parses "#rgb" or "#rrggbb", with or without the hash.
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err
	}

	var parts [3]string
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			parts[i] = string(hex[i]) + string(hex[i])
		}
	case 6:
		for i := 0; i < 3; i++ {
			parts[i] = hex[2*i : 2*i+2]
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	var c Color
	var err error
	if c.R, err = parse(parts[0]); err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	if c.G, err = parse(parts[1]); err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	if c.B, err = parse(parts[2]); err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	return c, nil
}

// IsDefault reports whether this is the terminal default.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals compares two colors. Indexed and true colors never compare
// equal, even when they would render alike.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String renders "default", "idx(n)" or "#RRGGBB".
func (c Color) String() string {
	switch {
	case c.Default:
		return "default"
	case c.Indexed:
		return fmt.Sprintf("idx(%d)", c.R)
	default:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
}

// Blend interpolates toward other in RGB space. Amount 0 keeps the
// receiver, 1 yields other. Palette colors cannot be interpolated, so
// blending one snaps to the nearer endpoint.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Indexed || other.Indexed {
		if amount < 0.5 {
			return c
		}
		return other
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-amount) + float64(b)*amount)
	}
	return Color{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B)}
}

package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme holds the colours menu items are drawn with.
type Theme struct {
	TextColor               color.RGBA // Unselected title
	SelectedTextColor       color.RGBA // Focused title
	BackgroundColor         color.RGBA // Unselected item background
	SelectedBackgroundColor color.RGBA // Focused item background (plain shape)
	HighlightColor          color.RGBA // Rounded highlight drawn by the container (round-rect shape)
	FontPath                string     // Path to the primary UI font
}

var currentTheme = DefaultTheme()

// DefaultTheme is white text on black with a white focus highlight.
func DefaultTheme() Theme {
	return Theme{
		TextColor:               HexToColor(0xBBBBBB),
		SelectedTextColor:       HexToColor(0x000000),
		BackgroundColor:         HexToColor(0x000000),
		SelectedBackgroundColor: HexToColor(0xFFFFFF),
		HighlightColor:          HexToColor(0xFFFFFF),
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHexColor(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	if len(raw) == 6 {
		return HexToColor(uint32(v)), nil
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ColorToHex formats c as "#RRGGBB", dropping alpha.
func ColorToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

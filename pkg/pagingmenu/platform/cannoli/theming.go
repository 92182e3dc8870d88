// Package cannoli provides the menu palette for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
)

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		TextColor:               internal.HexToColor(0xFFFFFF),
		SelectedTextColor:       internal.HexToColor(0x000000),
		BackgroundColor:         internal.HexToColor(0x000000),
		SelectedBackgroundColor: internal.HexToColor(0xFFFFFF),
		HighlightColor:          internal.HexToColor(0x008080),
		FontPath:                fontPath,
	}
}

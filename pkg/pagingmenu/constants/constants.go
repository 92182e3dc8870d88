// Package constants defines shared constants and configuration values
// used throughout pagingmenu.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugLogEnvVar raises the internal log level to debug when set.
const DebugLogEnvVar = "PAGINGMENU_DEBUG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default sizing values.
const (
	DefaultItemMargin  float64 = 20  // Horizontal margin on each side of an item
	DefaultIconSpacing float64 = 8   // Gap between icon and title
	DefaultIconSize    int     = 24  // Edge length SVG icons are rasterised at
	DefaultFontSize    float64 = 16  // Point size for OpenType faces
	DefaultFontDPI     float64 = 72
)

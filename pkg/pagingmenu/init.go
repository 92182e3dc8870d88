// Package pagingmenu provides the items of a horizontally scrolling tab menu
// for handheld and embedded UIs.
//
// Each MenuItemView owns one content (text only, or icon and text), tracks
// whether it is the focused tab, and computes the size its container should
// give it under the active layout mode: Standard, SegmentedControl or
// Infinite. The container that scrolls and pages the row is not part of this
// package.
package pagingmenu

import (
	"image/color"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/constants"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/internal"
	"github.com/BrandonKowalski/pagingmenu/pkg/pagingmenu/platform/cannoli"
)

// InitOptions configures logging and the colour theme.
type InitOptions struct {
	IsCannoli            bool   // Use the Cannoli CFW palette
	CannoliFontPath      string // Font path recorded in the Cannoli theme
	PrimaryThemeColorHex uint32 // Custom highlight colour (0 keeps the palette's)
	LogPath              string // Full path for the log file including filename
	LogLevel             string // Application log level ("debug", "info", "warn", "error")
}

// Init sets up logging and selects the theme DefaultOptions reads from.
// Call it once before building menus.
func Init(options InitOptions) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		SetRawLogLevel(options.LogLevel)
	}

	if os.Getenv(constants.DebugLogEnvVar) != "" || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme()
	if options.IsCannoli {
		theme = cannoli.InitCannoliTheme(options.CannoliFontPath)
	}

	if options.PrimaryThemeColorHex != 0 {
		accent := internal.HexToColor(options.PrimaryThemeColorHex)
		theme.SelectedBackgroundColor = accent
		theme.HighlightColor = accent
	}

	internal.SetTheme(theme)
	internal.GetInternalLogger().Debug("pagingmenu initialised", "cannoli", options.IsCannoli)
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetLogLevel(internal.ParseLevel(level))
}

// HighlightColor is the colour a container should use for the rounded
// highlight behind the focused item in round-rect mode.
func HighlightColor() color.RGBA {
	return internal.GetTheme().HighlightColor
}

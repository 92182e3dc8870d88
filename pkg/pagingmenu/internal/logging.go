package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	output    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Must be called before the first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		output = os.Stderr
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stderr, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	setup()
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the library's own logger. It defaults to
// errors only so layout passes stay quiet.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newJSONLogger(internalLevelVar).With("component", "pagingmenu")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}

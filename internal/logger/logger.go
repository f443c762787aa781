package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON-structured logger for the analyzer at the given level.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Default is the default logger instance.
var Default = New(slog.LevelInfo)

// SetDebug swaps the default logger for a debug-level one.
func SetDebug() {
	Default = New(slog.LevelDebug)
}

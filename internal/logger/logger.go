// Package logger provides the application log. The TUI owns the
// terminal, so log records go to a file only.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
)

// New creates a logger writing JSON records to waystyle.log under dir.
// The returned func closes the log file.
func New(dir, level string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	path := filepath.Join(dir, "waystyle.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	return slog.New(handler), func() { file.Close() }, nil
}

// ParseLevel converts a string log level to slog.Level, defaulting to
// info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

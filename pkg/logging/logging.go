// Package logging configures structured logging with tint.
//
// The terminal belongs to the UI while the program runs, so logs are
// written to a file without colors.
//
// Usage:
//
//	closeLog, err := logging.SetupFile("splitwise.log", logging.LevelFromString("debug"))
//	defer closeLog()
//
// Environment variables (read by internal/config):
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
//	LOG_FILE:  log file path (default: splitwise.log)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// SetupFile appends logs to path at level and tags every record with a
// fresh session_id. The returned func closes the file.
func SetupFile(path string, level slog.Level) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	SetupWithWriter(f, level, true)
	return f.Close, nil
}

// SetupWithWriter configures logging to w at the given level.
func SetupWithWriter(w io.Writer, level slog.Level, noColor bool) {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		AddSource:  true,
		NoColor:    noColor,
	})
	slog.SetDefault(slog.New(handler).With("session_id", uuid.New().String()))
}

// LevelFromString maps debug, info, warn and error to slog levels,
// defaulting to INFO.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

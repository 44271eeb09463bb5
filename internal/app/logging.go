// Package app wires the box select tool into an interactive terminal
// application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel parses a level name. Unknown names return an error and
// slog.LevelInfo.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LoggerConfig configures the application logger.
type LoggerConfig struct {
	// Level is the minimum level written.
	Level slog.Level

	// File is the log file. The terminal belongs to the UI, so an empty
	// path discards output.
	File string

	// Output overrides File when set.
	Output io.Writer
}

// NewLogger builds a text logger. The returned closer releases the log
// file and is never nil.
func NewLogger(cfg LoggerConfig) (*slog.Logger, io.Closer, error) {
	out := cfg.Output
	var closer io.Closer = nopCloser{}

	if out == nil {
		if cfg.File == "" {
			out = io.Discard
		} else {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, NewOperationError("open log", cfg.File, err)
			}
			out, closer = f, f
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level})
	return slog.New(handler), closer, nil
}

// WithComponent returns logger tagged with a component attribute.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("component", component))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

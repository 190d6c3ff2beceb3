package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NewDiagnostic opens .wishkiosk/kiosk.log inside dir and returns a slog
// logger writing to it. The terminal belongs to the kiosk UI, so
// diagnostics never go to stderr while it runs. The caller closes the
// returned file.
func NewDiagnostic(dir, level, format string) (*slog.Logger, io.Closer, error) {
	stateDir := filepath.Join(dir, ".wishkiosk")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create .wishkiosk directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(stateDir, "kiosk.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open diagnostic log: %w", err)
	}

	return NewSlog(f, level, format), f, nil
}

// NewSlog builds a slog logger on w. Format "json" produces JSON lines,
// anything else the text handler. Level is one of debug, info, warn,
// error (case-insensitive) and defaults to info.
func NewSlog(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) slog.Level {
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

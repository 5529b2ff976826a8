package logging

import (
	"io"
	"log/slog"
)

// New creates a configured application logger writing to w.
// Callers pass stderr so log lines never mix with the JSON written to stdout.
// It standardizes common keys (e.g., "error" -> "err").
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForDebug returns a debug logger on w when debug is set, and a no-op logger otherwise.
func ForDebug(w io.Writer, debug bool) *slog.Logger {
	if debug {
		return New(w, slog.LevelDebug)
	}
	return NewNop()
}

// Package logger configures the structured logger used by the span CLI.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Config controls where and how much the CLI logs.
type Config struct {
	Out   io.Writer
	Debug bool
}

// New returns a text logger writing to cfg.Out. Without Debug, or without
// an Out, everything is discarded.
func New(cfg Config) *slog.Logger {
	if !cfg.Debug || cfg.Out == nil {
		return Discard()
	}

	h := slog.NewTextHandler(cfg.Out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

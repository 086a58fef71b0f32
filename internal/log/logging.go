// Package log builds the slog.Logger used by the webkeys CLI.
//
// Records go to stderr and, when a log file is configured, to that file too.
// Stdout only ever carries command output.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is below Debug and logs every table lookup.
const LevelTrace slog.Level = -8

// Config holds the logging flags shared by all commands.
type Config struct {
	Level  string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"WEBKEYS_LOG_LEVEL"`
	File   string `help:"Also write logs to this file" env:"WEBKEYS_LOG_FILE"`
	Format string `help:"Log record format" default:"text" enum:"text,json" env:"WEBKEYS_LOG_FORMAT"`
}

// ParseLevel maps a level name to its slog level. Unknown names are Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends records to every handler that accepts them.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

func newHandler(format string, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// New builds a logger writing to stderr and, when cfg.File is set, to that
// file as well. Closers returned must be closed by the caller once logging is
// done.
func New(cfg Config, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	handlers := fanout{newHandler(cfg.Format, stderr, level)}
	var closers []io.Closer

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers, newHandler(cfg.Format, f, level))
	}
	return slog.New(handlers), closers, nil
}

// SetupLogger builds the process logger on os.Stderr. Stdout is reserved for
// command output.
func SetupLogger(cfg Config) (*slog.Logger, []io.Closer, error) {
	return New(cfg, os.Stderr)
}

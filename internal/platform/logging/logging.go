// Package logging builds the process logger and carries request-scoped
// loggers through a context.
//
// The terminal UI owns stdout, so logs go to a file or stderr:
//
//	out, err := logging.Open(cfg.Log.File)
//	defer out.Close()
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, out)
//
// Services log failures with the operation and the entity involved:
//
//	logger.ErrorContext(ctx, "failed to create todo",
//	    slog.String("operation", "Create"),
//	    slog.String("todo_id", id.String()),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Supported output formats. Anything else falls back to FormatJSON.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type loggerKey struct{}

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error", case-insensitive; unknown values mean info). Debug
// loggers also record the source location. Sensitive attributes are masked
// before they are written.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

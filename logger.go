package pixelgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/pixelgo/buffer"
	"github.com/hupe1980/pixelgo/pixel"
)

// Logger wraps slog.Logger with pixelgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPixelType adds a pixel type field to the logger.
func (l *Logger) WithPixelType(t pixel.Type) *Logger {
	return &Logger{
		Logger: l.Logger.With("pixel_type", t.String()),
	}
}

// WithShape adds a shape field to the logger.
func (l *Logger) WithShape(s buffer.Shape) *Logger {
	return &Logger{
		Logger: l.Logger.With("shape", s.String()),
	}
}

// WithPlane adds a plane index field to the logger.
func (l *Logger) WithPlane(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("plane", index),
	}
}

// LogPlaneRead logs the decode of one plane during ReadVariant.
func (l *Logger) LogPlaneRead(ctx context.Context, index, samples int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "plane read failed",
			"plane", index,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "plane read completed",
			"plane", index,
			"samples", samples,
		)
	}
}

// LogPlaneWrite logs the encode of one plane during WriteVariant.
func (l *Logger) LogPlaneWrite(ctx context.Context, index, samples int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "plane write failed",
			"plane", index,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "plane write completed",
			"plane", index,
			"samples", samples,
		)
	}
}

// LogConvert logs a pixel type conversion.
func (l *Logger) LogConvert(from, to pixel.Type, samples int, err error) {
	if err != nil {
		l.Error("convert failed",
			"from", from.String(),
			"to", to.String(),
			"error", err,
		)
	} else {
		l.Debug("convert completed",
			"from", from.String(),
			"to", to.String(),
			"samples", samples,
		)
	}
}

// LogSnapshot logs a variant snapshot save or load.
func (l *Logger) LogSnapshot(op string, t pixel.Type, samples int, err error) {
	if err != nil {
		l.Error("snapshot "+op+" failed",
			"pixel_type", t.String(),
			"error", err,
		)
	} else {
		l.Debug("snapshot "+op+" completed",
			"pixel_type", t.String(),
			"samples", samples,
		)
	}
}

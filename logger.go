package pointgrid

import (
	"log/slog"
	"os"

	"github.com/hupe1980/pointgrid/dtype"
	"github.com/hupe1980/pointgrid/projection"
)

// Logger wraps slog.Logger with pointgrid-specific context.
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

// WithDataType adds the scalar encoding field to the logger.
func (l *Logger) WithDataType(dt dtype.DataType) *Logger {
	return &Logger{
		Logger: l.Logger.With("dtype", dt.String()),
	}
}

// WithMode adds the projection mode field to the logger.
func (l *Logger) WithMode(mode projection.Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithNumPoints adds the point count field to the logger.
func (l *Logger) WithNumPoints(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("num_points", n),
	}
}

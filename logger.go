package refstore

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with refstore-specific context.
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

// WithSlot adds a slot index field to the logger.
func (l *Logger) WithSlot(index uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("slot", index),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(index uint32, live int) {
	l.Debug("object inserted",
		"slot", index,
		"live", live,
	)
}

// LogClean logs a sweep operation.
func (l *Logger) LogClean(removed, live int) {
	if removed > 0 {
		l.Debug("sweep completed",
			"removed", removed,
			"live", live,
		)
	}
}

// LogRemove logs an eager removal attempt.
func (l *Logger) LogRemove(index uint32, freed bool) {
	l.Debug("object removed",
		"slot", index,
		"freed", freed,
	)
}

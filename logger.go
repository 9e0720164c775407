package vectordb

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with vectordb-specific context.
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

// WithCollection adds a collection field to the logger.
func (l *Logger) WithCollection(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("collection", name),
	}
}

// LogUpsert logs an upsert operation.
func (l *Logger) LogUpsert(collection string, id uuid.UUID, dimension int) {
	l.Debug("upsert completed",
		"collection", collection,
		"id", id,
		"dimension", dimension,
	)
}

// LogBatchUpsert logs a batch upsert operation.
func (l *Logger) LogBatchUpsert(collection string, count int) {
	l.Debug("batch upsert completed",
		"collection", collection,
		"count", count,
	)
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(collection string, id uuid.UUID, removed bool) {
	l.Debug("delete completed",
		"collection", collection,
		"id", id,
		"removed", removed,
	)
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, collection string, k, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"collection", collection,
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"collection", collection,
			"k", k,
			"results", resultsFound,
		)
	}
}

// LogAddCollection logs the creation of a collection.
func (l *Logger) LogAddCollection(name string, replaced bool) {
	l.Info("collection created",
		"collection", name,
		"replaced", replaced,
	)
}

// LogDropCollection logs the removal of a collection.
func (l *Logger) LogDropCollection(name string, dropped bool) {
	l.Info("collection dropped",
		"collection", name,
		"dropped", dropped,
	)
}

// Package ctxlog carries the per-run slog.Logger through context.Context so
// that library packages log through the instance the App configured instead
// of the process-wide default.
package ctxlog

import (
	"context"
	"log/slog"
)

// LevelTrace sits below slog.LevelDebug for step-by-step tracing.
const LevelTrace = slog.LevelDebug - 4

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// discard is handed out when no logger was attached, e.g. in unit tests that
// call a package directly.
var discard = slog.New(slog.DiscardHandler)

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If none is attached it
// returns a logger that drops everything.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

// Trace logs msg at LevelTrace.
func Trace(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Log(ctx, LevelTrace, msg, args...)
}

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Info("hello", "path", "a.png")

	require.Same(t, logger, FromContext(ctx))
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "path=a.png")
}

func TestFromContext_MissingLoggerDiscards(t *testing.T) {
	t.Parallel()

	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestTrace_RespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	debugOnly := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Trace(WithLogger(context.Background(), debugOnly), "hidden")
	assert.Empty(t, buf.String())

	tracing := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: LevelTrace}))
	Trace(WithLogger(context.Background(), tracing), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

package logger

import (
	"bytes"
	"errors"
	"log"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest // replaces the default logger
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		JSON:     true,
		MinLevel: slog.LevelDebug,
		Output:   &buf,
	})

	slog.Debug("a debug line", "key", "value")

	assert.Contains(t, buf.String(), `"msg":"a debug line"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestConfigureLoggingWithOptions_Text(t *testing.T) { //nolint:paralleltest // replaces the default logger
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		MinLevel: slog.LevelInfo,
		Output:   &buf,
	})

	slog.Debug("filtered out")
	slog.Info("kept")

	assert.NotContains(t, buf.String(), "filtered out")
	assert.Contains(t, buf.String(), "kept")
}

func TestLegacyRedirect(t *testing.T) { //nolint:paralleltest // replaces the default logger
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		JSON:   true,
		Output: &buf,
	})

	// The old log package should land in the same handler.
	log.Println("legacy line")

	assert.Contains(t, buf.String(), "legacy line")
}

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	t.Run("nil in, nil out", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, AnnotateError(nil, "key", "value"))
	})

	t.Run("message and unwrap preserved", func(t *testing.T) {
		t.Parallel()

		err := AnnotateError(errBoom, "left_pos", 3)
		require.EqualError(t, err, "boom")
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("attributes surface in log output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := &slogErrorLogger{
			inner: slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		}

		l := slog.New(handler)
		l.Error("sort failed", "error", AnnotateError(errBoom, "left_pos", 3, "right_pos", 4))

		assert.Contains(t, buf.String(), `"error":"boom"`)
		assert.Contains(t, buf.String(), `"left_pos":3`)
		assert.Contains(t, buf.String(), `"right_pos":4`)
	})

	t.Run("plain errors pass through untouched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := &slogErrorLogger{
			inner: slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		}

		slog.New(handler).Error("sort failed", "error", errBoom)

		assert.Contains(t, buf.String(), "boom")
	})
}

func TestAnnotatedErrorsWithTestLogger(t *testing.T) {
	t.Parallel()

	// Annotated errors should log cleanly through any handler.
	l := slog.New(&slogErrorLogger{inner: slogt.New(t).Handler()})
	l.Info("annotated", "error", AnnotateError(errBoom, "count", 2))
}

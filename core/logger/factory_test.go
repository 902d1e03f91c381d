package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/roundup/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("json formatter overrides text", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithJSONFormatter())
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("includes static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test", entry["svc"])
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("development uses text and debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("development", "roundup"))
		log.Debug("details")
		out := buf.String()
		assert.Contains(t, out, "msg=details")
		assert.Contains(t, out, "service=roundup")
		assert.Contains(t, out, "env=development")
	})

	t.Run("anything else uses production", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("staging", "roundup"))
		log.Debug("dropped")
		log.Info("kept")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestRunIDExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(logger.RunIDExtractor),
	)

	ctx, id := logger.WithRunID(context.Background())
	require.NotEmpty(t, id)

	got, ok := logger.RunIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	log.InfoContext(ctx, "started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["run_id"])
}

func TestRunIDExtractor_NoID(t *testing.T) {
	t.Parallel()

	_, ok := logger.RunIDExtractor(context.Background())
	assert.False(t, ok)
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	type key string
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("topic", key("topic")),
	)

	ctx := context.WithValue(context.Background(), key("topic"), "AI")
	log.InfoContext(ctx, "msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "AI", entry["topic"])
}

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valdi/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
		)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("json formatter overrides text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Zero(t, buf.Len())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("static attributes and service", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("component", "factory")),
			logger.WithService("valdi"),
			logger.WithService(""),
		)
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "factory", entry["component"])
		assert.Equal(t, "valdi", entry["service"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("request_id", ctxKey),
			logger.WithContextValue("", ctxKey),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.With(slog.String("scope", "test")).InfoContext(ctx, "context msg")
		entry := decode(t, buf)
		assert.Equal(t, "42", entry["request_id"])
		assert.Equal(t, "test", entry["scope"])
	})

	t.Run("missing context value adds nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", key("id")))
		log.InfoContext(context.Background(), "msg")
		_, ok := decode(t, buf)["request_id"]
		assert.False(t, ok)
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
	assert.NotPanics(t, func() {
		logger.New(logger.WithFormat(logger.FormatText), logger.WithOutput(&bytes.Buffer{}))
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logger.ParseLevel("verbose")
	assert.ErrorIs(t, err, logger.ErrUnknownLevel)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Error("nowhere") })
}

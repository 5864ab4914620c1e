package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/hunterprice/internal/config"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("levels filter output", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, buf)
		require.NoError(t, err)
		require.NotNil(t, l)

		l.Info("hidden")
		l.Warn("shown", "key", "value")

		entries := buf.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0]["msg"])
		assert.Equal(t, "WARN", entries[0]["level"])
		assert.Equal(t, "value", entries[0]["key"])
	})

	t.Run("sets default logger", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		_, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "debug"}, buf)
		require.NoError(t, err)

		slog.Debug("through default")
		assert.Contains(t, buf.String(), "through default")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "chatty"}, &logger.TestLogBuffer{})
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		got, err := logger.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestFromContext(t *testing.T) {
	l, buf := logger.NewTestLogger()
	fallback, fallbackBuf := logger.NewTestLogger()

	ctx := logger.WithLogger(context.Background(), l)
	logger.FromContextOrDefault(ctx, fallback).Info("scoped")
	logger.FromContextOrDefault(context.Background(), fallback).Info("fallback")

	assert.Contains(t, buf.String(), "scoped")
	assert.NotContains(t, buf.String(), "fallback")
	assert.Contains(t, fallbackBuf.String(), "fallback")

	assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Equal(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)

	Info("hack resolved", "attacker_id", "p1", "loot", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, EnvironmentTest, entry[AttrKeyEnvironment])
	assert.Equal(t, "hack resolved", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "p1", entry["attacker_id"])
	assert.Equal(t, float64(42), entry["loot"])
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(DefaultConfig(), &buf)
	Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotNil(t, FromContext(ctx))
}

func TestConfigPresets(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		cfg := ProductionConfig()
		assert.True(t, cfg.IsJSON())
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
		assert.False(t, cfg.AddSource)
	})

	t.Run("development", func(t *testing.T) {
		cfg := DevelopmentConfig()
		assert.False(t, cfg.IsJSON())
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
		assert.True(t, cfg.AddSource)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		assert.Equal(t, slog.LevelInfo, Config{Level: "loud"}.LogLevel())
	})
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "APP_VERSION",
	"STORAGE_BACKEND", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_CONNS",
	"TX_MAX_ATTEMPTS", "TX_RETRY_BASE_DELAY", "TX_RETRY_MAX_DELAY",
	"STAMINA_REGEN_AMOUNT", "STAMINA_REGEN_INTERVAL", "CATALOG_CACHE_TTL",
	"DISCORD_WEBHOOK_ID", "DISCORD_WEBHOOK_TOKEN", "OTEL_EXPORTER_OTLP_ENDPOINT", "RNG_SEED",
	"DEAD_LETTER_PATH", "ENV_SCHEMA_VERSION", "SERVICE_NAME", "LOG_DIR", "TRUSTED_PROXIES",
	"SEED_ON_START", "WORKER_COUNT", "WORKER_QUEUE_SIZE",
}

// clearEnvVars unsets every config variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "placeholder")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, 8, cfg.TxMaxAttempts)
	assert.Equal(t, 75*time.Millisecond, cfg.TxRetryBaseDelay)
	assert.Equal(t, 1200*time.Millisecond, cfg.TxRetryMaxDelay)
	assert.Equal(t, 5, cfg.StaminaRegenAmount)
	assert.Equal(t, time.Minute, cfg.StaminaRegenInterval)
	assert.Equal(t, int64(0), cfg.RNGSeed)
	assert.Equal(t, "hackarena", cfg.ServiceName)
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.True(t, cfg.SeedOnStart)
	assert.Empty(t, cfg.TrustedProxies)
	assert.False(t, cfg.DiscordRelayEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "3000")
	t.Setenv("API_KEY", "custom-api-key")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("TX_MAX_ATTEMPTS", "3")
	t.Setenv("TX_RETRY_BASE_DELAY", "10ms")
	t.Setenv("STAMINA_REGEN_INTERVAL", "30s")
	t.Setenv("RNG_SEED", "42")
	t.Setenv("DISCORD_WEBHOOK_ID", "123")
	t.Setenv("DISCORD_WEBHOOK_TOKEN", "abc")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, 3, cfg.TxMaxAttempts)
	assert.Equal(t, 10*time.Millisecond, cfg.TxRetryBaseDelay)
	assert.Equal(t, 30*time.Second, cfg.StaminaRegenInterval)
	assert.Equal(t, int64(42), cfg.RNGSeed)
	assert.True(t, cfg.DiscordRelayEnabled())
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"missing api key", map[string]string{}, "API_KEY"},
		{"non-numeric port", map[string]string{"API_KEY": "k", "PORT": "not-a-number"}, "parse env"},
		{"negative port", map[string]string{"API_KEY": "k", "PORT": "-1"}, "invalid PORT"},
		{"port above range", map[string]string{"API_KEY": "k", "PORT": "65536"}, "invalid PORT"},
		{"unknown backend", map[string]string{"API_KEY": "k", "STORAGE_BACKEND": "sqlite"}, "STORAGE_BACKEND"},
		{"zero attempts", map[string]string{"API_KEY": "k", "TX_MAX_ATTEMPTS": "0"}, "TX_MAX_ATTEMPTS"},
		{"bad duration", map[string]string{"API_KEY": "k", "STAMINA_REGEN_INTERVAL": "soon"}, "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "testuser",
		DBPassword: "p@ss:word",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "hackarena",
	}

	assert.Equal(t, "postgres://testuser:p@ss:word@db:5433/hackarena?sslmode=disable", cfg.GetDBConnString())
}

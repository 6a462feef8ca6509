package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	APIKey      string `env:"API_KEY"` // API key for admin routes
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"APP_VERSION" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"hackarena"`
	LogDir      string `env:"LOG_DIR"` // empty logs to stdout only

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"postgres"`
	DBUser         string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost         string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string        `env:"DB_PORT" envDefault:"5432"`
	DBName         string        `env:"DB_NAME" envDefault:"hackarena"`
	DBMaxConns     int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdle  time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLife  time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// SeedOnStart loads the embedded starter catalog at boot. The memory
	// backend is always seeded.
	SeedOnStart bool `env:"SEED_ON_START" envDefault:"true"`

	TxMaxAttempts    int           `env:"TX_MAX_ATTEMPTS" envDefault:"8"`
	TxRetryBaseDelay time.Duration `env:"TX_RETRY_BASE_DELAY" envDefault:"75ms"`
	TxRetryMaxDelay  time.Duration `env:"TX_RETRY_MAX_DELAY" envDefault:"1200ms"`

	StaminaRegenAmount   int           `env:"STAMINA_REGEN_AMOUNT" envDefault:"5"`
	StaminaRegenInterval time.Duration `env:"STAMINA_REGEN_INTERVAL" envDefault:"1m"`
	WorkerCount          int           `env:"WORKER_COUNT" envDefault:"2"`
	WorkerQueueSize      int           `env:"WORKER_QUEUE_SIZE" envDefault:"16"`

	CatalogCacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"512"`
	CatalogCacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"3"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	DeadLetterPath  string        `env:"DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	DiscordWebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	DiscordWebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// RNGSeed seeds the hack sampler. Zero means a random seed.
	RNGSeed int64 `env:"RNG_SEED" envDefault:"0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load(ConfigPathEnvFile)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT value: %d", c.Port))
	}
	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if c.StorageBackend != BackendPostgres && c.StorageBackend != BackendMemory {
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendMemory, c.StorageBackend))
	}
	if c.TxMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("TX_MAX_ATTEMPTS must be at least 1, got %d", c.TxMaxAttempts))
	}
	if c.StaminaRegenAmount < 0 {
		errs = append(errs, fmt.Errorf("STAMINA_REGEN_AMOUNT must not be negative, got %d", c.StaminaRegenAmount))
	}
	return errors.Join(errs...)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DiscordRelayEnabled reports whether feed entries should be mirrored to Discord
func (c *Config) DiscordRelayEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

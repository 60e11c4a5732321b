// Package config loads process configuration from the environment, with an
// optional HashiCorp Vault KV v2 overlay for secrets.
package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Config is the full configuration surface shared by the API and the worker.
type Config struct {
	Env string

	DatabaseURL string

	JWTSecret            string
	JWTAlg               string
	AccessTokenExpireMin int

	OutboxBatchSize      int
	OutboxLockTimeoutSec int
	OutboxMaxAttempts    int

	LogLevel        string
	LogJSON         bool
	RequestIDHeader string

	OTLPEndpoint string

	HTTPAddr          string
	WorkerMetricsPort int
	WorkerID          string

	VaultAddr       string
	VaultToken      string
	VaultSecretPath string
}

// Load reads the configuration from the environment, applying defaults.
// When VAULT_ADDR is set, DATABASE_URL and JWT_SECRET are taken from the
// Vault KV v2 secret at VAULT_SECRET_PATH; the environment is the fallback
// for keys absent from the secret.
func Load() (Config, error) {
	cfg := Config{
		Env: getenv("ENV", "dev"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:            getenv("JWT_SECRET", "change-me"),
		JWTAlg:               getenv("JWT_ALG", "HS256"),
		AccessTokenExpireMin: getint("ACCESS_TOKEN_EXPIRE_MIN", 60),

		OutboxBatchSize:      getint("OUTBOX_BATCH_SIZE", 10),
		OutboxLockTimeoutSec: getint("OUTBOX_LOCK_TIMEOUT_SEC", 30),
		OutboxMaxAttempts:    getint("OUTBOX_MAX_ATTEMPTS", 5),

		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogJSON:         getbool("LOG_JSON", true),
		RequestIDHeader: getenv("REQUEST_ID_HEADER", "X-Request-Id"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),

		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		WorkerMetricsPort: getint("WORKER_METRICS_PORT", 9100),
		WorkerID:          getenv("WORKER_ID", "worker"),

		VaultAddr:       os.Getenv("VAULT_ADDR"),
		VaultToken:      os.Getenv("VAULT_TOKEN"),
		VaultSecretPath: getenv("VAULT_SECRET_PATH", "secret/data/qhse-service"),
	}

	if cfg.VaultAddr != "" {
		if err := cfg.loadVaultSecrets(); err != nil {
			return Config{}, fmt.Errorf("vault secrets: %w", err)
		}
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}

// loadVaultSecrets overlays DATABASE_URL and JWT_SECRET from the configured
// KV v2 secret. Keys missing from the secret keep their environment values.
func (c *Config) loadVaultSecrets() error {
	sm, err := NewSecretManager(c.VaultAddr, c.VaultToken)
	if err != nil {
		return err
	}
	secrets, err := sm.GetKV2(c.VaultSecretPath)
	if err != nil {
		return err
	}
	if v, ok := secrets["DATABASE_URL"].(string); ok && v != "" {
		c.DatabaseURL = v
	}
	if v, ok := secrets["JWT_SECRET"].(string); ok && v != "" {
		c.JWTSecret = v
	}
	return nil
}

// NewLogger builds the process logger per LOG_LEVEL / LOG_JSON.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if !c.LogJSON {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	zc.Level = lvl
	return zc.Build()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

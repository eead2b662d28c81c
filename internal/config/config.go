// Package config loads the rally server configuration. Values come from the
// built-in defaults, then an optional YAML file named by RALLY_CONFIG_FILE,
// then environment variables, each layer overriding the previous one.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/rally/pkg/logging"
)

// FileEnv names the environment variable holding the YAML config path.
const FileEnv = "RALLY_CONFIG_FILE"

// Config is the server configuration.
type Config struct {
	ListenAddr      string        `yaml:"listen_addr" env:"RALLY_LISTEN_ADDR"`
	DBPath          string        `yaml:"db_path" env:"RALLY_DB_PATH"`
	JWTSecret       string        `yaml:"jwt_secret" env:"RALLY_JWT_SECRET"`
	TokenTTL        time.Duration `yaml:"token_ttl" env:"RALLY_TOKEN_TTL"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL"`
	CORSOrigin      string        `yaml:"cors_origin" env:"RALLY_CORS_ORIGIN"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"RALLY_SHUTDOWN_TIMEOUT"`

	// FaucetEnabled turns on LedgerService.Fund. Development only.
	FaucetEnabled bool `yaml:"faucet_enabled" env:"RALLY_FAUCET_ENABLED"`
	// FaucetMax caps a single Fund call, in smallest units.
	FaucetMax uint64 `yaml:"faucet_max" env:"RALLY_FAUCET_MAX"`

	// OTelEndpoint is the OTLP/HTTP collector URL, e.g. "http://localhost:4318".
	// Tracing is off when it is empty.
	OTelEndpoint string `yaml:"otel_endpoint" env:"RALLY_OTEL_ENDPOINT"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		DBPath:          "./data/rally.db",
		TokenTTL:        24 * time.Hour,
		LogLevel:        "info",
		CORSOrigin:      "*",
		ShutdownTimeout: 10 * time.Second,
		FaucetMax:       10_000_000_000,
	}
}

// Load builds the configuration from defaults, the optional YAML file and
// the environment, and validates the result.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required (RALLY_JWT_SECRET)"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

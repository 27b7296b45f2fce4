// Package config provides configuration structures and loading logic for the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumopay/moneta/pkg/money"
)

// Config holds the global configuration for the moneta CLI.
type Config struct {
	Currency CurrencyConfig `yaml:"currency"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CurrencyConfig holds currency defaults.
type CurrencyConfig struct {
	Default string `yaml:"default"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Load reads configuration from a file and applies environment variable
// overrides. An empty path loads defaults plus overrides only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		// Defaults
		Currency: CurrencyConfig{
			Default: money.DefaultCurrency,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	if path != "" {
		//nolint:gosec // Config file path is chosen by the invoking user
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("MONETA_DEFAULT_CURRENCY"); val != "" {
		cfg.Currency.Default = val
	}
	if val := os.Getenv("MONETA_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("MONETA_LOG_PRETTY"); val == "true" {
		cfg.Logging.Pretty = true
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !money.ValidCurrencyCode(c.Currency.Default) {
		return fmt.Errorf("invalid default currency %q: must be exactly 3 uppercase letters", c.Currency.Default)
	}
	return nil
}

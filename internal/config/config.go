// Package config handles runtime configuration: development defaults, an
// optional YAML overlay, and environment variable overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Config holds runtime settings for the CareVault backend.
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`
	// DatabaseURL is the Postgres DSN. Required outside of tests.
	DatabaseURL string `yaml:"database_url"`
	// AuditLogPath is where the append-only security log lives.
	AuditLogPath string `yaml:"audit_log_path"`
	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string `yaml:"allowed_origins"`
	// LoginRatePerMinute caps credential-endpoint requests per client IP.
	LoginRatePerMinute int `yaml:"login_rate_per_minute"`
	// ResetOnStart drops and recreates application tables at startup.
	// Destructive; must be opted into explicitly, it is never the default.
	ResetOnStart bool `yaml:"reset_on_start"`
}

func defaults() Config {
	return Config{
		Port:               "5050",
		AuditLogPath:       "security.log",
		LoginRatePerMinute: 20,
	}
}

// Load builds a Config by applying defaults, then overlaying the YAML file
// named by CONFIG_FILE (if set), then individual environment variables.
// Env always wins so deploys can tweak a single value without a file edit.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("AUDIT_LOG_PATH"); v != "" {
		cfg.AuditLogPath = v
	}
	if v := os.Getenv("LOGIN_RATE_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("LOGIN_RATE_PER_MINUTE: %w", err)
		}
		cfg.LoginRatePerMinute = n
	}
	if v := os.Getenv("DB_RESET"); v != "" {
		cfg.ResetOnStart = v == "true" || v == "1"
	}

	return cfg, nil
}

// Package config loads the process configuration from the environment once
// at startup. The resulting Config is immutable and passed explicitly to
// every component; nothing reads ambient globals after Load returns.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"splitbook/internal/core"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	SQLiteDBPath string

	// Participants. Exactly two; codes are stored with each expense,
	// names appear in views and exports.
	PayerACode string
	PayerAName string
	PayerBCode string
	PayerBName string

	// Display
	Currency string

	// Logging
	LogLevel  slog.Level
	LogPretty bool
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8081"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/splitbook.db"),

		PayerACode: getEnv("PAYER_A_CODE", "me"),
		PayerAName: getEnv("PAYER_A_NAME", "Soumajit"),
		PayerBCode: getEnv("PAYER_B_CODE", "her"),
		PayerBName: getEnv("PAYER_B_NAME", "Rimpa"),

		Currency: getEnv("CURRENCY", "₹"),

		LogLevel:  getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		LogPretty: getEnvBool("LOG_PRETTY", false),
	}
}

// Pair returns the configured participant pair.
func (c *Config) Pair() core.Pair {
	return core.Pair{
		A: core.Participant{Code: c.PayerACode, Name: c.PayerAName},
		B: core.Participant{Code: c.PayerBCode, Name: c.PayerBName},
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty")
	} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
			}
		}
	}

	for _, p := range []struct{ field, value string }{
		{"PAYER_A_CODE", c.PayerACode},
		{"PAYER_A_NAME", c.PayerAName},
		{"PAYER_B_CODE", c.PayerBCode},
		{"PAYER_B_NAME", c.PayerBName},
	} {
		if strings.TrimSpace(p.value) == "" {
			errs = append(errs, fmt.Sprintf("%s cannot be empty", p.field))
		}
	}
	if c.PayerACode == c.PayerBCode {
		errs = append(errs, fmt.Sprintf("payer codes must differ, both are '%s'", c.PayerACode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return defaultValue
}

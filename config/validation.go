package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ValidateConfig checks that the configuration is complete and coherent.
func ValidateConfig(cfg *Config) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	switch cfg.StorageDriver {
	case DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q (expected %s or %s)", cfg.StorageDriver, DriverSQLite, DriverMemory)
	}
	if cfg.StorageDriver == DriverSQLite && cfg.DatabaseFile == "" {
		return fmt.Errorf("database file is required for the sqlite driver")
	}
	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
	}
	return nil
}

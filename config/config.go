package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage driver names accepted by Config.StorageDriver.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// DataDir is where the slot database lives.
	DataDir string `yaml:"data_dir"`

	// StorageDriver selects the slot store backend: sqlite or memory.
	StorageDriver string `yaml:"storage_driver"`

	// DatabaseFile is the slot database filename inside DataDir.
	DatabaseFile string `yaml:"database_file"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DatabasePath returns the full path of the slot database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// LoadConfig builds a Config from defaults, an optional YAML file named by
// TEKA_CONFIG, and TEKA_* environment variable overrides, in that order.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("TEKA_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{
		StorageDriver: DriverSQLite,
		DatabaseFile:  "teka.db",
		LogLevel:      "info",
	}

	switch GetEnvironment() {
	case Test:
		// Tests run against a throwaway in-memory store by default.
		cfg.StorageDriver = DriverMemory
		cfg.DataDir = os.TempDir()
		cfg.LogLevel = "warn"
	default:
		if home, err := os.UserHomeDir(); err == nil {
			cfg.DataDir = filepath.Join(home, ".teka")
		} else {
			cfg.DataDir = "."
		}
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TEKA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TEKA_STORAGE_DRIVER"); v != "" {
		cfg.StorageDriver = v
	}
	if v := os.Getenv("TEKA_DATABASE_FILE"); v != "" {
		cfg.DatabaseFile = v
	}
	if v := os.Getenv("TEKA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

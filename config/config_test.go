package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("TEKA_ENV")
	os.Unsetenv("TEKA_CONFIG")
	os.Unsetenv("TEKA_DATA_DIR")
	os.Unsetenv("TEKA_STORAGE_DRIVER")
	os.Unsetenv("TEKA_DATABASE_FILE")
	os.Unsetenv("TEKA_LOG_LEVEL")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "teka.db", cfg.DatabaseFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, filepath.Join(cfg.DataDir, "teka.db"), cfg.DatabasePath())
}

func TestLoadConfigTestEnvironment(t *testing.T) {
	t.Setenv("TEKA_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Tests default to a throwaway store.
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TEKA_DATA_DIR", "/tmp/teka-test")
	t.Setenv("TEKA_STORAGE_DRIVER", DriverMemory)
	t.Setenv("TEKA_DATABASE_FILE", "other.db")
	t.Setenv("TEKA_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/teka-test", cfg.DataDir)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "other.db", cfg.DatabaseFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teka.yaml")
	body := "data_dir: " + dir + "\nstorage_driver: memory\nlog_level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("TEKA_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid sqlite",
			cfg:  Config{DataDir: "/tmp", StorageDriver: DriverSQLite, DatabaseFile: "teka.db", LogLevel: "info"},
		},
		{
			name: "valid memory without database file",
			cfg:  Config{DataDir: "/tmp", StorageDriver: DriverMemory},
		},
		{
			name:    "missing data dir",
			cfg:     Config{StorageDriver: DriverMemory},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     Config{DataDir: "/tmp", StorageDriver: "postgres"},
			wantErr: true,
		},
		{
			name:    "sqlite without database file",
			cfg:     Config{DataDir: "/tmp", StorageDriver: DriverSQLite},
			wantErr: true,
		},
		{
			name:    "bad log level",
			cfg:     Config{DataDir: "/tmp", StorageDriver: DriverMemory, LogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("TEKA_ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("TEKA_ENV", "test")
	assert.Equal(t, Test, GetEnvironment())
	assert.True(t, IsTest())

	t.Setenv("TEKA_ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())
}

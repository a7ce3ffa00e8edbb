package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"civic/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.AppPort)
	assert.Equal(t, config.StorageFile, cfg.StorageDriver)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "civic_events", cfg.RabbitMQQueue)
	assert.Equal(t, []string{"http://localhost", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file:civic.db")
	t.Setenv("CORS_ORIGINS", " https://civic.example.org , ")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, config.StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, "file:civic.db", cfg.DatabaseDSN)
	assert.Equal(t, []string{"https://civic.example.org"}, cfg.CORSOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "civic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DATA_DIR: /var/lib/civic\nLOG_LEVEL: debug\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/civic", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel, "environment overrides the file")
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("database driver without DSN", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		_, err := config.Load(viper.New())
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		_, err := config.Load(viper.New())
		assert.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := config.Load(viper.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

// Package config loads runtime settings from defaults, an optional config
// file and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds runtime settings for the server.
type Config struct {
	AppPort       string   `validate:"required"`
	StorageDriver string   `validate:"oneof=file sqlite postgres"`
	DataDir       string   `validate:"required_if=StorageDriver file"`
	DatabaseDSN   string   `validate:"required_unless=StorageDriver file"`
	RabbitMQURL   string   `validate:"omitempty,url"`
	RabbitMQQueue string   `validate:"required"`
	CORSOrigins   []string `validate:"dive,required"`
	LogLevel      string   `validate:"oneof=trace debug info warn error"`
	LogFormat     string   `validate:"oneof=text json"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "civic_events")
	v.SetDefault("CORS_ORIGINS", "http://localhost,http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads configuration through v. Environment variables always win; when
// CONFIG_FILE is set, that file is read underneath them.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		AppPort:       v.GetString("APP_PORT"),
		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DataDir:       v.GetString("DATA_DIR"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		RabbitMQQueue: v.GetString("RABBITMQ_QUEUE"),
		CORSOrigins:   splitList(v.GetString("CORS_ORIGINS")),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:     strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

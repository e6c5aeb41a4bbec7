package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis (catalog cache)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Optional static API key. When empty the check is disabled.
	APIKey string `mapstructure:"API_KEY"`

	// Documents
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables and an optional
// environment-suffixed dotenv file (.env, .env.development, .env.production).
// DATABASE_URL is mandatory: there is deliberately no fallback DSN, so a
// misconfigured deployment fails at startup instead of connecting with
// default credentials.
func Load() (*Config, error) {
	name := ".env"
	if env := os.Getenv("APP_ENV"); env != "" {
		name = ".env." + env
	}
	viper.SetConfigName(name)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about. Keys without a
	// default (DATABASE_URL, API_KEY) must be bound explicitly or their
	// exported values never reach the struct.
	for _, key := range []string{"PORT", "APP_ENV", "DATABASE_URL", "REDIS_URL", "API_KEY", "PDF_STORAGE_PATH"} {
		_ = viper.BindEnv(key)
	}

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/aguanueva/pdfs")

	// Optional dotenv file for local development; missing file is not an error
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL no configurada")
	}
	return cfg, nil
}

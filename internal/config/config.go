package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string
	RedisAddr       string
	CatalogDBPath   string
	MigrationsPath  string
	LogLevel        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment with sane local-dev
// defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CATALOG_DB_PATH", "clothera.db")
	v.SetDefault("MIGRATIONS_PATH", "internal/catalog/migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	return Config{
		HTTPPort:        v.GetString("HTTP_PORT"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		CatalogDBPath:   v.GetString("CATALOG_DB_PATH"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

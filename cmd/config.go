package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/International-Combat-Archery-Alliance/activity-signup/api"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Host            string          `env:"HOST" envDefault:"0.0.0.0"`
	Port            string          `env:"PORT" envDefault:"8080"`
	Env             api.Environment `env:"ENV" envDefault:"LOCAL"`
	LogLevel        slog.Level      `env:"LOG_LEVEL" envDefault:"INFO"`
	AllowedOrigins  []string        `env:"ALLOWED_ORIGINS" envSeparator:","`
	NotifyFrom      string          `env:"NOTIFY_FROM_ADDRESS"`
	ShutdownTimeout time.Duration   `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Env == api.PROD && len(cfg.AllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("ALLOWED_ORIGINS is required when ENV is %s", api.PROD)
	}
	return cfg, nil
}

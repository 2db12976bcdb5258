// Package config loads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string `env:"TIMBERLINE_ADDR" envDefault:":8443"`
	TLSCert string `env:"TIMBERLINE_TLS_CERT"`
	TLSKey  string `env:"TIMBERLINE_TLS_KEY"`

	TokenKey          string `env:"TOKEN_KEY,required"`
	AdminLogin        string `env:"ADMIN_LOGIN" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	DatabaseURL string `env:"DATABASE_URL"`

	CatalogPath   string `env:"CATALOG_PATH"`
	MaterialsPath string `env:"MATERIALS_PATH"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads .env files when present, then the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive")
	}
	return cfg, nil
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/unixdj/qrmatrix"
)

// config holds the defaults for command line flags.
type config struct {
	Level   string `env:"QR_LEVEL" envDefault:"l"`
	Format  string `env:"QR_FORMAT"`
	Scale   int    `env:"QR_SCALE" envDefault:"4"`
	Border  int    `env:"QR_BORDER" envDefault:"4"`
	Verbose int    `env:"QR_VERBOSE"`
	Tables  string `env:"QR_TABLES"`
}

// loadConfig reads the environment, after loading .env from the
// current directory if it exists.
func loadConfig() (*config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return nil, err
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *config) check() error {
	if _, err := qr.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("QR_LEVEL: %w", err)
	}
	if cfg.Format != "" && formatIndex(cfg.Format) < 0 {
		return fmt.Errorf("QR_FORMAT: unknown format %q", cfg.Format)
	}
	if cfg.Scale < 1 || cfg.Scale > 1<<28 {
		return fmt.Errorf("QR_SCALE: %d out of range", cfg.Scale)
	}
	if cfg.Border < 0 {
		return fmt.Errorf("QR_BORDER: %d is negative", cfg.Border)
	}
	return nil
}

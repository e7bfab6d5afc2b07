// Package config loads process configuration from the environment, with an
// optional .env file.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// DataDir is where the snapshot blob lives. Empty means
	// $HOME/.carteira.
	DataDir string `env:"CARTEIRA_DATA_DIR"`
	// StorageKey names the snapshot blob inside DataDir.
	StorageKey string `env:"CARTEIRA_STORAGE_KEY" envDefault:"investment-data"`
	LogLevel   string `env:"CARTEIRA_LOG_LEVEL" envDefault:"warn"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = filepath.Join(home, ".carteira")
	}
	return cfg, nil
}

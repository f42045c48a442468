// Package config loads the CLI configuration from the environment. The
// library itself is configured through client options; this package only
// serves the command-line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the settings of the command-line tool.
type Config struct {
	// APIKey authenticates against wallhaven.cc. Optional; anonymous use
	// covers everything except NSFW content, user settings and private
	// collections.
	APIKey string `env:"WALLHAVEN_API_KEY"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `env:"WALLHAVEN_TIMEOUT" envDefault:"30s"`

	// DownloadDir is where the download command writes image files.
	DownloadDir string `env:"WALLHAVEN_DOWNLOAD_DIR"`
}

// Load reads the configuration from the environment, honoring a .env file
// in the working directory when one exists.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DownloadDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.DownloadDir = filepath.Join(home, "Pictures", AppName)
	}

	return cfg, nil
}

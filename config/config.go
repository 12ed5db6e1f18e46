package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// CacheDir defaults to moisty/meets below the user cache directory.
	CacheDir    string        `env:"MOISTY_CACHE_DIR"`
	MeetListURL string        `env:"MOISTY_MEET_LIST_URL" envDefault:"http://medley.no/tidsjekk/stevneoppsett.asmx/VisStevneoppsett"`
	HTTPTimeout time.Duration `env:"MOISTY_HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    slog.Level    `env:"MOISTY_LOG_LEVEL" envDefault:"INFO"`
	Workers     int           `env:"MOISTY_WORKERS" envDefault:"4"`
	HTTPAddr    string        `env:"MOISTY_HTTP_ADDR" envDefault:":8080"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("finding cache directory: %w", err)
		}
		cfg.CacheDir = filepath.Join(base, "moisty", "meets")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("MOISTY_WORKERS must be positive, got %d", cfg.Workers)
	}
	return &cfg, nil
}

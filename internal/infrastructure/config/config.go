package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DataDir holds the three source spreadsheets. Startup fails when any
	// of them is missing.
	DataDir   string `env:"DATA_DIR,   default=./data"`
	StaticDir string `env:"STATIC_DIR, default=./public"`

	// AllowLegacySHA enables the unsalted legacy digest verification
	// path. Weak scheme, explicit operator opt-in.
	AllowLegacySHA bool `env:"ALLOW_LEGACY_SHA, default=false"`

	ReloadInterval time.Duration `env:"RELOAD_INTERVAL, default=5m"`
	ParseTimeout   time.Duration `env:"PARSE_TIMEOUT,   default=30s"`
	SessionTTL     time.Duration `env:"SESSION_TTL,     default=8h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the pipeline settings: the three dataset locations, the chart
// artifact location, and ambient knobs. Environment variables use the
// FASTFOOD_ prefix; command-line flags override them.
type Config struct {
	InputPath  string `envconfig:"INPUT_PATH" default:"fastfood.csv"`
	DBPath     string `envconfig:"DB_PATH" default:"fastfood.db"`
	OutputPath string `envconfig:"OUTPUT_PATH" default:"food_cats.csv"`
	ChartPath  string `envconfig:"CHART_PATH" default:"top_restaurants.xlsx"`
	RankLimit  int    `envconfig:"RANK_LIMIT" default:"5"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FASTFOOD", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info for unknown names.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

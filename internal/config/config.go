// Package config loads service configuration from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"fitsight/internal/domain"
)

type Config struct {
	Addr        string `env:"ADDR, default=:8080"`
	DatabaseURL string `env:"DATABASE_URL, required"`

	LogLevel      string `env:"LOG_LEVEL, default=info"`
	LogFormatJSON bool   `env:"LOG_JSON, default=false"`

	VisionBaseURL string `env:"VISION_BASE_URL"`
	VisionAPIKey  string `env:"VISION_API_KEY"`
	VisionModel   string `env:"VISION_MODEL"`

	// Analysis policy knobs. The defaults match the documented behavior:
	// a 1% relative swing separates a trend from noise, and losing more than
	// 2 body-fat points inside two weeks raises a safety advisory.
	TrendThreshold        float64 `env:"TREND_THRESHOLD, default=0.01"`
	RapidChangeDelta      float64 `env:"RAPID_CHANGE_DELTA, default=2.0"`
	RapidChangeWindowDays int     `env:"RAPID_CHANGE_WINDOW_DAYS, default=14"`
}

// Load reads and validates configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	if cfg.TrendThreshold <= 0 {
		return nil, fmt.Errorf("TREND_THRESHOLD must be > 0, got %v", cfg.TrendThreshold)
	}
	if cfg.RapidChangeDelta <= 0 {
		return nil, fmt.Errorf("RAPID_CHANGE_DELTA must be > 0, got %v", cfg.RapidChangeDelta)
	}
	if cfg.RapidChangeWindowDays <= 0 {
		return nil, fmt.Errorf("RAPID_CHANGE_WINDOW_DAYS must be > 0, got %v", cfg.RapidChangeWindowDays)
	}
	return &cfg, nil
}

// Policy maps the configured knobs onto the domain policy.
func (c *Config) Policy() domain.Policy {
	return domain.Policy{
		TrendThreshold:        c.TrendThreshold,
		RapidChangeDelta:      c.RapidChangeDelta,
		RapidChangeWindowDays: c.RapidChangeWindowDays,
	}
}

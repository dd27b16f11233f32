package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Render modes.
const (
	ModeAuto      = "auto"
	ModeText      = "text"
	ModeGraphical = "graphical"
)

type Config struct {
	// Logging
	LogLevel string `env:"TERMVIZ_LOG_LEVEL" envDefault:"warn"`

	// Rendering
	Mode     string `env:"TERMVIZ_MODE" envDefault:"auto"`
	BarWidth int    `env:"TERMVIZ_BAR_WIDTH" envDefault:"30"`

	// Skip the "Press Enter" prompt after a text chart.
	NoPause bool `env:"TERMVIZ_NO_PAUSE" envDefault:"false"`
}

// Load reads configuration from environment variables with defaults that
// reproduce the stock behavior.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = 30
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeAuto, ModeText, ModeGraphical:
	default:
		return fmt.Errorf("mode must be one of %s, %s, %s; got %q", ModeAuto, ModeText, ModeGraphical, c.Mode)
	}
	if c.BarWidth <= 0 {
		return fmt.Errorf("bar width must be positive, got %d", c.BarWidth)
	}
	return nil
}

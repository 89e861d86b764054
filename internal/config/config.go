package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process settings read from the environment.
type Config struct {
	Addr            string `env:"REMI_ADDR" envDefault:":8099"`
	ConfigPath      string `env:"CONFIG_PATH" envDefault:"/app/config.json"`
	TranslationsDir string `env:"TRANSLATIONS_DIR"`
	AssetBase       string `env:"ASSET_BASE" envDefault:"/local/remi-card"`
	HassURL         string `env:"HASS_URL"`
	HassToken       string `env:"HASS_TOKEN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) HassConfigured() bool {
	return c.HassURL != "" && c.HassToken != ""
}

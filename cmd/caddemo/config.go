package main

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the demo settings, read from CAD_DEMO_* variables.
type Config struct {
	Width    int        `envconfig:"WIDTH" default:"800"`
	Height   int        `envconfig:"HEIGHT" default:"600"`
	Zoom     float64    `envconfig:"ZOOM" default:"1"`
	Output   string     `envconfig:"OUTPUT" default:"caddemo.png"`
	Multi    bool       `envconfig:"MULTI_SELECT" default:"false"`
	LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CAD_DEMO", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

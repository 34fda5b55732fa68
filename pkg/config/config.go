// Package config holds the runtime configuration of the headline CLI,
// loaded from HEADLINE_-prefixed environment variables.
package config

import (
	"github.com/pkg/errors"
	"github.com/vrischmann/envconfig"
)

// Formatter names a supported log output format.
type Formatter string

const (
	// FormatterText is the human-friendly log format.
	FormatterText Formatter = "text"
	// FormatterJSON emits one JSON object per log line.
	FormatterJSON Formatter = "json"
)

// Logger configures the logrus logger.
type Logger struct {
	Level         string    `envconfig:"default=info"`
	Formatter     Formatter `envconfig:"default=text"`
	DisableColors bool      `envconfig:"default=false"`
}

// Config is the root configuration.
type Config struct {
	Logger Logger
}

// Load reads the configuration from the environment, applying defaults
// for unset variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.InitWithPrefix(&cfg, "HEADLINE"); err != nil {
		return Config{}, errors.Wrap(err, "while loading configuration from environment")
	}
	return cfg, nil
}

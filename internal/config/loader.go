package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load builds the configuration from a YAML file plus environment overrides
// (env wins). The file is taken from CONFIG_PATH, defaulting to
// ./config.yaml; a missing default file is fine and leaves env plus tag
// defaults, but a missing explicitly-set path is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.Getenv("CONFIG_PATH"), true
	if path == "" {
		path, explicit = "./config.yaml", false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

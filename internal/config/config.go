// Package config loads the optional application configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Every field has a default; the
// file is optional.
type Config struct {
	APIBaseURL    string `yaml:"api_base_url" validate:"required,url"`
	TimeoutMS     int    `yaml:"timeout_ms" validate:"required,min=100,max=60000"`
	StateDir      string `yaml:"state_dir" validate:"required"`
	LogLevel      string `yaml:"log_level" validate:"required,oneof=trace debug info warn error"`
	ReducedMotion bool   `yaml:"reduced_motion"`
}

var validate = validator.New()

// Default returns the configuration used when no file overrides it.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		APIBaseURL: "https://pokeapi.co/api/v2",
		TimeoutMS:  10000,
		StateDir:   filepath.Join(home, ".dexcard"),
		LogLevel:   "info",
	}, nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dexcard", "config.yaml"), nil
}

// Load reads the config file at path, applying defaults for unset fields.
// A missing file yields the defaults; a malformed or invalid file is an
// error.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

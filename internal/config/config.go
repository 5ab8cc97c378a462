// Package config loads tool settings for inkmark from YAML files and
// environment variables. Settings supply defaults; command-line flags
// always win.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tool-level settings.
type Config struct {
	// Color controls colorized output: auto, always, or never.
	Color string `yaml:"color"`

	// DetectLang enables language detection for untagged raw blocks.
	DetectLang bool `yaml:"detect_lang"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{Color: "auto"}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always, or never)", c.Color)
	}
}

// Load reads a config file and applies it over the defaults, then applies
// environment overrides. An empty path means no file; defaults plus
// environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadForDir loads configuration for a working directory: an explicit
// path wins, otherwise the nearest discovered config file is used.
func LoadForDir(explicit, workDir string) (*Config, error) {
	path := explicit
	if path == "" {
		var err error
		path, err = Discover(workDir)
		if err != nil {
			return nil, err
		}
	}
	return Load(path)
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognized as overrides.
const (
	envColor      = "INKMARK_COLOR"
	envDetectLang = "INKMARK_DETECT_LANG"
	envDebug      = "INKMARK_DEBUG"
)

// applyEnv applies environment variable overrides to cfg.
func applyEnv(cfg *Config) error {
	if value := os.Getenv(envColor); value != "" {
		cfg.Color = value
	}
	if value := os.Getenv(envDetectLang); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envDetectLang, value)
		}
		cfg.DetectLang = b
	}
	if value := os.Getenv(envDebug); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envDebug, value)
		}
		cfg.Debug = b
	}
	return nil
}

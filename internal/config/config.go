// Package config loads the optional pycheat settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the settings file location.
const EnvPath = "PYCHEAT_CONFIG"

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user defaults. Command-line flags take precedence.
type Config struct {
	Theme string `yaml:"theme"`
	Color string `yaml:"color"`
	Width int    `yaml:"width"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme: "default",
		Color: ColorAuto,
	}
}

// Load reads settings from path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns Default if path is empty or missing.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field values that yaml cannot.
func (c *Config) Validate() error {
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	return nil
}

// ParseColor normalizes a color mode.
func ParseColor(mode string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, "on", "true", "yes":
		return ColorAlways, nil
	case ColorNever, "off", "false", "no":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: expected auto|always|never", mode)
	}
}

// DefaultPath returns $PYCHEAT_CONFIG, else pycheat/config.yaml under the
// user config directory. It returns "" when neither can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pycheat", "config.yaml")
}

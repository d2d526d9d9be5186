// Package config loads optional user preferences for the banner layout.
// Settings live in ~/.config/gofetch/config.yaml (or the platform
// equivalent); a missing file means defaults, and command-line flags
// override anything set here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-adjustable display settings.
type Config struct {
	// Gap is the number of spaces between the logo and the info column.
	Gap int `yaml:"gap"`

	// Logo forces a specific logo by name (e.g. "arch") instead of
	// detecting one from the OS.
	Logo string `yaml:"logo"`

	// NoColor disables ANSI color output.
	NoColor bool `yaml:"no_color"`

	// Hide lists info rows to omit, by label with case and spaces ignored
	// (e.g. "gpu", "local ip").
	Hide []string `yaml:"hide"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{Gap: 4}
}

// Path returns the expected location of the user config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gofetch", "config.yaml"), nil
}

// Load reads the user config file if present. A missing file (or an
// undeterminable config directory) is not an error; a malformed file is.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config bytes over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	return cfg, nil
}

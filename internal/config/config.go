// Package config loads optional CLI defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the defaults the CLI applies when flags are not given.
type Config struct {
	Layout              string `toml:"layout"`
	OptimizeThresholdMS int    `toml:"optimize_threshold_ms"`
	ASSStyleFile        string `toml:"ass_style_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout:              "original-top",
		OptimizeThresholdMS: 1000,
	}
}

// DefaultPath returns the conventional config location, or "" when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "subkit", "config.toml")
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

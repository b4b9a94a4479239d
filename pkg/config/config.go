// Package config loads the CLI's optional TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the CLI's optional settings.
type Config struct {
	// DataDir overrides the XDG-derived base storage directory.
	DataDir string `toml:"data_dir"`
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/stash/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "stash", "config.toml")
}

// Load reads a TOML config file. A missing file is not an error; it
// yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Package config loads the editor configuration from a TOML file and
// watches it for live reload.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration.
type Config struct {
	Undo UndoConfig `toml:"undo"`
}

// UndoConfig configures the undo controller.
type UndoConfig struct {
	// SelectionUndo permits selection-scoped undo. When false, an active
	// selection is cleared before undoing instead of scoping it.
	SelectionUndo bool `toml:"selection_undo"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{}
}

// Load reads configuration from path. A missing file is not an error;
// the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Package config loads and saves the Seatwise TOML configuration.
//
// A configuration file carries the table setup, file paths, and the
// with/without preference maps:
//
//	roster = "people.csv"
//	output = "seating.csv"
//	report = "seating.txt"
//	tables = 2
//	capacity = 5
//
//	[preferences.with]
//	Alice = ["Bob"]
//
//	[preferences.without]
//	Carol = ["Dave"]
//
// Preferences edited interactively are written back with [Save], so the
// file is the durable preference store between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/seatwise/seatwise/pkg/errors"
	"github.com/seatwise/seatwise/pkg/seating"
)

// DefaultFilename is the config file looked up in the working directory
// when no path is given.
const DefaultFilename = "seatwise.toml"

// Config is the full file contents.
type Config struct {
	Roster   string `toml:"roster"`             // roster CSV path
	Output   string `toml:"output,omitempty"`   // seating CSV export path
	Report   string `toml:"report,omitempty"`   // TXT report export path
	Tables   int    `toml:"tables"`             // initial table count
	Capacity int    `toml:"capacity"`           // seats per table
	Store    string `toml:"store,omitempty"`    // snapshot store backend (none|file|redis|mongo)
	StoreURL string `toml:"store_url,omitempty"` // backend address for redis/mongo

	Preferences seating.Preferences `toml:"preferences"`
}

// Default returns a config with engine defaults filled in.
func Default() Config {
	return Config{
		Output:   "seating.csv",
		Tables:   1,
		Capacity: seating.DefaultCapacity,
		Store:    "file",
	}
}

// Load reads and validates the config file at path.
// A missing file is a FILE_NOT_FOUND error; malformed TOML or invalid
// counts are INVALID_CONFIG. Nothing else is touched on failure.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the structural fields. Preference contents are not
// validated here: conflicting entries are resolved by the engine
// (without wins), not rejected.
func (c Config) Validate() error {
	if err := errors.ValidateTableCount(c.Tables); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "tables")
	}
	if c.Capacity != 0 {
		if err := errors.ValidateCapacity(c.Capacity); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "capacity")
		}
	}
	switch c.Store {
	case "", "none", "file", "redis", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store)
	}
	return nil
}

// Save writes the config (including current preferences) to path with
// 0644 permissions. The write goes through a temp file and rename so a
// crash never leaves a half-written config behind.
func Save(cfg Config, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".seatwise-*.toml")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := toml.NewEncoder(tmp)
	if err := enc.Encode(cfg); err != nil {
		tmp.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SavePreferences updates only the preferences section of the file at
// path, preserving everything else. A missing file starts from defaults.
func SavePreferences(prefs seating.Preferences, path string) error {
	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if loaded, err := Load(path); err == nil {
			cfg = loaded
		}
	}
	cfg.Preferences = prefs
	return Save(cfg, path)
}

// Package config loads Bursa's CLI defaults from a TOML dotfile, the same
// role teacher's cmd/ledger-go/ledger-go.go parseLedgerRC plays for
// .ledgerrc, generalized from a flag-line file to TOML (the format the
// wider example pack standardizes its own config files on).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults that can be overridden by flags.
type Config struct {
	// File is the default .bursa source file to operate on when no
	// positional argument is given.
	File string `toml:"file"`
	// NoPager is decoded from the no_pager key. No command reads it; `print`
	// writes its output directly without a pager.
	NoPager bool `toml:"no_pager"`
	// Verbose enables debug-level CLI logging.
	Verbose bool `toml:"verbose"`
}

// dotfileName is the config file Bursa looks for in the user's home
// directory, mirroring teacher's ".ledgerrc".
const dotfileName = ".bursarc"

// Load reads ~/.bursarc if it exists, returning a zero Config (not an
// error) when it does not.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(filepath.Join(home, dotfileName))
}

// LoadFrom reads a specific TOML config file path.
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config controls the REPL's presentation. All fields are optional; missing
// values fall back to defaults.
type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

const configFile = ".moniker-repl.toml"

// loadConfig reads ~/.moniker-repl.toml if present and applies defaults
// field-wise. A missing file is not an error; a malformed one is.
func loadConfig() (Config, error) {
	cfg := Config{Color: true}

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, configFile)
		if data, err := os.ReadFile(path); err == nil {
			if _, err := toml.Decode(string(data), &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyDefaults(&cfg, home)
	return cfg, nil
}

func applyDefaults(cfg *Config, home string) {
	if strings.TrimSpace(cfg.Prompt) == "" {
		cfg.Prompt = "λ> "
	}
	if strings.TrimSpace(cfg.HistoryFile) == "" {
		cfg.HistoryFile = filepath.Join(home, ".moniker-repl_history")
	}
}

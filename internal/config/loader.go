package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir returns ~/.config/diediedice, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "diediedice")
}

// Load loads configuration from ~/.config/diediedice/config.yaml.
func Load() Config {
	dir := Dir()
	if dir == "" {
		return DefaultConfig()
	}
	return LoadFile(filepath.Join(dir, "config.yaml"))
}

// LoadFile merges the YAML file at path over the defaults. A missing or
// malformed file yields the defaults.
func LoadFile(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	fromFile := cfg
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg
	}
	return fromFile
}

package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Standard:   17,
			OnConflict: "skip",
			OutputDir:  ".",
		},
		Git: GitConfig{
			Enabled: true,
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "cppnew", "config.yaml")
}

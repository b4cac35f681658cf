// Package config loads user configuration for cppnew. Values come from
// the config file (~/.config/cppnew/config.yaml by default), overridable
// via CPPNEW_* environment variables; anything unset falls back to
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/tacogips/cppnew/internal/debug"
	"github.com/tacogips/cppnew/internal/scaffold"
)

// Load reads configuration from path. An empty path reads the default
// location; a missing file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else if defaultPath := DefaultConfigPath(); defaultPath != "" {
		v.SetConfigFile(defaultPath)
	}

	v.SetEnvPrefix("CPPNEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("defaults.std", defaults.Defaults.Standard)
	v.SetDefault("defaults.on_conflict", defaults.Defaults.OnConflict)
	v.SetDefault("defaults.output_dir", defaults.Defaults.OutputDir)
	v.SetDefault("git.enabled", defaults.Git.Enabled)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("output.quiet", defaults.Output.Quiet)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		debug.Debug("[config] No config file found, using defaults")
	} else {
		debug.DebugValue("[config] Loaded config file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func Validate(cfg *Config) error {
	if _, ok := scaffold.ParsePolicy(cfg.Defaults.OnConflict); !ok {
		return fmt.Errorf("invalid defaults.on_conflict %q (expected skip, overwrite, or fail)", cfg.Defaults.OnConflict)
	}
	if cfg.Defaults.OutputDir == "" {
		return fmt.Errorf("defaults.output_dir cannot be empty")
	}
	return nil
}

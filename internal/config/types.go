package config

// Config represents the global cppnew configuration.
type Config struct {
	// Defaults configuration for values the new command falls back to.
	Defaults DefaultsConfig `mapstructure:"defaults"`
	// Git configuration for repository initialization.
	Git GitConfig `mapstructure:"git"`
	// Output configuration for display settings.
	Output OutputConfig `mapstructure:"output"`
}

// DefaultsConfig represents default values for project generation.
type DefaultsConfig struct {
	// Standard is the default C++ standard for generated CMake files.
	Standard int `mapstructure:"std"`
	// OnConflict is the default conflict policy ("skip", "overwrite", "fail").
	OnConflict string `mapstructure:"on_conflict"`
	// OutputDir is the default directory projects are created under.
	OutputDir string `mapstructure:"output_dir"`
}

// GitConfig represents version-control settings.
type GitConfig struct {
	// Enabled indicates whether a git repository is initialized in new projects.
	Enabled bool `mapstructure:"enabled"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `mapstructure:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `mapstructure:"quiet"`
}

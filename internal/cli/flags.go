package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagDir        = "dir"
	FlagStd        = "std"
	FlagOnConflict = "on-conflict"
	FlagNoGit      = "no-git"
	FlagDryRun     = "dry-run"
	FlagConfig     = "config"
	FlagNoColor    = "no-color"
	FlagQuiet      = "quiet"
	FlagDebug      = "debug"

	// Flag descriptions
	DescDir        = "Directory to create the project under"
	DescStd        = "C++ standard for generated CMake files (11, 14, 17, 20, 23)"
	DescOnConflict = "Behavior for existing files: skip, overwrite, or fail"
	DescNoGit      = "Skip git repository initialization"
	DescDryRun     = "Show what would be created without writing anything"
	DescConfig     = "Path to config file"
	DescNoColor    = "Disable colored output"
	DescQuiet      = "Suppress non-error output"
	DescDebug      = "Enable debug logging"
)

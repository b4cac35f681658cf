package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/cppnew/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cppnew",
	Short: "C++ project scaffolding tool",
	Long: `cppnew scaffolds new C++ projects.

Use "cppnew new <name>" to:
  1. Create the project directory tree (src, include, lib, bin, tests, docs)
  2. Generate CMake build files, README.md, .gitignore and seed sources
  3. Initialize a git repository in the project root

Re-running against an existing project is safe: files that already exist
are skipped unless you ask for a different conflict policy.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

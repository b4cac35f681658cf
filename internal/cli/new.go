package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/cppnew/internal/app"
	"github.com/tacogips/cppnew/internal/config"
	"github.com/tacogips/cppnew/internal/scaffold"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new C++ project",
	Long: `Create a new C++ project directory with the standard layout,
CMake build files, README.md, .gitignore, seed sources, and an
initialized git repository.

When name is omitted, you are prompted for it interactively.

Files that already exist in the target are skipped by default, so the
command is safe to re-run against a partially-built project. Use
--on-conflict to overwrite instead, or to fail on any conflict.

Examples:
  cppnew new myproject
  cppnew new myproject --dir ~/code --std 20
  cppnew new myproject --on-conflict overwrite
  cppnew new myproject --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newDir        string
	newStd        int
	newOnConflict string
	newNoGit      bool
	newDryRun     bool
	newConfigPath string
)

func init() {
	// Flags for new
	newCmd.Flags().StringVarP(&newDir, FlagDir, "d", "", DescDir)
	newCmd.Flags().IntVar(&newStd, FlagStd, 0, DescStd)
	newCmd.Flags().StringVar(&newOnConflict, FlagOnConflict, "", DescOnConflict)
	newCmd.Flags().BoolVar(&newNoGit, FlagNoGit, false, DescNoGit)
	newCmd.Flags().BoolVar(&newDryRun, FlagDryRun, false, DescDryRun)
	newCmd.Flags().StringVarP(&newConfigPath, FlagConfig, "c", "", DescConfig)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(newConfigPath)
	if err != nil {
		return err
	}

	// Config can quiet/uncolor output, flags can only tighten further.
	if cfg.Output.Quiet {
		globalQuiet = true
	}
	if !cfg.Output.Color {
		globalNoColor = true
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = PromptProjectName()
		if err != nil {
			return err
		}
	}

	// Flags win over config; config fills in everything left unset.
	dir := newDir
	if !cmd.Flags().Changed(FlagDir) {
		dir = cfg.Defaults.OutputDir
	}
	std := newStd
	if !cmd.Flags().Changed(FlagStd) {
		std = cfg.Defaults.Standard
	}
	onConflict := newOnConflict
	if !cmd.Flags().Changed(FlagOnConflict) {
		onConflict = cfg.Defaults.OnConflict
	}
	policy, ok := scaffold.ParsePolicy(onConflict)
	if !ok {
		return fmt.Errorf("invalid --%s value %q (expected skip, overwrite, or fail)", FlagOnConflict, onConflict)
	}
	skipGit := newNoGit || !cfg.Git.Enabled

	printProgress(fmt.Sprintf("Creating C++ project %q", name))

	result, err := app.NewProject(cmd.Context(), app.NewProjectOptions{
		Name:     name,
		Dir:      dir,
		Standard: std,
		Policy:   policy,
		SkipGit:  skipGit,
		DryRun:   newDryRun,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Project setup failed: %v", err))
		return err
	}

	if newDryRun {
		printDryRun(result)
		return nil
	}

	for _, res := range result.Report {
		printOutcome(res)
	}

	if result.GitInitialized {
		printSuccess(fmt.Sprintf("Initialized git repository in %s", result.Root))
	} else if result.GitErr != nil {
		printWarning(fmt.Sprintf("%v (continuing without git)", result.GitErr))
	}

	created, skipped, overwritten, failed := result.Report.Counts()
	printInfo("")
	printInfo(fmt.Sprintf("Project root: %s", result.Root))
	printInfo(fmt.Sprintf("Entries: %d created, %d skipped, %d overwritten, %d failed",
		created, skipped, overwritten, failed))

	if failed > 0 {
		return fmt.Errorf("%d of %d entries failed", failed, len(result.Report))
	}

	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  1. cd %s", name))
	printInfo("  2. cmake -S . -B build")
	printInfo("  3. cmake --build build")

	return nil
}

// printOutcome prints one line per entry outcome.
func printOutcome(res scaffold.Result) {
	label := res.Path
	if res.Kind == scaffold.KindDir {
		label += "/"
	}
	switch res.Outcome {
	case scaffold.OutcomeCreated:
		printSuccess(fmt.Sprintf("created     %s", label))
	case scaffold.OutcomeOverwritten:
		printSuccess(fmt.Sprintf("overwritten %s", label))
	case scaffold.OutcomeSkipped:
		printMuted(fmt.Sprintf("skipped     %s", label))
	case scaffold.OutcomeFailed:
		printErrorMsg(fmt.Sprintf("failed      %s (%v)", label, res.Err))
	}
}

// printDryRun prints the planned entries without applying them.
func printDryRun(result *app.NewProjectResult) {
	printInfo(fmt.Sprintf("Dry run: %d entries would be applied under %s", len(result.Entries), result.Root))
	for _, entry := range result.Entries {
		label := entry.Path
		if entry.Kind == scaffold.KindDir {
			label += "/"
		}
		printInfo(fmt.Sprintf("  %-4s %s", entry.Kind, label))
	}
}

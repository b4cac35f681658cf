// Package app contains the high-level workflows behind the CLI commands.
// Each workflow takes an options struct, returns a result struct, and
// leaves all user-facing formatting to the cli layer.
package app

import (
	"context"
	"path/filepath"

	"github.com/tacogips/cppnew/internal/debug"
	"github.com/tacogips/cppnew/internal/gitutil"
	"github.com/tacogips/cppnew/internal/project"
	"github.com/tacogips/cppnew/internal/scaffold"
)

// NewProjectOptions holds options for creating a new C++ project.
type NewProjectOptions struct {
	// Name is the project name. The project root is created as Dir/Name.
	Name string
	// Dir is the destination directory the project is created under.
	// Empty means the current working directory.
	Dir string
	// Standard is the C++ standard for generated CMake files (0 = default).
	Standard int
	// Policy governs conflicts with files that already exist in the target.
	Policy scaffold.Policy
	// SkipGit disables git repository initialization.
	SkipGit bool
	// DryRun plans the project without touching the filesystem.
	DryRun bool
}

// NewProjectResult holds the result of project creation.
type NewProjectResult struct {
	// Root is the absolute project root path.
	Root string
	// Entries is the planned entry list (what was or would be applied).
	Entries []scaffold.Entry
	// Report is the per-entry outcome report. Nil in dry-run mode.
	Report scaffold.Report
	// GitInitialized indicates whether a git repository was initialized.
	GitInitialized bool
	// GitErr holds a non-fatal git initialization failure. Project files
	// are already on disk when this is set, mirroring the overall rule
	// that one failing step does not undo the rest.
	GitErr error
}

// NewProject creates a new C++ project: plans the file tree, applies it
// through the scaffold engine, and initializes a git repository in the
// project root. Per-entry conflicts surface in the result's Report, not
// as an error; an error return means nothing was applied.
func NewProject(ctx context.Context, opts NewProjectOptions) (*NewProjectResult, error) {
	debug.DebugSection("[app] NewProject workflow start")
	debug.DebugValue("[app] Project name", opts.Name)
	debug.DebugValue("[app] Destination dir", opts.Dir)
	debug.DebugValue("[app] Conflict policy", opts.Policy)
	debug.DebugValue("[app] Dry run", opts.DryRun)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := project.Plan(project.Options{
		Name:     opts.Name,
		Standard: opts.Standard,
		Policy:   opts.Policy,
	})
	if err != nil {
		return nil, NewPlanError("failed to plan project", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(filepath.Join(dir, opts.Name))
	if err != nil {
		return nil, NewValidationError("failed to resolve project root", err)
	}
	debug.DebugValue("[app] Project root", root)

	result := &NewProjectResult{
		Root:    root,
		Entries: entries,
	}

	if opts.DryRun {
		debug.Debug("[app] Dry run: skipping apply and git init")
		return result, nil
	}

	report, err := scaffold.New().Apply(root, entries)
	if err != nil {
		return nil, NewScaffoldError("failed to scaffold project", err)
	}
	result.Report = report

	if report.HasFailures() {
		debug.Debug("[app] Scaffold reported failures, skipping git init")
		return result, nil
	}

	if !opts.SkipGit {
		if err := gitutil.Init(root); err != nil {
			result.GitErr = NewGitInitError("failed to initialize git repository", err)
		} else {
			result.GitInitialized = true
		}
	}

	debug.Debug("[app] NewProject workflow completed")
	return result, nil
}

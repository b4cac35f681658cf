package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/cppnew/internal/app"
	"github.com/tacogips/cppnew/internal/gitutil"
	"github.com/tacogips/cppnew/internal/scaffold"
)

// TestE2E_CompleteWorkflow tests the complete new-project workflow:
// scaffold, git init, idempotent re-run, and overwrite recovery.
func TestE2E_CompleteWorkflow(t *testing.T) {
	// Setup
	tempDir := t.TempDir()
	root := filepath.Join(tempDir, "my-engine")

	// Step 1: Create the project
	t.Log("Step 1: Creating project")
	result, err := app.NewProject(context.Background(), app.NewProjectOptions{
		Name:     "my-engine",
		Dir:      tempDir,
		Standard: 20,
	})
	if err != nil {
		t.Fatalf("NewProject failed: %v", err)
	}
	if result.Report.HasFailures() {
		t.Fatalf("scaffold reported failures: %v", result.Report.Failed())
	}

	// Verify the project tree
	for _, path := range []string{
		"src", "include", "lib", "bin", "tests", "docs",
		".gitignore", "README.md", "CMakeLists.txt",
		"src/CMakeLists.txt", "tests/CMakeLists.txt", "docs/CMakeLists.txt",
		"src/main.cpp", "include/project_header.h", "tests/test_main.cpp",
	} {
		if _, err := os.Stat(filepath.Join(root, path)); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}

	// Verify name and standard substitution
	cmake, err := os.ReadFile(filepath.Join(root, "CMakeLists.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cmake), "project(my-engine VERSION 1.0 LANGUAGES CXX)") {
		t.Errorf("root CMakeLists.txt missing project name:\n%s", cmake)
	}
	if !strings.Contains(string(cmake), "set(CMAKE_CXX_STANDARD 20)") {
		t.Errorf("root CMakeLists.txt missing C++ standard:\n%s", cmake)
	}

	// Verify git repository
	if !result.GitInitialized || !gitutil.IsRepository(root) {
		t.Error("git repository was not initialized")
	}

	// Step 2: Re-run against the finished project
	t.Log("Step 2: Re-running project creation")
	second, err := app.NewProject(context.Background(), app.NewProjectOptions{
		Name:     "my-engine",
		Dir:      tempDir,
		Standard: 20,
	})
	if err != nil {
		t.Fatalf("second NewProject failed: %v", err)
	}
	_, skipped, _, _ := second.Report.Counts()
	if skipped != len(second.Report) {
		t.Errorf("second run: %d of %d entries skipped, want all", skipped, len(second.Report))
	}

	// Step 3: User edits a generated file, overwrite run restores it
	t.Log("Step 3: Overwriting an edited file")
	readmePath := filepath.Join(root, "README.md")
	if err := os.WriteFile(readmePath, []byte("scribbles"), 0644); err != nil {
		t.Fatal(err)
	}

	third, err := app.NewProject(context.Background(), app.NewProjectOptions{
		Name:     "my-engine",
		Dir:      tempDir,
		Standard: 20,
		Policy:   scaffold.PolicyOverwrite,
	})
	if err != nil {
		t.Fatalf("third NewProject failed: %v", err)
	}
	_, _, overwritten, _ := third.Report.Counts()
	if overwritten == 0 {
		t.Error("overwrite run reported no overwritten entries")
	}

	readme, err := os.ReadFile(readmePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(readme), "# my-engine") {
		t.Errorf("README.md was not restored:\n%s", readme)
	}
}

// Package gitutil wraps the version-control operations the CLI needs.
// Repositories are initialized in-process via go-git, so no git binary
// is required on the host.
package gitutil

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/tacogips/cppnew/internal/debug"
)

// Init initializes a non-bare git repository at path. Re-initializing an
// existing repository is treated as success, so re-running project setup
// against the same directory stays idempotent.
func Init(path string) error {
	debug.Debug("[gitutil] Initializing repository: %s", path)

	_, err := git.PlainInit(path, false)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			debug.Debug("[gitutil] Repository already exists: %s", path)
			return nil
		}
		return fmt.Errorf("failed to initialize git repository at %s: %w", path, err)
	}

	return nil
}

// IsRepository reports whether path is inside a git repository.
func IsRepository(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

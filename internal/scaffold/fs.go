package scaffold

import (
	"os"

	"github.com/tacogips/cppnew/internal/debug"
)

// PathKind is what currently occupies a path on the target filesystem.
type PathKind int

const (
	// PathMissing means nothing exists at the path.
	PathMissing PathKind = iota
	// PathFile means a regular file (or anything that is not a directory).
	PathFile
	// PathDir means a directory.
	PathDir
)

// FS is the capability set the engine needs from a filesystem. The apply
// loop is written against this interface so it can be exercised with an
// in-memory or recording implementation in tests.
type FS interface {
	// Kind probes what exists at path.
	Kind(path string) PathKind

	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(path string) error

	// WriteFile writes content to a new file with the given mode.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// WriteFileAtomic replaces the file at path with content by writing a
	// temporary sibling and renaming it over the target, so a crash
	// mid-write never leaves a half-written file.
	WriteFileAtomic(path string, content []byte, mode os.FileMode) error
}

// osFS implements FS with direct filesystem calls.
type osFS struct{}

// NewOSFS returns the production filesystem implementation.
func NewOSFS() FS {
	return osFS{}
}

// Kind probes what exists at path.
func (osFS) Kind(path string) PathKind {
	info, err := os.Stat(path)
	if err != nil {
		return PathMissing
	}
	if info.IsDir() {
		return PathDir
	}
	return PathFile
}

// Mkdir creates a single directory with 0755 permissions.
func (osFS) Mkdir(path string) error {
	debug.Debug("[scaffold] Creating directory: %s", path)
	return os.Mkdir(path, 0755)
}

// WriteFile writes content directly to path.
func (osFS) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[scaffold] Writing file: %s (size: %d bytes)", path, len(content))
	return os.WriteFile(path, content, mode)
}

// WriteFileAtomic writes content to a temporary sibling of path and
// renames it over the target.
func (osFS) WriteFileAtomic(path string, content []byte, mode os.FileMode) error {
	tempFile := path + ".tmp"
	debug.Debug("[scaffold] Writing file atomically: %s (via %s)", path, tempFile)

	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	_, writeErr := f.Write(content)
	closeErr := f.Close()

	if writeErr != nil {
		_ = os.Remove(tempFile)
		return writeErr
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return closeErr
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return err
	}
	return nil
}

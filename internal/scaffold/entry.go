// Package scaffold applies a declarative file/directory plan to a target
// root directory. Entries are processed strictly in declaration order,
// re-running the same plan against the same root is safe (idempotent with
// the Skip policy), and one conflicting entry never blocks the rest.
package scaffold

import "os"

// Kind identifies the filesystem object an Entry declares.
type Kind int

const (
	// KindDir declares a directory.
	KindDir Kind = iota
	// KindFile declares a regular file with content.
	KindFile
)

// String returns the kind name for report output.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Policy governs what happens when a File entry's target already exists.
// Directory entries ignore the policy: an existing directory is always
// skipped.
type Policy int

const (
	// PolicySkip leaves the existing file untouched.
	PolicySkip Policy = iota
	// PolicyOverwrite replaces the existing content atomically.
	PolicyOverwrite
	// PolicyFail records a failure for the entry without touching it.
	PolicyFail
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyOverwrite:
		return "overwrite"
	case PolicyFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name ("skip", "overwrite", "fail") to a
// Policy value.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "skip":
		return PolicySkip, true
	case "overwrite":
		return PolicyOverwrite, true
	case "fail":
		return PolicyFail, true
	default:
		return PolicySkip, false
	}
}

// Entry is one planned filesystem object, relative to the apply root.
type Entry struct {
	// Path is the target path relative to the root, slash-separated.
	// It must not escape the root via traversal.
	Path string
	// Kind is the object kind (directory or file).
	Kind Kind
	// Content is the file payload. Ignored for directories. The engine
	// treats it as opaque bytes; any templating happens in the caller.
	Content []byte
	// Mode is the file mode for created files. Zero means 0644.
	Mode os.FileMode
	// Policy governs conflicts with an existing file at Path.
	Policy Policy
}

// Dir declares a directory entry.
func Dir(path string) Entry {
	return Entry{Path: path, Kind: KindDir}
}

// File declares a file entry with the given content and policy.
func File(path string, content []byte, policy Policy) Entry {
	return Entry{Path: path, Kind: KindFile, Content: content, Policy: policy}
}

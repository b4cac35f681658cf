package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/tacogips/cppnew/internal/debug"
)

// Engine materializes entry plans onto a filesystem.
type Engine struct {
	fs FS
}

// New creates an Engine backed by the real filesystem.
func New() *Engine {
	return &Engine{fs: NewOSFS()}
}

// NewWithFS creates an Engine backed by the given filesystem
// implementation.
func NewWithFS(fs FS) *Engine {
	return &Engine{fs: fs}
}

// Apply validates the plan and then applies the entries to root, strictly
// in declaration order.
//
// Validation covers the whole call and performs no filesystem mutation:
// a bad root, an empty plan, a traversal path or a duplicate path returns
// a *ValidationError and nothing is written. Once the apply phase starts,
// each entry either reaches a terminal outcome or records a failure in
// the report; a single failing entry never aborts the remaining entries.
//
// The engine does not reorder entries and does not create undeclared
// ancestor directories (the root itself excepted): the caller is
// responsible for a topologically valid order, directories before the
// files inside them.
func (e *Engine) Apply(root string, entries []Entry) (Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, newValidationError(root, "failed to resolve target root", err)
	}

	debug.DebugSection("[scaffold] Apply start")
	debug.DebugValue("[scaffold] Target root", absRoot)
	debug.DebugValue("[scaffold] Entries", len(entries))

	targets, err := e.validate(absRoot, entries)
	if err != nil {
		return nil, err
	}

	// The root itself is the engine's responsibility; every declared
	// ancestor below it must appear as an entry.
	if e.fs.Kind(absRoot) == PathMissing {
		if err := e.fs.Mkdir(absRoot); err != nil {
			return nil, newValidationError(absRoot, "failed to create target root", err)
		}
	}

	report := make(Report, 0, len(entries))
	for i, entry := range entries {
		res := e.applyEntry(targets[i], entry)
		report = append(report, res)
		debug.Debug("[scaffold] Entry %s (%s): %s", entry.Path, entry.Kind, res.Outcome)
	}

	created, skipped, overwritten, failed := report.Counts()
	debug.Debug("[scaffold] Apply complete: created=%d, skipped=%d, overwritten=%d, failed=%d",
		created, skipped, overwritten, failed)

	return report, nil
}

// validate checks the root and every entry before any mutation. It
// returns the resolved absolute target path per entry, in declaration
// order.
func (e *Engine) validate(absRoot string, entries []Entry) ([]string, error) {
	switch e.fs.Kind(absRoot) {
	case PathFile:
		return nil, newValidationError(absRoot, "target root exists and is not a directory", nil)
	case PathMissing:
		if e.fs.Kind(filepath.Dir(absRoot)) != PathDir {
			return nil, newValidationError(absRoot, "parent of target root does not exist", nil)
		}
	}

	if len(entries) == 0 {
		return nil, newValidationError(absRoot, "entry list is empty", nil)
	}

	targets := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		target, err := resolveEntryPath(absRoot, entry.Path)
		if err != nil {
			return nil, err
		}
		if seen[target] {
			return nil, newValidationError(entry.Path, "duplicate entry path", nil)
		}
		seen[target] = true
		targets = append(targets, target)
	}

	return targets, nil
}

// resolveEntryPath resolves a declared relative path against the root and
// rejects anything that is empty, absolute, or escapes the root.
func resolveEntryPath(absRoot, path string) (string, error) {
	if path == "" {
		return "", newValidationError(path, "entry path is empty", nil)
	}
	if filepath.IsAbs(path) {
		return "", newValidationError(path, "entry path must be relative", nil)
	}

	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == "." {
		return "", newValidationError(path, "entry path resolves to the root itself", nil)
	}

	target := filepath.Join(absRoot, cleaned)
	if target != absRoot && !strings.HasPrefix(target, absRoot+string(filepath.Separator)) {
		return "", newValidationError(path, "entry path escapes the target root", nil)
	}

	return target, nil
}

// applyEntry applies a single entry and returns its terminal outcome.
func (e *Engine) applyEntry(target string, entry Entry) Result {
	res := Result{Path: entry.Path, Kind: entry.Kind}

	switch entry.Kind {
	case KindDir:
		res.Outcome, res.Err = e.applyDir(target, entry)
	case KindFile:
		res.Outcome, res.Err = e.applyFile(target, entry)
	default:
		res.Outcome = OutcomeFailed
		res.Err = newEntryError(entry.Path, ReasonWriteFailed, nil)
	}
	return res
}

func (e *Engine) applyDir(target string, entry Entry) (Outcome, error) {
	switch e.fs.Kind(target) {
	case PathDir:
		return OutcomeSkipped, nil
	case PathFile:
		return OutcomeFailed, newEntryError(entry.Path, ReasonKindConflict, nil)
	}

	if err := e.fs.Mkdir(target); err != nil {
		return OutcomeFailed, newEntryError(entry.Path, ReasonWriteFailed, err)
	}
	return OutcomeCreated, nil
}

func (e *Engine) applyFile(target string, entry Entry) (Outcome, error) {
	mode := entry.Mode
	if mode == 0 {
		mode = 0644
	}

	switch e.fs.Kind(target) {
	case PathDir:
		return OutcomeFailed, newEntryError(entry.Path, ReasonKindConflict, nil)

	case PathFile:
		switch entry.Policy {
		case PolicySkip:
			return OutcomeSkipped, nil
		case PolicyOverwrite:
			if err := e.fs.WriteFileAtomic(target, entry.Content, mode); err != nil {
				return OutcomeFailed, newEntryError(entry.Path, ReasonWriteFailed, err)
			}
			return OutcomeOverwritten, nil
		default:
			return OutcomeFailed, newEntryError(entry.Path, ReasonAlreadyExists, nil)
		}
	}

	if e.fs.Kind(filepath.Dir(target)) != PathDir {
		return OutcomeFailed, newEntryError(entry.Path, ReasonParentMissing, nil)
	}

	if err := e.fs.WriteFile(target, entry.Content, mode); err != nil {
		return OutcomeFailed, newEntryError(entry.Path, ReasonWriteFailed, err)
	}
	return OutcomeCreated, nil
}

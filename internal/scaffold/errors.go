package scaffold

import "fmt"

// ValidationError indicates malformed input to Apply. It is returned
// before any filesystem mutation, so a call that fails validation leaves
// the target root untouched.
type ValidationError struct {
	// Path is the offending entry path, or the root path for root errors.
	Path string
	// Message describes the violation.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// newValidationError creates a ValidationError.
func newValidationError(path, message string, cause error) *ValidationError {
	return &ValidationError{Path: path, Message: message, Cause: cause}
}

// FailureReason categorizes per-entry failures.
type FailureReason int

const (
	// ReasonKindConflict indicates the target exists with a different kind
	// than declared (e.g. a file where a directory was declared).
	ReasonKindConflict FailureReason = iota
	// ReasonAlreadyExists indicates the target file exists and the entry's
	// policy is PolicyFail.
	ReasonAlreadyExists
	// ReasonParentMissing indicates the file entry's parent directory does
	// not exist and was not declared by a prior entry.
	ReasonParentMissing
	// ReasonWriteFailed indicates the filesystem operation itself failed
	// (permissions, disk full).
	ReasonWriteFailed
)

// String returns the reason name.
func (r FailureReason) String() string {
	switch r {
	case ReasonKindConflict:
		return "kind-conflict"
	case ReasonAlreadyExists:
		return "already-exists"
	case ReasonParentMissing:
		return "parent-missing"
	case ReasonWriteFailed:
		return "write-failed"
	default:
		return "unknown"
	}
}

// EntryError is the failure recorded for a single entry. It never aborts
// sibling entries; the caller finds it in the entry's Result.
type EntryError struct {
	// Path is the entry's relative path.
	Path string
	// Reason categorizes the failure.
	Reason FailureReason
	// Cause is the underlying error (if any).
	Cause error
}

// Error returns the error message.
func (e *EntryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Cause
}

// newEntryError creates an EntryError.
func newEntryError(path string, reason FailureReason, cause error) *EntryError {
	return &EntryError{Path: path, Reason: reason, Cause: cause}
}

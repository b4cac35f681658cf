package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates option validation failed.
	ValidationFailed AppErrorType = iota
	// PlanFailed indicates the project plan could not be built.
	PlanFailed
	// ScaffoldFailed indicates applying the scaffold failed before any
	// per-entry outcome could be produced.
	ScaffoldFailed
	// GitInitFailed indicates git repository initialization failed.
	GitInitFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewPlanError creates a plan error.
func NewPlanError(message string, cause error) *AppError {
	return NewAppError(PlanFailed, message, cause)
}

// NewScaffoldError creates a scaffold error.
func NewScaffoldError(message string, cause error) *AppError {
	return NewAppError(ScaffoldFailed, message, cause)
}

// NewGitInitError creates a git init error.
func NewGitInitError(message string, cause error) *AppError {
	return NewAppError(GitInitFailed, message, cause)
}

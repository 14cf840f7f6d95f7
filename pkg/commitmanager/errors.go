package commitmanager

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
)

const (
	// Package name for error reporting
	pkgName = "commitmanager"
)

// Error codes for commit operations
const (
	CodeNothingToCommit = "NOTHING_TO_COMMIT"
	CodeEmptyMessage    = "EMPTY_MESSAGE"
	CodeNoMatch         = "NO_MATCHING_COMMIT"
	CodeBrokenHistory   = "BROKEN_HISTORY"
)

// NothingToCommitError indicates both staging maps are empty.
type NothingToCommitError struct {
	baseError *err.Error
}

// NewNothingToCommitError creates a NothingToCommitError.
func NewNothingToCommitError() error {
	return &NothingToCommitError{
		baseError: err.New(pkgName, CodeNothingToCommit, "commit", "no changes staged for commit", nil),
	}
}

// Error implements the error interface
func (e *NothingToCommitError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *NothingToCommitError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *NothingToCommitError) UserMessage() string { return "No changes added to the commit." }

// EmptyMessageError indicates a commit was requested without a message.
type EmptyMessageError struct {
	baseError *err.Error
}

// NewEmptyMessageError creates an EmptyMessageError.
func NewEmptyMessageError() error {
	return &EmptyMessageError{
		baseError: err.New(pkgName, CodeEmptyMessage, "commit", "commit message cannot be empty", nil),
	}
}

// Error implements the error interface
func (e *EmptyMessageError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *EmptyMessageError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *EmptyMessageError) UserMessage() string { return "Please enter a commit message." }

// NoMatchError indicates a message search found nothing.
type NoMatchError struct {
	baseError *err.Error
	Message   string
}

// NewNoMatchError creates a NoMatchError for message.
func NewNoMatchError(message string) error {
	return &NoMatchError{
		baseError: err.New(pkgName, CodeNoMatch, "find",
			fmt.Sprintf("no commit has message %q", message), nil),
		Message: message,
	}
}

// Error implements the error interface
func (e *NoMatchError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *NoMatchError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *NoMatchError) UserMessage() string { return "Found no commit with that message." }

// CommitError wraps an infrastructure failure during a commit operation.
type CommitError struct {
	baseError *err.Error
	Details   string
}

// NewCommitError creates a new CommitError
func NewCommitError(op string, cause error, details string) error {
	return &CommitError{
		baseError: err.New(pkgName, "", op, details, cause),
		Details:   details,
	}
}

// Error implements the error interface
func (e *CommitError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *CommitError) Unwrap() error { return e.baseError }

// newBrokenHistoryError reports a parent id the store does not hold.
func newBrokenHistoryError(child, parent fmt.Stringer) error {
	return err.New(pkgName, CodeBrokenHistory, "history",
		fmt.Sprintf("commit %s names missing parent %s", child, parent), nil)
}

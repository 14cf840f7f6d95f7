package engine

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
)

const (
	// Package name for error reporting
	pkgName = "engine"
)

// Error codes for engine operations
const (
	CodeNothingToRemove = "NOTHING_TO_REMOVE"
	CodeFileNotInCommit = "FILE_NOT_IN_COMMIT"
)

// NothingToRemoveError indicates rm was given a path that is neither staged
// nor tracked.
type NothingToRemoveError struct {
	baseError *err.Error
	Path      string
}

// NewNothingToRemoveError creates a NothingToRemoveError for path.
func NewNothingToRemoveError(path string) error {
	return &NothingToRemoveError{
		baseError: err.New(pkgName, CodeNothingToRemove, "rm",
			fmt.Sprintf("'%s' is neither staged nor tracked", path), nil),
		Path: path,
	}
}

// Error implements the error interface
func (e *NothingToRemoveError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *NothingToRemoveError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *NothingToRemoveError) UserMessage() string { return "No reason to remove the file." }

// FileNotInCommitError indicates a checkout asked for a path the commit does
// not record.
type FileNotInCommitError struct {
	baseError *err.Error
	Path      string
	CommitID  string
}

// NewFileNotInCommitError creates a FileNotInCommitError.
func NewFileNotInCommitError(path, commitID string) error {
	return &FileNotInCommitError{
		baseError: err.New(pkgName, CodeFileNotInCommit, "checkout",
			fmt.Sprintf("'%s' is not in commit %s", path, commitID), nil),
		Path:     path,
		CommitID: commitID,
	}
}

// Error implements the error interface
func (e *FileNotInCommitError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *FileNotInCommitError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *FileNotInCommitError) UserMessage() string { return "File does not exist in that commit." }

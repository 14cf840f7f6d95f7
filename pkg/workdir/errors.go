package workdir

import (
	"fmt"
	"strings"

	"github.com/jenniferntran/gitlet/pkg/common/err"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
	"github.com/jenniferntran/gitlet/pkg/workdir/internal"
)

const (
	// Package name for error reporting
	pkgName = "workdir"
)

// Error codes for working directory operations
const (
	CodeFileNotFound      = "FILE_NOT_FOUND"
	CodeUntrackedConflict = "UNTRACKED_CONFLICT"
	CodeProtectedPath     = "PROTECTED_PATH"
	CodeTransaction       = "TRANSACTION_FAILED"
)

// ErrInvalidOperation is returned when an operation is malformed
var ErrInvalidOperation = internal.ErrInvalidOperation

// WorkdirError represents an error that occurred during working directory operations.
// It wraps the underlying error with additional context about the operation and file path.
type WorkdirError struct {
	// Op is the operation that was being performed (e.g., "read", "write", "delete")
	Op string
	// Path is the file path where the error occurred
	Path scpath.RelativePath
	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *WorkdirError) Error() string {
	if e.Path.String() != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WorkdirError) Unwrap() error {
	return e.Err
}

// NewWorkdirError creates a new WorkdirError
func NewWorkdirError(op string, path scpath.RelativePath, err error) *WorkdirError {
	return &WorkdirError{Op: op, Path: path, Err: err}
}

// FileNotFoundError indicates a path is not a file in the working directory.
type FileNotFoundError struct {
	baseError *err.Error
	Path      string
}

// NewFileNotFoundError creates a FileNotFoundError for path.
func NewFileNotFoundError(path string) error {
	return &FileNotFoundError{
		baseError: err.New(pkgName, CodeFileNotFound, "read",
			fmt.Sprintf("file '%s' does not exist", path), nil),
		Path: path,
	}
}

// Error implements the error interface
func (e *FileNotFoundError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *FileNotFoundError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *FileNotFoundError) UserMessage() string { return "File does not exist." }

// UntrackedFileConflictError indicates a checkout or reset would overwrite
// files the repository does not track.
type UntrackedFileConflictError struct {
	baseError *err.Error
	Paths     []string
}

// NewUntrackedFileConflictError creates an error listing the conflicting paths.
func NewUntrackedFileConflictError(paths []string) error {
	return &UntrackedFileConflictError{
		baseError: err.New(pkgName, CodeUntrackedConflict, "checkout",
			fmt.Sprintf("untracked files would be overwritten: %s", strings.Join(paths, ", ")), nil).
			WithContext("paths", paths),
		Paths: paths,
	}
}

// Error implements the error interface
func (e *UntrackedFileConflictError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *UntrackedFileConflictError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *UntrackedFileConflictError) UserMessage() string {
	return "There is an untracked file in the way; delete it or add it first."
}

// ProtectedPathError is returned for paths the working directory refuses to
// touch: directories and the repository's own metadata.
type ProtectedPathError struct {
	baseError *err.Error
	Path      string
}

// NewProtectedPathError creates a ProtectedPathError with a reason.
func NewProtectedPathError(path, reason string) error {
	return &ProtectedPathError{
		baseError: err.New(pkgName, CodeProtectedPath, "access",
			fmt.Sprintf("'%s' %s", path, reason), nil),
		Path: path,
	}
}

// Error implements the error interface
func (e *ProtectedPathError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *ProtectedPathError) Unwrap() error { return e.baseError }

// TransactionError reports a checkout whose file operations failed part way.
// Completed operations have been rolled back unless the message says otherwise.
type TransactionError struct {
	baseError *err.Error
	// OperationsCompleted is the number of operations that succeeded before failure
	OperationsCompleted int
}

// NewTransactionError wraps the failure of an atomic update.
func NewTransactionError(completed, total int, cause error) error {
	return &TransactionError{
		baseError: err.New(pkgName, CodeTransaction, "apply",
			fmt.Sprintf("%d of %d operations applied", completed, total), cause),
		OperationsCompleted: completed,
	}
}

// Error implements the error interface
func (e *TransactionError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error { return e.baseError }

package store

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
	"github.com/jenniferntran/gitlet/pkg/objects"
)

const (
	// Package name for error reporting
	pkgName = "store"
)

// Error codes for store operations
const (
	CodeCommitNotFound  = "COMMIT_NOT_FOUND"
	CodeAmbiguousCommit = "COMMIT_AMBIGUOUS"
	CodeBranchNotFound  = "BRANCH_NOT_FOUND"
	CodeHeadNotFound    = "HEAD_NOT_FOUND"
	CodeCorrupt         = "STORE_CORRUPT"
)

// CommitNotFoundError indicates that no commit matches an id or id prefix.
type CommitNotFoundError struct {
	baseError *err.Error
	Ref       string
}

// NewCommitNotFoundError creates a CommitNotFoundError for ref.
func NewCommitNotFoundError(ref string) error {
	return &CommitNotFoundError{
		baseError: err.New(pkgName, CodeCommitNotFound, "resolve",
			fmt.Sprintf("no commit matches '%s'", ref), nil),
		Ref: ref,
	}
}

// NewAmbiguousCommitError reports a prefix matching more than one commit.
// Operators see the same line as for an unknown id.
func NewAmbiguousCommitError(ref string) error {
	return &CommitNotFoundError{
		baseError: err.New(pkgName, CodeAmbiguousCommit, "resolve",
			fmt.Sprintf("prefix '%s' matches more than one commit", ref), nil),
		Ref: ref,
	}
}

// Error implements the error interface
func (e *CommitNotFoundError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *CommitNotFoundError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *CommitNotFoundError) UserMessage() string {
	return "No commit with that id exists."
}

// BranchNotFoundError indicates a branch pointer does not exist.
type BranchNotFoundError struct {
	baseError *err.Error
	Name      string
}

// NewBranchNotFoundError creates a BranchNotFoundError.
func NewBranchNotFoundError(name string) error {
	return &BranchNotFoundError{
		baseError: err.New(pkgName, CodeBranchNotFound, "lookup",
			fmt.Sprintf("branch '%s' not found", name), nil),
		Name: name,
	}
}

// Error implements the error interface
func (e *BranchNotFoundError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *BranchNotFoundError) Unwrap() error { return e.baseError }

// HeadNotFoundError means the current branch does not resolve to a commit.
// It can only happen when the repository files were damaged.
type HeadNotFoundError struct {
	baseError *err.Error
	Branch    string
}

// NewHeadNotFoundError creates a HeadNotFoundError.
func NewHeadNotFoundError(branch string, id objects.ObjectHash) error {
	msg := fmt.Sprintf("current branch '%s' does not exist", branch)
	if !id.IsZero() {
		msg = fmt.Sprintf("current branch '%s' points at missing commit %s", branch, id)
	}
	return &HeadNotFoundError{
		baseError: err.New(pkgName, CodeHeadNotFound, "head", msg, nil),
		Branch:    branch,
	}
}

// Error implements the error interface
func (e *HeadNotFoundError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *HeadNotFoundError) Unwrap() error { return e.baseError }

// CorruptError reports persisted state that cannot be decoded or violates
// the store's invariants.
type CorruptError struct {
	baseError *err.Error
}

// NewCorruptObjectError wraps a failure to decode the object stored for id.
func NewCorruptObjectError(id objects.ObjectHash, cause error) error {
	return &CorruptError{
		baseError: err.New(pkgName, CodeCorrupt, "read",
			fmt.Sprintf("object %s is corrupt", id), cause).
			WithContext("id", id.String()),
	}
}

// NewDanglingBranchError reports a branch pointing at an unknown commit.
func NewDanglingBranchError(name string, id objects.ObjectHash) error {
	return &CorruptError{
		baseError: err.New(pkgName, CodeCorrupt, "load",
			fmt.Sprintf("branch '%s' points at missing commit %s", name, id), nil),
	}
}

// Error implements the error interface
func (e *CorruptError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *CorruptError) Unwrap() error { return e.baseError }

package gitletrepo

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

const pkgName = "repository"

const (
	CodeNotInitialized     = "NOT_INITIALIZED"
	CodeAlreadyInitialized = "ALREADY_INITIALIZED"
)

// NotInitializedError indicates the directory holds no repository.
type NotInitializedError struct {
	baseError *err.Error
	Path      scpath.RepositoryPath
}

// NewNotInitializedError creates a NotInitializedError for path.
func NewNotInitializedError(path scpath.RepositoryPath) error {
	return &NotInitializedError{
		baseError: err.New(pkgName, CodeNotInitialized, "open",
			fmt.Sprintf("no %s directory in %s", scpath.SourceDir, path), nil),
		Path: path,
	}
}

func (e *NotInitializedError) Error() string { return e.baseError.Error() }

func (e *NotInitializedError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *NotInitializedError) UserMessage() string {
	return "Not in an initialized Gitlet directory."
}

// AlreadyInitializedError indicates init ran where a repository already exists.
type AlreadyInitializedError struct {
	baseError *err.Error
	Path      scpath.RepositoryPath
}

// NewAlreadyInitializedError creates an AlreadyInitializedError for path.
func NewAlreadyInitializedError(path scpath.RepositoryPath) error {
	return &AlreadyInitializedError{
		baseError: err.New(pkgName, CodeAlreadyInitialized, "init",
			fmt.Sprintf("repository already exists in %s", path), nil),
		Path: path,
	}
}

func (e *AlreadyInitializedError) Error() string { return e.baseError.Error() }

func (e *AlreadyInitializedError) Unwrap() error { return e.baseError }

// UserMessage returns the line shown to the operator.
func (e *AlreadyInitializedError) UserMessage() string {
	return "A Gitlet version-control system already exists in the current directory."
}

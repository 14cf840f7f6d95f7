package branch

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
)

const (
	// Package name for error reporting
	pkgName = "branch"
)

// Error codes for branch operations
const (
	CodeNotFound      = "BRANCH_NOT_FOUND"
	CodeAlreadyExists = "BRANCH_ALREADY_EXISTS"
	CodeInvalidName   = "BRANCH_INVALID_NAME"
	CodeIsCurrent     = "BRANCH_IS_CURRENT"
	CodeAlreadyOn     = "BRANCH_ALREADY_CHECKED_OUT"
)

// Operations a NotFoundError can come from. Each reports a different line.
const (
	OpCheckout = "checkout"
	OpDelete   = "delete"
)

// NotFoundError indicates a branch doesn't exist
type NotFoundError struct {
	baseError  *err.Error
	BranchName string
}

// NewNotFoundError creates a new branch not found error for op
func NewNotFoundError(name, op string) error {
	return &NotFoundError{
		baseError: err.New(
			pkgName,
			CodeNotFound,
			op,
			fmt.Sprintf("branch '%s' not found", name),
			nil,
		),
		BranchName: name,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *NotFoundError) Unwrap() error {
	return e.baseError
}

// UserMessage returns the line shown to the operator.
func (e *NotFoundError) UserMessage() string {
	if e.baseError.Op == OpDelete {
		return "A branch with that name does not exist."
	}
	return "No such branch exists."
}

// AlreadyExistsError indicates a branch already exists
type AlreadyExistsError struct {
	baseError  *err.Error
	BranchName string
}

// NewAlreadyExistsError creates a new branch already exists error
func NewAlreadyExistsError(name string) error {
	return &AlreadyExistsError{
		baseError: err.New(
			pkgName,
			CodeAlreadyExists,
			"create",
			fmt.Sprintf("branch '%s' already exists", name),
			nil,
		),
		BranchName: name,
	}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *AlreadyExistsError) Unwrap() error {
	return e.baseError
}

// UserMessage returns the line shown to the operator.
func (e *AlreadyExistsError) UserMessage() string {
	return "A branch with that name already exists."
}

// InvalidNameError indicates an invalid branch name
type InvalidNameError struct {
	baseError  *err.Error
	BranchName string
}

// NewInvalidNameError creates a new invalid branch name error
func NewInvalidNameError(name string, cause error) error {
	return &InvalidNameError{
		baseError: err.New(
			pkgName,
			CodeInvalidName,
			"validate",
			fmt.Sprintf("invalid branch name '%s'", name),
			cause,
		),
		BranchName: name,
	}
}

// Error implements the error interface
func (e *InvalidNameError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *InvalidNameError) Unwrap() error {
	return e.baseError
}

// UserMessage returns the line shown to the operator.
func (e *InvalidNameError) UserMessage() string {
	return "Invalid branch name."
}

// IsCurrentError indicates attempting to delete the current branch
type IsCurrentError struct {
	baseError  *err.Error
	BranchName string
}

// NewIsCurrentError creates a new is current branch error
func NewIsCurrentError(name string) error {
	return &IsCurrentError{
		baseError: err.New(
			pkgName,
			CodeIsCurrent,
			"delete",
			fmt.Sprintf("cannot delete current branch '%s'", name),
			nil,
		),
		BranchName: name,
	}
}

// Error implements the error interface
func (e *IsCurrentError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *IsCurrentError) Unwrap() error {
	return e.baseError
}

// UserMessage returns the line shown to the operator.
func (e *IsCurrentError) UserMessage() string {
	return "Cannot remove the current branch."
}

// AlreadyOnBranchError indicates a checkout of the branch already checked out
type AlreadyOnBranchError struct {
	baseError  *err.Error
	BranchName string
}

// NewAlreadyOnBranchError creates a new already on branch error
func NewAlreadyOnBranchError(name string) error {
	return &AlreadyOnBranchError{
		baseError: err.New(
			pkgName,
			CodeAlreadyOn,
			OpCheckout,
			fmt.Sprintf("already on '%s'", name),
			nil,
		),
		BranchName: name,
	}
}

// Error implements the error interface
func (e *AlreadyOnBranchError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *AlreadyOnBranchError) Unwrap() error {
	return e.baseError
}

// UserMessage returns the line shown to the operator.
func (e *AlreadyOnBranchError) UserMessage() string {
	return "No need to checkout the current branch."
}

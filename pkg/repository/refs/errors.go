package refs

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

const pkgName = "refs"

const (
	CodeRefNotFound = "REF_NOT_FOUND"
	CodeInvalidRef  = "INVALID_REF"
)

// RefNotFoundError is returned when a reference file does not exist.
type RefNotFoundError struct {
	Ref       scpath.RefPath
	baseError *err.Error
}

func (e *RefNotFoundError) Error() string { return e.baseError.Error() }

func (e *RefNotFoundError) Unwrap() error { return e.baseError }

// NewRefNotFoundError creates a RefNotFoundError for ref.
func NewRefNotFoundError(ref scpath.RefPath) *RefNotFoundError {
	return &RefNotFoundError{
		Ref: ref,
		baseError: err.New(pkgName, CodeRefNotFound, "read",
			fmt.Sprintf("reference %s not found", ref), nil).
			WithContext("ref", ref.String()),
	}
}

// InvalidRefError is returned when a reference file holds something other
// than what its kind requires.
type InvalidRefError struct {
	Ref       scpath.RefPath
	Content   string
	baseError *err.Error
}

func (e *InvalidRefError) Error() string { return e.baseError.Error() }

func (e *InvalidRefError) Unwrap() error { return e.baseError }

// NewInvalidRefError creates an InvalidRefError wrapping cause.
func NewInvalidRefError(ref scpath.RefPath, content string, cause error) *InvalidRefError {
	return &InvalidRefError{
		Ref:     ref,
		Content: content,
		baseError: err.New(pkgName, CodeInvalidRef, "parse",
			fmt.Sprintf("reference %s has invalid content %q", ref, content), cause),
	}
}

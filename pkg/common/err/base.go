package err

import (
	"errors"
	"strings"
)

// Error is the base error type shared by every package in the module.
//
// Package-specific errors embed it and add their own fields. The Code is
// what callers match on; Message is a short description for logs.
type Error struct {
	// Package identifies the originating package (e.g. "store", "workdir").
	Package string

	// Code is a machine-readable category such as CodeNotFound.
	Code string

	// Op is the operation in flight when the error happened ("load", "checkout").
	Op string

	// Message is a brief human-readable description.
	Message string

	// Err is the wrapped cause, nil for leaf errors.
	Err error

	// Context holds optional structured metadata, allocated on first use.
	Context map[string]any
}

// Error implements the error interface.
// Format: [package][code] op: message: wrapped
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[" + e.Package + "]")
	}
	if e.Code != "" {
		prefix.WriteString("[" + e.Code + "]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")
	if e.Err != nil {
		if result == "" {
			return e.Err.Error()
		}
		result += ": " + e.Err.Error()
	}
	return result
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithContext attaches a key/value pair and returns the receiver for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// GetContext returns the value stored under key, or nil.
func (e *Error) GetContext(key string) any {
	if e.Context == nil {
		return nil
	}
	return e.Context[key]
}

// New creates a base error.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps err with package and operation context. Returns nil for a nil err.
func Wrap(err error, pkg, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Package: pkg, Op: op, Err: err}
}

// WrapWithCode is Wrap with a code attached.
func WrapWithCode(err error, pkg, code, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Package: pkg, Code: code, Op: op, Err: err}
}

// Standard codes. Packages define their own where these do not fit.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeInternal      = "INTERNAL"
	CodeValidation    = "VALIDATION"
	CodeConflict      = "CONFLICT"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeCorrupt       = "CORRUPT"
)

// IsCode reports whether any *Error in err's chain carries code.
func IsCode(err error, code string) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetOp returns the operation of the first *Error in err's chain.
func GetOp(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// UserFacing is implemented by errors that carry a line meant for the
// person at the terminal rather than for logs.
type UserFacing interface {
	error
	UserMessage() string
}

// Reported returns the operator-facing line carried by err, if any error in
// its chain implements UserFacing.
func Reported(err error) (string, bool) {
	var uf UserFacing
	if errors.As(err, &uf) {
		return uf.UserMessage(), true
	}
	return "", false
}

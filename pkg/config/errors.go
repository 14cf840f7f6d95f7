package config

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
)

const (
	pkgName = "config"

	// Package-specific error codes
	CodeInvalidFormat = err.CodeInvalidFormat
	CodeInvalidValue  = "INVALID_VALUE"
	CodeWriteFailed   = "WRITE_FAILED"
)

// ConfigError represents a configuration-related error with detailed context
type ConfigError struct {
	base *err.Error
	Path string // file path if applicable
	Key  string // config key if applicable
}

// NewConfigError creates a new ConfigError
func NewConfigError(op, code, key, path string, underlying error) *ConfigError {
	return &ConfigError{
		base: err.New(pkgName, code, op, "", underlying),
		Path: path,
		Key:  key,
	}
}

// NewInvalidValueError reports a value that key does not accept.
func NewInvalidValueError(key string, cause error) *ConfigError {
	return NewConfigError("validate", CodeInvalidValue, key, "", cause)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := e.base.Error()
	if e.Key != "" {
		msg += fmt.Sprintf(" [key=%s]", e.Key)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" [path=%s]", e.Path)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.base
}

// IsInvalidValue returns true if e reports a rejected value
func IsInvalidValue(e error) bool {
	return err.IsCode(e, CodeInvalidValue)
}

// IsInvalidFormat returns true if e reports an unreadable file
func IsInvalidFormat(e error) bool {
	return err.IsCode(e, CodeInvalidFormat)
}

package main

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
)

const pkgName = "cli"

// Error codes for command-line usage errors
const (
	CodeNoCommand         = "NO_COMMAND"
	CodeUnknownCommand    = "UNKNOWN_COMMAND"
	CodeIncorrectOperands = "INCORRECT_OPERANDS"
)

// usageError reports a malformed invocation.
type usageError struct {
	baseError *err.Error
	line      string
}

func (e *usageError) Error() string { return e.baseError.Error() }

func (e *usageError) Unwrap() error { return e.baseError }

func (e *usageError) UserMessage() string { return e.line }

func errNoCommand() error {
	return &usageError{
		baseError: err.New(pkgName, CodeNoCommand, "dispatch", "no command given", nil),
		line:      "Please enter a command.",
	}
}

func errUnknownCommand(name string) error {
	return &usageError{
		baseError: err.New(pkgName, CodeUnknownCommand, "dispatch", fmt.Sprintf("unknown command %q", name), nil),
		line:      "No command with that name exists.",
	}
}

func errIncorrectOperands() error {
	return &usageError{
		baseError: err.New(pkgName, CodeIncorrectOperands, "validate", "wrong number of operands", nil),
		line:      "Incorrect operands.",
	}
}

package workdir

import (
	"github.com/jenniferntran/gitlet/pkg/workdir/internal"
)

// Re-export types from internal package for public API
type (
	// ActionType represents the type of file operation to perform
	ActionType = internal.ActionType

	// Operation represents a single file operation to be performed on the working directory.
	Operation = internal.Operation

	// ChangeSummary provides statistics about applied changes
	ChangeSummary = internal.ChangeSummary

	// TrackedFunc reports whether a working-directory path is tracked.
	TrackedFunc = internal.TrackedFunc
)

// Re-export action type constants
const (
	ActionCreate = internal.ActionCreate
	ActionModify = internal.ActionModify
	ActionDelete = internal.ActionDelete
)

// UpdateResult contains the outcome of a working directory update operation
type UpdateResult struct {
	// FilesChanged is the number of files that were created, modified, or deleted
	FilesChanged int
	// Operations lists all operations that were performed
	Operations []Operation
	// Summary counts the operations by kind
	Summary ChangeSummary
}

package internal

import (
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// ActionType represents the type of file operation to perform
type ActionType int

const (
	// ActionCreate creates a new file in the working directory
	ActionCreate ActionType = iota
	// ActionModify overwrites an existing file's content
	ActionModify
	// ActionDelete removes a file from the working directory
	ActionDelete
)

// String returns the string representation of the action type
func (a ActionType) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionModify:
		return "modify"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// IsWrite reports whether the action writes content.
func (a ActionType) IsWrite() bool {
	return a == ActionCreate || a == ActionModify
}

// Operation represents a single file operation to be performed on the working directory.
type Operation struct {
	Path    scpath.RelativePath
	Action  ActionType
	Content string
}

// Backup holds a file's state before an operation touched it.
type Backup struct {
	Path    scpath.RelativePath
	Content []byte
	Existed bool
}

// ChangeSummary provides statistics about planned changes
type ChangeSummary struct {
	Created  int
	Modified int
	Deleted  int
}

// Total returns the number of operations summarized.
func (s ChangeSummary) Total() int {
	return s.Created + s.Modified + s.Deleted
}

// TrackedFunc reports whether a working-directory path is tracked: staged
// for addition or recorded in the current commit.
type TrackedFunc func(path scpath.RelativePath) bool

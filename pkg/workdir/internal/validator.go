package internal

import (
	"sort"

	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// Validator checks that a checkout would not clobber untracked work.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// FindUntrackedConflicts returns, sorted, every present file that is
// untracked and that the target snapshot would overwrite.
func (v *Validator) FindUntrackedConflicts(present []scpath.RelativePath, tracked TrackedFunc, target FileMap) []scpath.RelativePath {
	var conflicts []scpath.RelativePath
	for _, path := range present {
		if _, inTarget := target[path]; inTarget && !tracked(path) {
			conflicts = append(conflicts, path)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })
	return conflicts
}

// ValidateOperations rejects malformed operation lists.
func (v *Validator) ValidateOperations(ops []Operation) error {
	seen := make(map[scpath.RelativePath]bool, len(ops))
	for i, op := range ops {
		if !op.Path.IsValid() {
			return invalidOperation(i, "has invalid path %q", op.Path)
		}
		if op.Action != ActionCreate && op.Action != ActionModify && op.Action != ActionDelete {
			return invalidOperation(i, "has invalid action %d", op.Action)
		}
		if op.Path.IsInSubdir(scpath.SourceDir) {
			return invalidOperation(i, "touches the repository directory: %s", op.Path)
		}
		if seen[op.Path] {
			return invalidOperation(i, "duplicates path %s", op.Path)
		}
		seen[op.Path] = true
	}
	return nil
}

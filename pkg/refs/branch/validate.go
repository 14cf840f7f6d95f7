package branch

import (
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// ValidateBranchName rejects names that cannot be stored as a branch file:
// empty names, whitespace, "..", a leading "-", "." or "/", and the other
// characters reference files do not allow.
func ValidateBranchName(name string) error {
	if _, err := scpath.NewBranchRef(name); err != nil {
		return NewInvalidNameError(name, err)
	}
	return nil
}

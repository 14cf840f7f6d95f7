package branch

import (
	"github.com/jenniferntran/gitlet/pkg/objects"
)

// BranchInfo describes one branch pointer.
type BranchInfo struct {
	// Name is the branch name (e.g., "master", "feature/login")
	Name string

	// SHA is the commit hash the branch points to
	SHA objects.ObjectHash

	// IsCurrentBranch indicates if this is the currently checked out branch
	IsCurrentBranch bool

	// LastCommitMessage is the message of the commit the branch points to
	LastCommitMessage string

	// LastCommitDate is the formatted timestamp of that commit
	LastCommitDate string
}

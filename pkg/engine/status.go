package engine

// BranchStatus is one line of the branch listing.
type BranchStatus struct {
	Name    string
	Current bool
}

// Status is a point-in-time view of the branches and the staging area.
// Modified and Untracked are always empty: the working directory is not
// compared against HEAD.
type Status struct {
	Branches  []BranchStatus
	Staged    []string
	Removed   []string
	Modified  []string
	Untracked []string
}

// Status reports every branch, with the current one marked, and the paths
// staged for addition and for removal, each sorted.
func (e *Engine) Status() Status {
	infos := e.Branches()
	branches := make([]BranchStatus, len(infos))
	for i, info := range infos {
		branches[i] = BranchStatus{Name: info.Name, Current: info.IsCurrentBranch}
	}

	return Status{
		Branches:  branches,
		Staged:    e.stage.AddedPaths(),
		Removed:   e.stage.RemovedPaths(),
		Modified:  []string{},
		Untracked: []string{},
	}
}

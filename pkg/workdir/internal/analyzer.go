package internal

import (
	"sort"

	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// FileMap maps a repository-relative path to file content.
type FileMap = map[scpath.RelativePath]string

// ChangeAnalysis contains the operations that bring the working directory to
// a target snapshot, writes first and deletes last.
type ChangeAnalysis struct {
	Operations []Operation
	Summary    ChangeSummary
}

// Analyzer turns a target snapshot and the files currently present into a
// list of operations.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AnalyzeChanges writes every target path and deletes each present, tracked
// file the target does not contain. Untracked files are never deleted.
// Operations are ordered by path within each group.
func (a *Analyzer) AnalyzeChanges(present []scpath.RelativePath, tracked TrackedFunc, target FileMap) ChangeAnalysis {
	presentSet := make(map[scpath.RelativePath]bool, len(present))
	for _, p := range present {
		presentSet[p] = true
	}

	var analysis ChangeAnalysis
	for _, path := range sortedTargetPaths(target) {
		op := Operation{Path: path, Action: ActionCreate, Content: target[path]}
		if presentSet[path] {
			op.Action = ActionModify
			analysis.Summary.Modified++
		} else {
			analysis.Summary.Created++
		}
		analysis.Operations = append(analysis.Operations, op)
	}

	analysis.Operations = append(analysis.Operations, findDeletedFiles(present, tracked, target, &analysis.Summary)...)
	return analysis
}

func findDeletedFiles(present []scpath.RelativePath, tracked TrackedFunc, target FileMap, summary *ChangeSummary) []Operation {
	sorted := append([]scpath.RelativePath(nil), present...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var ops []Operation
	for _, path := range sorted {
		if _, keep := target[path]; keep || !tracked(path) {
			continue
		}
		ops = append(ops, Operation{Path: path, Action: ActionDelete})
		summary.Deleted++
	}
	return ops
}

func sortedTargetPaths(target FileMap) []scpath.RelativePath {
	paths := make([]scpath.RelativePath, 0, len(target))
	for p := range target {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
	return paths
}

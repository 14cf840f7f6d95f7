package workdir

import (
	"context"
	"log/slog"

	"github.com/jenniferntran/gitlet/pkg/common/logger"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
	"github.com/jenniferntran/gitlet/pkg/workdir/internal"
)

// Manager brings the working directory in line with a commit snapshot when
// switching branches or resetting.
//
// An update runs in three phases: the files present beforehand are listed
// and checked against the target for untracked conflicts, then every target
// file is written, then tracked files the target lacks are deleted. Nothing
// is written unless the check passes, and a failed write or delete rolls
// back what was already applied.
type Manager struct {
	dir         *Dir
	analyzer    *internal.Analyzer
	validator   *internal.Validator
	transaction *internal.Manager
	log         *slog.Logger
}

// NewManager creates a new working directory manager
func NewManager(dir *Dir) *Manager {
	validator := internal.NewValidator()
	return &Manager{
		dir:         dir,
		analyzer:    internal.NewAnalyzer(),
		validator:   validator,
		transaction: internal.NewManager(internal.NewFileOps(dir.Root()), validator),
		log:         logger.With("component", "workdir"),
	}
}

// UpdateToSnapshot rewrites the working directory to hold exactly target's
// files, preserving untracked ones. tracked decides which present files the
// repository owns.
func (m *Manager) UpdateToSnapshot(ctx context.Context, target map[string]string, tracked func(path string) bool) (UpdateResult, error) {
	present, err := m.dir.ListPlainFiles()
	if err != nil {
		return UpdateResult{}, err
	}

	presentPaths := toRelative(present)
	targetFiles := make(internal.FileMap, len(target))
	for p, content := range target {
		targetFiles[scpath.RelativePath(p)] = content
	}
	isTracked := func(p scpath.RelativePath) bool { return tracked(p.String()) }

	if conflicts := m.validator.FindUntrackedConflicts(presentPaths, isTracked, targetFiles); len(conflicts) > 0 {
		paths := make([]string, len(conflicts))
		for i, c := range conflicts {
			paths[i] = c.String()
		}
		m.log.Debug("untracked files block update", "paths", paths)
		return UpdateResult{}, NewUntrackedFileConflictError(paths)
	}

	analysis := m.analyzer.AnalyzeChanges(presentPaths, isTracked, targetFiles)
	txn := m.transaction.ExecuteAtomically(ctx, analysis.Operations)
	if !txn.Success {
		return UpdateResult{}, NewTransactionError(txn.OperationsApplied, txn.TotalOperations, txn.Err)
	}

	m.log.Debug("working directory updated",
		"created", analysis.Summary.Created,
		"modified", analysis.Summary.Modified,
		"deleted", analysis.Summary.Deleted)

	return UpdateResult{
		FilesChanged: txn.OperationsApplied,
		Operations:   analysis.Operations,
		Summary:      analysis.Summary,
	}, nil
}

func toRelative(paths []string) []scpath.RelativePath {
	out := make([]scpath.RelativePath, len(paths))
	for i, p := range paths {
		out[i] = scpath.RelativePath(p)
	}
	return out
}

package engine

import (
	"context"

	"github.com/jenniferntran/gitlet/pkg/commitmanager"
	"github.com/jenniferntran/gitlet/pkg/objects"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
	"github.com/jenniferntran/gitlet/pkg/refs/branch"
	"github.com/jenniferntran/gitlet/pkg/workdir"
)

// Add stages the working copy of path. Content equal to HEAD's unstages the
// path instead. A pending removal of path is always cancelled.
func (e *Engine) Add(ctx context.Context, path string) error {
	key, ok := normalize(path)
	if !ok {
		return workdir.NewFileNotFoundError(path)
	}
	content, err := e.wd.Read(key)
	if err != nil {
		return err
	}

	head, err := e.Head()
	if err != nil {
		return err
	}

	if recorded, tracked := head.Snapshot.Get(key); tracked && recorded == content {
		e.stage.UnstageAdd(key)
		e.log.Debug("add matches head, unstaged", "path", key)
	} else {
		e.stage.StageAdd(key, content)
		e.log.Debug("staged for addition", "path", key, "bytes", len(content))
	}
	e.stage.UnstageRemove(key)
	return nil
}

// Commit records the staged changes as a new commit on the current branch.
func (e *Engine) Commit(ctx context.Context, message string) (*commit.Commit, error) {
	c, err := e.commits.CreateCommit(ctx, e.stage, commitmanager.CommitOptions{Message: message})
	if err != nil {
		return nil, err
	}
	e.log.Info("committed", "id", c.ID.Short(), "branch", e.CurrentBranch())
	return c, nil
}

// Remove unstages path and, when HEAD tracks it, stages its removal and
// deletes the working copy.
func (e *Engine) Remove(ctx context.Context, path string) error {
	key, ok := normalize(path)
	if !ok {
		return NewNothingToRemoveError(path)
	}

	head, err := e.Head()
	if err != nil {
		return err
	}
	recorded, tracked := head.Snapshot.Get(key)
	if !e.stage.IsStagedForAdd(key) && !tracked {
		return NewNothingToRemoveError(key)
	}

	e.stage.UnstageAdd(key)
	if tracked {
		e.stage.StageRemove(key, recorded)
		if err := e.wd.Delete(key); err != nil {
			return err
		}
		e.log.Debug("staged for removal", "path", key)
	}
	return nil
}

// Log returns the commits from HEAD back to the initial commit, or only the
// newest limit of them when limit is positive.
func (e *Engine) Log(ctx context.Context, limit int) ([]*commit.Commit, error) {
	return e.commits.GetHistory(ctx, commitmanager.HistoryOptions{Limit: limit})
}

// GlobalLog returns every commit ever made, ordered by id.
func (e *Engine) GlobalLog() []*commit.Commit {
	return e.commits.All()
}

// Find returns the ids of the commits whose message is exactly message.
func (e *Engine) Find(ctx context.Context, message string) ([]objects.ObjectHash, error) {
	return e.commits.FindByMessage(ctx, message)
}

// CheckoutFile restores path in the working directory from HEAD.
func (e *Engine) CheckoutFile(ctx context.Context, path string) error {
	head, err := e.Head()
	if err != nil {
		return err
	}
	return e.restoreFile(head, path)
}

// CheckoutFileFrom restores path from the commit ref names, a full id or a
// unique prefix.
func (e *Engine) CheckoutFileFrom(ctx context.Context, ref, path string) error {
	c, err := e.commits.GetCommit(ctx, ref)
	if err != nil {
		return err
	}
	return e.restoreFile(c, path)
}

func (e *Engine) restoreFile(c *commit.Commit, path string) error {
	key, _ := normalize(path)
	content, ok := c.Snapshot.Get(key)
	if !ok {
		return NewFileNotInCommitError(path, c.ID.String())
	}
	if err := e.wd.Write(key, content); err != nil {
		return err
	}
	e.log.Debug("restored file", "path", key, "commit", c.ID.Short())
	return nil
}

// CheckoutBranch switches to branch name, bringing the working directory to
// its head commit. Untracked files the switch would overwrite abort it before
// anything is touched. The staging area is cleared.
func (e *Engine) CheckoutBranch(ctx context.Context, name string) error {
	target, err := e.branches.CheckoutTarget(name)
	if err != nil {
		return err
	}
	if err := e.moveTo(ctx, target); err != nil {
		return err
	}
	if err := e.branches.Switch(name); err != nil {
		return err
	}
	e.stage.Clear()

	e.log.Info("switched branch", "branch", name, "head", target.ID.Short())
	return nil
}

// Branch creates a branch at HEAD without switching to it.
func (e *Engine) Branch(ctx context.Context, name string) error {
	if err := e.branches.Create(name); err != nil {
		return err
	}
	e.log.Info("created branch", "branch", name)
	return nil
}

// RemoveBranch deletes the branch pointer name. Its commits stay.
func (e *Engine) RemoveBranch(ctx context.Context, name string) error {
	if err := e.branches.Delete(name); err != nil {
		return err
	}
	e.log.Info("removed branch", "branch", name)
	return nil
}

// Branches lists every branch sorted by name.
func (e *Engine) Branches() []branch.BranchInfo {
	return e.branches.List()
}

// Reset brings the working directory to the commit ref names and moves the
// current branch to it. The staging area is cleared.
func (e *Engine) Reset(ctx context.Context, ref string) error {
	target, err := e.commits.GetCommit(ctx, ref)
	if err != nil {
		return err
	}
	if err := e.moveTo(ctx, target); err != nil {
		return err
	}

	current := e.store.CurrentBranch()
	if err := e.store.SetBranch(current, target.ID); err != nil {
		return err
	}
	e.stage.Clear()

	e.log.Info("reset", "branch", current, "head", target.ID.Short())
	return nil
}

// moveTo rewrites the working directory from HEAD's snapshot to target's.
func (e *Engine) moveTo(ctx context.Context, target *commit.Commit) error {
	head, err := e.Head()
	if err != nil {
		return err
	}
	result, err := e.wm.UpdateToSnapshot(ctx, target.Snapshot, e.tracked(head))
	if err != nil {
		return err
	}
	e.log.Debug("working directory moved",
		"from", head.ID.Short(),
		"to", target.ID.Short(),
		"changed", result.FilesChanged)
	return nil
}

package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jenniferntran/gitlet/pkg/common/logger"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
	"github.com/jenniferntran/gitlet/pkg/repository/refs"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many object files are read or written at once.
const DefaultConcurrency = 8

// Disk loads an ObjectStore from a .gitlet directory and writes its changes
// back: commits to the object files, branches to refs/heads and the current
// branch to HEAD.
type Disk struct {
	commits     CommitStore
	refs        *refs.RefManager
	sourceDir   scpath.SourcePath
	concurrency int
	log         *slog.Logger
}

// NewDisk creates a Disk for the repository metadata at sourceDir.
func NewDisk(sourceDir scpath.SourcePath) *Disk {
	return &Disk{
		commits:     NewFileCommitStore(),
		refs:        refs.NewRefManager(sourceDir),
		sourceDir:   sourceDir,
		concurrency: DefaultConcurrency,
		log:         logger.With("component", "store"),
	}
}

// Initialize creates the objects and refs directories and HEAD.
func (d *Disk) Initialize() error {
	if err := d.commits.Initialize(d.sourceDir); err != nil {
		return err
	}
	return d.refs.Init()
}

// Load reads every commit, branch and HEAD. Commit files are decoded
// concurrently.
func (d *Disk) Load(ctx context.Context) (*ObjectStore, error) {
	if err := d.commits.Initialize(d.sourceDir); err != nil {
		return nil, err
	}

	ids, err := d.commits.ListIDs()
	if err != nil {
		return nil, err
	}

	loaded := make([]*commit.Commit, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := d.commits.ReadCommit(id)
			if err != nil {
				return err
			}
			loaded[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load commits: %w", err)
	}

	s := New()
	for _, c := range loaded {
		s.load(c)
	}

	names, err := d.refs.ListBranches()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		ref, err := scpath.NewBranchRef(name)
		if err != nil {
			return nil, fmt.Errorf("load branch %q: %w", name, err)
		}
		id, err := d.refs.ReadRef(ref)
		if err != nil {
			return nil, err
		}
		s.branches[name] = id
	}

	head, err := d.refs.ReadHead()
	if err != nil {
		return nil, err
	}
	s.current = head.ShortName()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	d.log.Debug("loaded object store",
		"commits", len(ids),
		"branches", len(names),
		"current", s.current)
	return s, nil
}

// Save persists what changed in s since it was loaded: new commits first,
// then branch pointers, then HEAD, so the files never reference a commit
// that is not on disk.
func (d *Disk) Save(ctx context.Context, s *ObjectStore) error {
	if !s.IsDirty() {
		return nil
	}
	if err := s.Validate(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for _, id := range s.newCommits {
		c := s.commits[id]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return d.commits.WriteCommit(c)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("save commits: %w", err)
	}

	for _, name := range sortedKeys(s.removedBranches) {
		ref, err := scpath.NewBranchRef(name)
		if err != nil {
			return err
		}
		if _, err := d.refs.DeleteRef(ref); err != nil {
			return fmt.Errorf("delete branch %q: %w", name, err)
		}
	}
	for _, name := range sortedKeys(s.changedBranches) {
		ref, err := scpath.NewBranchRef(name)
		if err != nil {
			return err
		}
		if err := d.refs.UpdateRef(ref, s.branches[name]); err != nil {
			return err
		}
	}

	if s.headChanged {
		ref, err := scpath.NewBranchRef(s.current)
		if err != nil {
			return err
		}
		if err := d.refs.WriteHead(ref); err != nil {
			return err
		}
	}

	d.log.Debug("saved object store",
		"new_commits", len(s.newCommits),
		"changed_branches", len(s.changedBranches),
		"removed_branches", len(s.removedBranches))
	s.markClean()
	return nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

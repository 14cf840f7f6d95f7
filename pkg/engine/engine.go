// Package engine implements the user-visible repository operations on top of
// the object store, the staging area and the working directory.
//
// An Engine covers one load-operate-persist cycle: Open loads the persisted
// state, one or more operations mutate it in memory (and the working
// directory directly), and Save writes it back.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jenniferntran/gitlet/pkg/commitmanager"
	"github.com/jenniferntran/gitlet/pkg/common/logger"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
	"github.com/jenniferntran/gitlet/pkg/refs/branch"
	"github.com/jenniferntran/gitlet/pkg/repository/gitletrepo"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
	"github.com/jenniferntran/gitlet/pkg/staging"
	"github.com/jenniferntran/gitlet/pkg/store"
	"github.com/jenniferntran/gitlet/pkg/workdir"
)

// Engine owns the in-memory state of one repository for the duration of a
// command.
//
// Engine is not thread-safe.
type Engine struct {
	repo     *gitletrepo.Repository
	store    *store.ObjectStore
	stage    *staging.Area
	wd       *workdir.Dir
	wm       *workdir.Manager
	commits  *commitmanager.Manager
	branches *branch.Manager
	clock    func() time.Time
	log      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the source of commit times.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

func newEngine(repo *gitletrepo.Repository, s *store.ObjectStore, stage *staging.Area, opts []Option) *Engine {
	e := &Engine{
		repo:  repo,
		store: s,
		stage: stage,
		clock: time.Now,
		log:   logger.With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.wd = workdir.NewDir(repo.WorkingDirectory())
	e.wm = workdir.NewManager(e.wd)
	e.commits = commitmanager.NewManager(s,
		commitmanager.WithClock(e.clock),
		commitmanager.WithLogger(e.log))
	e.branches = branch.NewManager(s)
	return e
}

// Init creates a repository at path holding only the initial commit on
// master, with an empty staging area, and persists it.
func Init(ctx context.Context, path scpath.RepositoryPath, opts ...Option) (*Engine, error) {
	repo, err := gitletrepo.Initialize(path)
	if err != nil {
		return nil, err
	}

	s := store.New()
	root := commit.Initial()
	s.PutCommit(root)
	if err := s.SetBranch(branch.DefaultBranch, root.ID); err != nil {
		return nil, err
	}
	if err := s.SetCurrentBranch(branch.DefaultBranch); err != nil {
		return nil, err
	}

	e := newEngine(repo, s, staging.NewArea(), opts)
	if err := e.Save(ctx); err != nil {
		return nil, err
	}
	e.log.Info("initialized repository", "path", path, "root", root.ID.Short())
	return e, nil
}

// Open loads the repository whose .gitlet directory sits in path. The object
// store and the staging area are read concurrently.
func Open(ctx context.Context, path scpath.RepositoryPath, opts ...Option) (*Engine, error) {
	repo, err := gitletrepo.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		s     *store.ObjectStore
		stage *staging.Area
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := repo.Disk().Load(gctx)
		if err != nil {
			return err
		}
		s = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := staging.Read(repo.StagePath())
		if err != nil {
			return err
		}
		stage = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	e := newEngine(repo, s, stage, opts)
	e.log.Debug("opened repository",
		"branch", s.CurrentBranch(),
		"commits", s.CommitCount(),
		"staged", stage.Count())
	return e, nil
}

// Save persists the object store's changes and the staging area.
func (e *Engine) Save(ctx context.Context) error {
	if err := e.repo.Disk().Save(ctx, e.store); err != nil {
		return fmt.Errorf("save object store: %w", err)
	}
	if err := e.stage.Write(e.repo.StagePath()); err != nil {
		return err
	}
	return nil
}

// Repository returns the repository the engine operates on.
func (e *Engine) Repository() *gitletrepo.Repository {
	return e.repo
}

// Head returns the commit the current branch points to.
func (e *Engine) Head() (*commit.Commit, error) {
	return e.store.Head()
}

// CurrentBranch returns the name of the checked out branch.
func (e *Engine) CurrentBranch() string {
	return e.store.CurrentBranch()
}

// Stage returns the staging area. Callers must not keep it past Save.
func (e *Engine) Stage() *staging.Area {
	return e.stage
}

// tracked reports whether path belongs to the repository under head: staged
// for addition or recorded in head's snapshot.
func (e *Engine) tracked(head *commit.Commit) func(string) bool {
	return func(path string) bool {
		return e.stage.IsStagedForAdd(path) || head.Tracks(path)
	}
}

// normalize turns a user-supplied path into the key used by snapshots and
// the staging area.
func normalize(path string) (string, bool) {
	rel, err := scpath.NewRelativePath(path)
	if err != nil || rel.IsInSubdir(scpath.SourceDir) {
		return path, false
	}
	return rel.String(), true
}

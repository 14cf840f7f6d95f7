package commitmanager

import (
	"context"
	"log/slog"
	"time"

	"github.com/jenniferntran/gitlet/pkg/common/logger"
	"github.com/jenniferntran/gitlet/pkg/objects"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
	"github.com/jenniferntran/gitlet/pkg/staging"
	"github.com/jenniferntran/gitlet/pkg/store"
)

// Manager handles the creation of commits and queries over the commit graph.
//
// The commit creation process follows these steps:
//  1. Check the staging area holds something
//  2. Build the snapshot from HEAD and the staged changes
//  3. Create the commit with HEAD as its parent
//  4. Register it and advance the current branch
//  5. Clear the staging area
//
// Manager works on a loaded ObjectStore; persisting is the caller's job.
//
// Thread Safety:
// Manager is not thread-safe. External synchronization is required when
// accessing a Manager instance from multiple goroutines.
type Manager struct {
	store  *store.ObjectStore
	clock  func() time.Time
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the source of commit times.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// NewManager creates a new commit manager over s.
//
// Example:
//
//	s, _ := disk.Load(ctx)
//	mgr := commitmanager.NewManager(s)
//	c, err := mgr.CreateCommit(ctx, stage, commitmanager.CommitOptions{Message: "fix"})
func NewManager(s *store.ObjectStore, opts ...Option) *Manager {
	m := &Manager{
		store:  s,
		clock:  time.Now,
		logger: logger.With("component", "commitmanager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BuildSnapshot folds stage into head's snapshot: every staged addition not
// also staged for removal, then every head entry neither overridden nor
// staged for removal.
func BuildSnapshot(stage *staging.Area, head *commit.Commit) commit.Snapshot {
	snapshot := make(commit.Snapshot, len(head.Snapshot)+len(stage.Add))

	for path, content := range stage.Add {
		if stage.IsStagedForRemove(path) {
			continue
		}
		snapshot[path] = content
	}

	for path, content := range head.Snapshot {
		if _, set := snapshot[path]; set {
			continue
		}
		if stage.IsStagedForRemove(path) {
			continue
		}
		snapshot[path] = content
	}
	return snapshot
}

// CreateCommit creates a new commit from the staging area.
//
// An empty stage fails with NothingToCommitError before the message is
// looked at. On success the current branch points at the new commit and
// stage is empty.
func (m *Manager) CreateCommit(ctx context.Context, stage *staging.Area, options CommitOptions) (*commit.Commit, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if stage.IsEmpty() {
		return nil, NewNothingToCommitError()
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	head, err := m.store.Head()
	if err != nil {
		return nil, NewCommitError("read head", err, "")
	}

	when := options.When
	if when.IsZero() {
		when = m.clock()
	}

	c, err := commit.NewBuilder().
		Message(options.Message).
		Parent(head.ID).
		Snapshot(BuildSnapshot(stage, head)).
		At(when).
		Build()
	if err != nil {
		return nil, NewCommitError("build commit", err, "")
	}

	m.store.PutCommit(c)
	branch := m.store.CurrentBranch()
	if err := m.store.SetBranch(branch, c.ID); err != nil {
		return nil, NewCommitError("update branch", err, branch)
	}
	stage.Clear()

	m.logger.Debug("commit created", "id", c.ID.Short(), "branch", branch, "files", len(c.Snapshot))
	return c, nil
}

// GetCommit resolves ref, a full id or a unique prefix.
func (m *Manager) GetCommit(ctx context.Context, ref string) (*commit.Commit, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return m.store.ResolveCommit(ref)
}

// GetHistory walks parent links from HEAD back to the root commit. Commits
// come back newest first.
func (m *Manager) GetHistory(ctx context.Context, options HistoryOptions) ([]*commit.Commit, error) {
	current, err := m.store.Head()
	if err != nil {
		return nil, err
	}

	var history []*commit.Commit
	for current != nil {
		if options.Limit > 0 && len(history) >= options.Limit {
			break
		}
		select {
		case <-ctx.Done():
			return history, ctx.Err()
		default:
		}

		history = append(history, current)
		if !current.HasParent() {
			break
		}

		parent, ok := m.store.GetCommit(current.Parent)
		if !ok {
			return history, newBrokenHistoryError(current.ID, current.Parent)
		}
		current = parent
	}
	return history, nil
}

// All returns every commit in the store ordered by id.
func (m *Manager) All() []*commit.Commit {
	return m.store.Commits()
}

// FindByMessage returns the ids of every commit whose message is exactly
// message, ordered by id.
func (m *Manager) FindByMessage(ctx context.Context, message string) ([]objects.ObjectHash, error) {
	var ids []objects.ObjectHash
	for _, c := range m.store.Commits() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.Message == message {
			ids = append(ids, c.ID)
		}
	}

	if len(ids) == 0 {
		return nil, NewNoMatchError(message)
	}
	return ids, nil
}

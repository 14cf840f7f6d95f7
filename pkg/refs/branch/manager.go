package branch

import (
	"fmt"
	"strings"

	"github.com/jenniferntran/gitlet/pkg/objects/commit"
	"github.com/jenniferntran/gitlet/pkg/store"
)

const (
	// DefaultBranch is the default branch name for new repositories
	DefaultBranch = "master"
)

// Manager handles branch creation, deletion, listing and the lookups a
// branch checkout needs. It works on a loaded ObjectStore; persisting the
// result is the caller's job.
//
// Manager is not thread-safe.
type Manager struct {
	store *store.ObjectStore
}

// NewManager creates a branch manager over s.
func NewManager(s *store.ObjectStore) *Manager {
	return &Manager{store: s}
}

// Create adds a branch named name pointing at the current head commit. The
// current branch does not change.
func (m *Manager) Create(name string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	if m.store.HasBranch(name) {
		return NewAlreadyExistsError(name)
	}
	if other, ok := m.nestingConflict(name); ok {
		return NewInvalidNameError(name, fmt.Errorf("conflicts with branch '%s'", other))
	}

	head, err := m.store.Head()
	if err != nil {
		return err
	}
	return m.store.SetBranch(name, head.ID)
}

// nestingConflict finds a branch that cannot live next to name under
// refs/heads: "a" and "a/b" would need "a" to be both a file and a directory.
func (m *Manager) nestingConflict(name string) (string, bool) {
	for _, other := range m.store.BranchNames() {
		if strings.HasPrefix(other, name+"/") || strings.HasPrefix(name, other+"/") {
			return other, true
		}
	}
	return "", false
}

// Delete removes the pointer name. The commits it referenced stay in the
// store.
func (m *Manager) Delete(name string) error {
	if !m.store.HasBranch(name) {
		return NewNotFoundError(name, OpDelete)
	}
	if name == m.store.CurrentBranch() {
		return NewIsCurrentError(name)
	}
	m.store.RemoveBranch(name)
	return nil
}

// Current returns the name of the checked out branch.
func (m *Manager) Current() string {
	return m.store.CurrentBranch()
}

// List returns every branch sorted by name.
func (m *Manager) List() []BranchInfo {
	current := m.store.CurrentBranch()
	names := m.store.BranchNames()

	infos := make([]BranchInfo, 0, len(names))
	for _, name := range names {
		id, _ := m.store.Branch(name)
		info := BranchInfo{
			Name:            name,
			SHA:             id,
			IsCurrentBranch: name == current,
		}
		if c, ok := m.store.GetCommit(id); ok {
			info.LastCommitMessage = c.Message
			info.LastCommitDate = c.Timestamp
		}
		infos = append(infos, info)
	}
	return infos
}

// CheckoutTarget returns the head commit of the branch name is about to
// switch to. It fails when name is unknown or already checked out.
func (m *Manager) CheckoutTarget(name string) (*commit.Commit, error) {
	id, ok := m.store.Branch(name)
	if !ok {
		return nil, NewNotFoundError(name, OpCheckout)
	}
	if name == m.store.CurrentBranch() {
		return nil, NewAlreadyOnBranchError(name)
	}

	c, ok := m.store.GetCommit(id)
	if !ok {
		return nil, store.NewCommitNotFoundError(id.String())
	}
	return c, nil
}

// Switch makes name the current branch.
func (m *Manager) Switch(name string) error {
	if !m.store.HasBranch(name) {
		return NewNotFoundError(name, OpCheckout)
	}
	return m.store.SetCurrentBranch(name)
}

package store

import (
	"sort"
	"strings"

	"github.com/jenniferntran/gitlet/pkg/objects"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
)

// ObjectStore is the in-memory view of a repository's persisted state: every
// commit ever made, the branch pointers and the current branch.
//
// It records which entries changed since it was loaded so that Disk.Save
// only writes what is new. Commits are append-only; a branch always points at
// a commit the store holds.
type ObjectStore struct {
	commits  map[objects.ObjectHash]*commit.Commit
	branches map[string]objects.ObjectHash
	current  string

	newCommits      []objects.ObjectHash
	changedBranches map[string]struct{}
	removedBranches map[string]struct{}
	headChanged     bool
}

// New returns an empty store.
func New() *ObjectStore {
	return &ObjectStore{
		commits:         make(map[objects.ObjectHash]*commit.Commit),
		branches:        make(map[string]objects.ObjectHash),
		changedBranches: make(map[string]struct{}),
		removedBranches: make(map[string]struct{}),
	}
}

// PutCommit registers c. A commit with the same id is already identical, so
// re-registering it changes nothing.
func (s *ObjectStore) PutCommit(c *commit.Commit) {
	if _, ok := s.commits[c.ID]; ok {
		return
	}
	s.commits[c.ID] = c
	s.newCommits = append(s.newCommits, c.ID)
}

// GetCommit returns the commit with the exact id.
func (s *ObjectStore) GetCommit(id objects.ObjectHash) (*commit.Commit, bool) {
	c, ok := s.commits[id]
	return c, ok
}

// HasCommit reports whether id is known.
func (s *ObjectStore) HasCommit(id objects.ObjectHash) bool {
	_, ok := s.commits[id]
	return ok
}

// ResolveCommit finds the commit whose id is ref or starts with ref. A
// prefix shared by several commits resolves to nothing.
func (s *ObjectStore) ResolveCommit(ref string) (*commit.Commit, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" || len(ref) > objects.HashLength {
		return nil, NewCommitNotFoundError(ref)
	}
	if c, ok := s.commits[objects.ObjectHash(ref)]; ok {
		return c, nil
	}

	var match *commit.Commit
	for id, c := range s.commits {
		if !id.HasPrefix(ref) {
			continue
		}
		if match != nil {
			return nil, NewAmbiguousCommitError(ref)
		}
		match = c
	}
	if match == nil {
		return nil, NewCommitNotFoundError(ref)
	}
	return match, nil
}

// Commits returns every commit ordered by id.
func (s *ObjectStore) Commits() []*commit.Commit {
	out := make([]*commit.Commit, 0, len(s.commits))
	for _, c := range s.commits {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CommitCount returns the number of known commits.
func (s *ObjectStore) CommitCount() int {
	return len(s.commits)
}

// SetBranch points name at id, creating the branch if needed.
func (s *ObjectStore) SetBranch(name string, id objects.ObjectHash) error {
	if !s.HasCommit(id) {
		return NewCommitNotFoundError(id.String())
	}
	s.branches[name] = id
	s.changedBranches[name] = struct{}{}
	delete(s.removedBranches, name)
	return nil
}

// RemoveBranch drops the pointer name and reports whether it existed. The
// commits it referenced stay in the store.
func (s *ObjectStore) RemoveBranch(name string) bool {
	if _, ok := s.branches[name]; !ok {
		return false
	}
	delete(s.branches, name)
	delete(s.changedBranches, name)
	s.removedBranches[name] = struct{}{}
	return true
}

// Branch returns the commit id name points at.
func (s *ObjectStore) Branch(name string) (objects.ObjectHash, bool) {
	id, ok := s.branches[name]
	return id, ok
}

// HasBranch reports whether name is a branch.
func (s *ObjectStore) HasBranch(name string) bool {
	_, ok := s.branches[name]
	return ok
}

// Branches returns a copy of the branch mapping.
func (s *ObjectStore) Branches() map[string]objects.ObjectHash {
	out := make(map[string]objects.ObjectHash, len(s.branches))
	for name, id := range s.branches {
		out[name] = id
	}
	return out
}

// BranchNames returns the branch names sorted.
func (s *ObjectStore) BranchNames() []string {
	names := make([]string, 0, len(s.branches))
	for name := range s.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrentBranch makes name the active branch. It must already exist.
func (s *ObjectStore) SetCurrentBranch(name string) error {
	if !s.HasBranch(name) {
		return NewBranchNotFoundError(name)
	}
	if s.current != name {
		s.current = name
		s.headChanged = true
	}
	return nil
}

// CurrentBranch returns the active branch name.
func (s *ObjectStore) CurrentBranch() string {
	return s.current
}

// Head resolves the current branch to its commit.
func (s *ObjectStore) Head() (*commit.Commit, error) {
	id, ok := s.branches[s.current]
	if !ok {
		return nil, NewHeadNotFoundError(s.current, "")
	}
	c, ok := s.commits[id]
	if !ok {
		return nil, NewHeadNotFoundError(s.current, id)
	}
	return c, nil
}

// Validate checks that the current branch and every branch pointer resolve.
func (s *ObjectStore) Validate() error {
	if _, err := s.Head(); err != nil {
		return err
	}
	for _, name := range s.BranchNames() {
		if !s.HasCommit(s.branches[name]) {
			return NewDanglingBranchError(name, s.branches[name])
		}
	}
	return nil
}

// IsDirty reports whether anything changed since the store was loaded or
// last saved.
func (s *ObjectStore) IsDirty() bool {
	return len(s.newCommits) > 0 || len(s.changedBranches) > 0 ||
		len(s.removedBranches) > 0 || s.headChanged
}

func (s *ObjectStore) markClean() {
	s.newCommits = nil
	s.changedBranches = make(map[string]struct{})
	s.removedBranches = make(map[string]struct{})
	s.headChanged = false
}

// load registers c as already persisted.
func (s *ObjectStore) load(c *commit.Commit) {
	s.commits[c.ID] = c
}

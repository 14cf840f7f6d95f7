package commit

import (
	"errors"
	"fmt"
	"time"

	"github.com/jenniferntran/gitlet/pkg/objects"
)

// Builder assembles a Commit and derives its id.
//
//	c, err := commit.NewBuilder().
//	    Message("add notes").
//	    Parent(head.ID).
//	    Snapshot(files).
//	    At(time.Now()).
//	    Build()
type Builder struct {
	commit *Commit
	errs   []error
}

// NewBuilder creates a Builder with an empty snapshot.
func NewBuilder() *Builder {
	return &Builder{
		commit: &Commit{Snapshot: Snapshot{}},
	}
}

// Message sets the commit message.
func (b *Builder) Message(message string) *Builder {
	b.commit.Message = message
	return b
}

// Parent sets the parent id. A zero hash means no parent.
func (b *Builder) Parent(parent objects.ObjectHash) *Builder {
	if !parent.IsZero() {
		if err := parent.Validate(); err != nil {
			b.errs = append(b.errs, fmt.Errorf("invalid parent: %w", err))
			return b
		}
	}
	b.commit.Parent = parent
	return b
}

// Snapshot sets the tracked files. The map is copied.
func (b *Builder) Snapshot(s Snapshot) *Builder {
	b.commit.Snapshot = s.Clone()
	return b
}

// At stamps the commit with t.
func (b *Builder) At(t time.Time) *Builder {
	b.commit.Timestamp = FormatTimestamp(t)
	return b
}

// Timestamp stamps the commit with an already formatted date.
func (b *Builder) Timestamp(ts string) *Builder {
	b.commit.Timestamp = ts
	return b
}

// Build validates the fields and computes the id.
func (b *Builder) Build() (*Commit, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("commit builder: %w", errors.Join(b.errs...))
	}
	if b.commit.Timestamp == "" {
		return nil, fmt.Errorf("commit builder: timestamp is required")
	}
	if b.commit.Message == "" && b.commit.HasParent() {
		return nil, fmt.Errorf("commit builder: message is required")
	}

	c := *b.commit
	c.Snapshot = b.commit.Snapshot.Clone()
	c.ID = ComputeID(c.Message, c.Snapshot, c.Parent, c.Timestamp)
	return &c, nil
}

// Initial returns the root commit shared by every new repository: message
// "initial commit", no files, no parent, epoch date.
func Initial() *Commit {
	c, _ := NewBuilder().
		Message(InitialMessage).
		Timestamp(EpochTimestamp).
		Build()
	return c
}

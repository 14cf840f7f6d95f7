package store

import (
	"github.com/jenniferntran/gitlet/pkg/objects"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// CommitStore is durable, content-addressed storage for commit records.
type CommitStore interface {
	// Initialize creates the objects directory under sourceDir if needed.
	Initialize(sourceDir scpath.SourcePath) error

	// WriteCommit stores c under its id. Writing an id that already exists
	// is a no-op.
	WriteCommit(c *commit.Commit) error

	// ReadCommit loads the commit with the given id.
	ReadCommit(id objects.ObjectHash) (*commit.Commit, error)

	// HasCommit reports whether id is stored.
	HasCommit(id objects.ObjectHash) (bool, error)

	// ListIDs returns every stored id.
	ListIDs() ([]objects.ObjectHash, error)
}

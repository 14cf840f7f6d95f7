package commit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jenniferntran/gitlet/pkg/objects"
)

// Snapshot maps a repository-relative path to the full content of that file
// at commit time. Every commit carries the complete set of tracked files.
type Snapshot map[string]string

// Paths returns the tracked paths in sorted order.
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Has reports whether path is tracked.
func (s Snapshot) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Get returns the recorded content for path.
func (s Snapshot) Get(path string) (string, bool) {
	content, ok := s[path]
	return content, ok
}

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for p, c := range s {
		out[p] = c
	}
	return out
}

// writeCanonical writes the snapshot in its canonical form: entries sorted by
// path, each field length-prefixed, so that two snapshots serialize equally
// exactly when they hold the same entries.
func (s Snapshot) writeCanonical(b *strings.Builder) {
	for _, p := range s.Paths() {
		writeField(b, p)
		writeField(b, s[p])
	}
}

// Commit is an immutable snapshot record.
//
// ID is derived from Message, Snapshot, Parent and Timestamp (see ComputeID)
// and is never set independently. Parent is empty only for the initial commit.
type Commit struct {
	ID        objects.ObjectHash `json:"id"`
	Message   string             `json:"message"`
	Timestamp string             `json:"timestamp"`
	Parent    objects.ObjectHash `json:"parent,omitempty"`
	Snapshot  Snapshot           `json:"snapshot"`
}

// HasParent reports whether the commit has a parent.
func (c *Commit) HasParent() bool {
	return !c.Parent.IsZero()
}

// Tracks reports whether path is part of the commit's snapshot.
func (c *Commit) Tracks(path string) bool {
	return c.Snapshot.Has(path)
}

// Verify recomputes the id and compares it with the stored one.
func (c *Commit) Verify() error {
	want := ComputeID(c.Message, c.Snapshot, c.Parent, c.Timestamp)
	if c.ID != want {
		return fmt.Errorf("commit id mismatch: stored %s, computed %s", c.ID, want)
	}
	return nil
}

// String returns a short human-readable description.
func (c *Commit) String() string {
	return fmt.Sprintf("commit %s (%d files): %s", c.ID.Short(), len(c.Snapshot), c.Message)
}

// Serialize encodes the commit as a stored object: "commit <size>\0<json>".
func (c *Commit) Serialize() (objects.SerializedObject, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode commit %s: %w", c.ID, err)
	}
	return objects.NewSerializedObject(objects.CommitType, body), nil
}

// ParseCommit decodes a stored object produced by Serialize and checks that
// its id still matches its content.
func ParseCommit(data objects.SerializedObject) (*Commit, error) {
	objType, body, err := data.Content()
	if err != nil {
		return nil, fmt.Errorf("parse commit: %w", err)
	}
	if objType != objects.CommitType {
		return nil, fmt.Errorf("parse commit: unexpected object type %s", objType)
	}

	var c Commit
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("decode commit: %w", err)
	}
	if c.Snapshot == nil {
		c.Snapshot = Snapshot{}
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ComputeID hashes message, canonical snapshot, parent id ("" when none) and
// timestamp, in that order, each length-prefixed.
func ComputeID(message string, snapshot Snapshot, parent objects.ObjectHash, timestamp string) objects.ObjectHash {
	var b strings.Builder
	writeField(&b, message)
	snapshot.writeCanonical(&b)
	writeField(&b, parent.String())
	writeField(&b, timestamp)
	return objects.NewObjectHash([]byte(b.String()))
}

func writeField(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

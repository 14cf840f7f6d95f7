package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/jenniferntran/gitlet/pkg/common/fileops"
	"github.com/jenniferntran/gitlet/pkg/objects"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// FileCommitStore keeps each commit in its own compressed, read-only file.
//
// A commit is serialized as "commit <size>\0<json>", compressed with DEFLATE
// and written to a path fanned out by the first two characters of its id:
//
//	.gitlet/objects/
//	├─ ab/
//	│  └─ cdef1234567890abcdef1234567890abcdef12
//	└─ ...
type FileCommitStore struct {
	objectsPath scpath.SourcePath
}

var _ CommitStore = (*FileCommitStore)(nil)

// NewFileCommitStore creates an uninitialized FileCommitStore.
func NewFileCommitStore() *FileCommitStore {
	return &FileCommitStore{}
}

// Initialize sets the objects directory and creates it.
func (s *FileCommitStore) Initialize(sourceDir scpath.SourcePath) error {
	s.objectsPath = sourceDir.ObjectsPath()
	if err := fileops.EnsureDir(s.objectsPath.ToAbsolutePath()); err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}
	return nil
}

// WriteCommit compresses and stores c. Existing objects are left untouched.
func (s *FileCommitStore) WriteCommit(c *commit.Commit) error {
	filePath, err := s.validateAndResolvePath(c.ID)
	if err != nil {
		return err
	}

	exists, err := fileops.Exists(filePath.ToAbsolutePath())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	serialized, err := c.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize commit: %w", err)
	}
	compressed, err := serialized.Compress()
	if err != nil {
		return fmt.Errorf("failed to compress commit: %w", err)
	}

	if err := fileops.WriteReadOnly(filePath.ToAbsolutePath(), compressed.Bytes()); err != nil {
		return fmt.Errorf("failed to write object file: %w", err)
	}
	return nil
}

// ReadCommit decompresses and decodes the commit stored under id.
func (s *FileCommitStore) ReadCommit(id objects.ObjectHash) (*commit.Commit, error) {
	filePath, err := s.validateAndResolvePath(id)
	if err != nil {
		return nil, err
	}

	compressed, err := fileops.ReadBytes(filePath.ToAbsolutePath())
	if err != nil {
		return nil, fmt.Errorf("failed to read object file: %w", err)
	}
	if compressed == nil {
		return nil, NewCommitNotFoundError(id.String())
	}

	decompressed, err := objects.CompressedData(compressed).Decompress()
	if err != nil {
		return nil, NewCorruptObjectError(id, err)
	}

	c, err := commit.ParseCommit(objects.SerializedObject(decompressed))
	if err != nil {
		return nil, NewCorruptObjectError(id, err)
	}
	if c.ID != id {
		return nil, NewCorruptObjectError(id, fmt.Errorf("object holds commit %s", c.ID))
	}
	return c, nil
}

// HasCommit reports whether an object file exists for id.
func (s *FileCommitStore) HasCommit(id objects.ObjectHash) (bool, error) {
	filePath, err := s.validateAndResolvePath(id)
	if err != nil {
		return false, err
	}
	return fileops.Exists(filePath.ToAbsolutePath())
}

// ListIDs walks the fan-out directories and returns every stored id, sorted.
func (s *FileCommitStore) ListIDs() ([]objects.ObjectHash, error) {
	if err := s.ensureInitialized(); err != nil {
		return nil, err
	}

	root := s.objectsPath.String()
	var ids []objects.ObjectHash

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		id := objects.ObjectHash(filepath.Dir(rel) + filepath.Base(rel))
		if id.Validate() != nil {
			return nil
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// IsInitialized checks if the object store has been initialized
func (s *FileCommitStore) IsInitialized() bool {
	return s.objectsPath != ""
}

// ObjectsPath returns the path to the objects directory
func (s *FileCommitStore) ObjectsPath() scpath.SourcePath {
	return s.objectsPath
}

func (s *FileCommitStore) validateAndResolvePath(id objects.ObjectHash) (scpath.SourcePath, error) {
	if err := s.ensureInitialized(); err != nil {
		return "", err
	}
	if err := id.Validate(); err != nil {
		return "", fmt.Errorf("invalid hash: %w", err)
	}
	return s.objectsPath.ObjectFilePath(id.String()), nil
}

func (s *FileCommitStore) ensureInitialized() error {
	if !s.IsInitialized() {
		return fmt.Errorf("object store not initialized")
	}
	return nil
}

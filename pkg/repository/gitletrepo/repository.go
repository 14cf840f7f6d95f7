package gitletrepo

import (
	"fmt"
	"os"

	"github.com/jenniferntran/gitlet/pkg/common/fileops"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
	"github.com/jenniferntran/gitlet/pkg/store"
)

// Repository ties a working directory to its .gitlet metadata.
//
//	<working-directory>/
//	├─ .gitlet/
//	│  ├─ objects/ab/cdef...   compressed commit objects
//	│  ├─ refs/heads/<branch>  branch pointers
//	│  ├─ HEAD                 current branch
//	│  ├─ stage                staging area
//	│  └─ config.yaml          settings
//	├─ file1.txt
//	└─ ...
type Repository struct {
	workingDir scpath.RepositoryPath
	sourceDir  scpath.SourcePath
	disk       *store.Disk
}

func newRepository(path scpath.RepositoryPath) *Repository {
	return &Repository{
		workingDir: path,
		sourceDir:  path.SourcePath(),
		disk:       store.NewDisk(path.SourcePath()),
	}
}

// Initialize creates the .gitlet directory structure at path. It fails with
// AlreadyInitializedError when a non-empty .gitlet directory is present.
// The caller writes the initial commit and branch through Disk.
func Initialize(path scpath.RepositoryPath) (*Repository, error) {
	exists, err := RepositoryExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check if repository exists: %w", err)
	}
	if exists {
		empty, err := fileops.IsEmptyDir(path.SourcePath().ToAbsolutePath())
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", scpath.SourceDir, err)
		}
		if !empty {
			return nil, NewAlreadyInitializedError(path)
		}
	}

	repo := newRepository(path)
	if err := fileops.EnsureDir(repo.sourceDir.ToAbsolutePath()); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}
	if err := repo.disk.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}
	return repo, nil
}

// Open returns the repository whose .gitlet directory sits directly in path.
// Parent directories are not searched.
func Open(path scpath.RepositoryPath) (*Repository, error) {
	exists, err := RepositoryExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check repository existence: %w", err)
	}
	if !exists {
		return nil, NewNotInitializedError(path)
	}
	return newRepository(path), nil
}

// RepositoryExists reports whether path holds a .gitlet directory.
func RepositoryExists(path scpath.RepositoryPath) (bool, error) {
	info, err := os.Stat(path.SourcePath().String())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s directory: %w", scpath.SourceDir, err)
	}
	return info.IsDir(), nil
}

// WorkingDirectory returns the path to the repository's working directory
func (r *Repository) WorkingDirectory() scpath.RepositoryPath {
	return r.workingDir
}

// SourceDirectory returns the path to the .gitlet directory
func (r *Repository) SourceDirectory() scpath.SourcePath {
	return r.sourceDir
}

// Disk returns the persistence layer for commits, branches and HEAD.
func (r *Repository) Disk() *store.Disk {
	return r.disk
}

// StagePath returns the path of the persisted staging area.
func (r *Repository) StagePath() scpath.SourcePath {
	return r.sourceDir.StagePath()
}

// ConfigPath returns the path of the repository configuration file.
func (r *Repository) ConfigPath() scpath.SourcePath {
	return r.sourceDir.ConfigPath()
}

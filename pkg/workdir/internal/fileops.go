package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jenniferntran/gitlet/pkg/common/fileops"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// FileOps performs the low-level writes and deletes of a checkout.
type FileOps struct {
	workDir scpath.RepositoryPath
}

// NewFileOps creates a FileOps rooted at workDir.
func NewFileOps(workDir scpath.RepositoryPath) *FileOps {
	return &FileOps{workDir: workDir}
}

// ApplyOperation executes a single create, modify or delete.
func (f *FileOps) ApplyOperation(op Operation) error {
	switch op.Action {
	case ActionCreate, ActionModify:
		return f.writeFile(op.Path, []byte(op.Content))
	case ActionDelete:
		return f.deleteFile(op.Path)
	default:
		return fmt.Errorf("apply %s: %w: unknown action %v", op.Path, ErrInvalidOperation, op.Action)
	}
}

func (f *FileOps) writeFile(path scpath.RelativePath, data []byte) error {
	fullPath, err := f.workDir.JoinRelative(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fileops.EnsureParentDir(fullPath); err != nil {
		return fmt.Errorf("write %s: create parent directory: %w", path, err)
	}
	if err := fileops.AtomicWrite(fullPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// deleteFile removes a file and any parent directories it leaves empty.
func (f *FileOps) deleteFile(path scpath.RelativePath) error {
	fullPath, err := f.workDir.JoinRelative(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	if _, err := os.Stat(fullPath.String()); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(fullPath.String()); err != nil {
		return fmt.Errorf("delete %s: remove file: %w", path, err)
	}

	_ = f.cleanEmptyParents(fullPath.Dir())
	return nil
}

// cleanEmptyParents removes empty directories up to the working directory root
func (f *FileOps) cleanEmptyParents(dir scpath.AbsolutePath) error {
	root := filepath.Clean(f.workDir.String())
	for {
		current := filepath.Clean(dir.String())
		if current == root || !isWithin(root, current) {
			return nil
		}

		empty, err := fileops.IsEmptyDir(dir)
		if err != nil || !empty {
			return err
		}
		if err := os.Remove(current); err != nil {
			return err
		}
		dir = dir.Dir()
	}
}

// CreateBackup records the current content of path, if any.
func (f *FileOps) CreateBackup(path scpath.RelativePath) (*Backup, error) {
	fullPath, err := f.workDir.JoinRelative(path)
	if err != nil {
		return nil, fmt.Errorf("backup %s: %w", path, err)
	}

	// Anything that is not a readable regular file has no content to restore.
	info, err := os.Stat(fullPath.String())
	if err != nil || !info.Mode().IsRegular() {
		return &Backup{Path: path}, nil
	}

	data, err := os.ReadFile(fullPath.String())
	if err != nil {
		return nil, fmt.Errorf("backup %s: %w", path, err)
	}
	return &Backup{Path: path, Content: data, Existed: true}, nil
}

// RestoreBackup puts path back the way CreateBackup found it.
func (f *FileOps) RestoreBackup(backup *Backup) error {
	if backup == nil {
		return fmt.Errorf("nil backup")
	}
	if !backup.Existed {
		return f.deleteFile(backup.Path)
	}
	if err := f.writeFile(backup.Path, backup.Content); err != nil {
		return fmt.Errorf("restore %s: %w", backup.Path, err)
	}
	return nil
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !filepath.IsAbs(rel) && !startsWithParent(rel)
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

package workdir

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/jenniferntran/gitlet/pkg/common/fileops"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// Dir gives the engine plain-text access to the working directory. Paths are
// repository-relative and slash-separated; nothing inside .gitlet is ever
// listed, read or touched.
type Dir struct {
	root scpath.RepositoryPath
}

// NewDir creates a Dir rooted at root.
func NewDir(root scpath.RepositoryPath) *Dir {
	return &Dir{root: root}
}

// Root returns the working directory path.
func (d *Dir) Root() scpath.RepositoryPath {
	return d.root
}

// Exists reports whether path is a regular file in the working directory.
func (d *Dir) Exists(path string) (bool, error) {
	full, err := d.resolve(path)
	if err != nil {
		return false, nil
	}
	return fileops.IsFile(full)
}

// Read returns the full content of path.
func (d *Dir) Read(path string) (string, error) {
	full, err := d.resolve(path)
	if err != nil {
		return "", NewFileNotFoundError(path)
	}

	ok, err := fileops.IsFile(full)
	if err != nil {
		return "", NewWorkdirError("read", scpath.RelativePath(path), err)
	}
	if !ok {
		return "", NewFileNotFoundError(path)
	}

	data, err := os.ReadFile(full.String())
	if err != nil {
		return "", NewWorkdirError("read", scpath.RelativePath(path), err)
	}
	return string(data), nil
}

// Write replaces path with content, creating parent directories as needed.
func (d *Dir) Write(path, content string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := fileops.EnsureParentDir(full); err != nil {
		return NewWorkdirError("write", scpath.RelativePath(path), err)
	}
	if err := fileops.AtomicWrite(full, []byte(content), 0644); err != nil {
		return NewWorkdirError("write", scpath.RelativePath(path), err)
	}
	return nil
}

// Delete removes the plain file at path. Directories and anything under
// .gitlet are refused. A missing file is not an error.
func (d *Dir) Delete(path string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}

	isDir, err := fileops.IsDirectory(full)
	if err != nil {
		return NewWorkdirError("delete", scpath.RelativePath(path), err)
	}
	if isDir {
		return NewProtectedPathError(path, "is a directory")
	}
	return fileops.SafeRemove(full)
}

// ListPlainFiles returns every regular file under the working directory,
// recursively and sorted, skipping the .gitlet directory.
func (d *Dir) ListPlainFiles() ([]string, error) {
	root := d.root.String()
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != root && entry.Name() == scpath.SourceDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := d.root.RelativeTo(path)
		if err != nil {
			return err
		}
		files = append(files, rel.String())
		return nil
	})
	if err != nil {
		return nil, NewWorkdirError("list", "", err)
	}

	sort.Strings(files)
	return files, nil
}

func (d *Dir) resolve(path string) (scpath.AbsolutePath, error) {
	rel, err := scpath.NewRelativePath(path)
	if err != nil {
		return "", NewWorkdirError("resolve", scpath.RelativePath(path), err)
	}
	if rel.IsInSubdir(scpath.SourceDir) {
		return "", NewProtectedPathError(path, "is inside the repository directory")
	}
	full, err := d.root.JoinRelative(rel)
	if err != nil {
		return "", NewWorkdirError("resolve", rel, err)
	}
	return full, nil
}

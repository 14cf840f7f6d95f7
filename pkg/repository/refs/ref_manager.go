package refs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jenniferntran/gitlet/pkg/common/fileops"
	"github.com/jenniferntran/gitlet/pkg/objects"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

const (
	// SymbolicRefPrefix is the prefix of a HEAD that names a branch
	SymbolicRefPrefix = "ref: "

	// DefaultBranch is the branch a new repository starts on
	DefaultBranch = "master"
)

// RefManager reads and writes branch files and HEAD under .gitlet.
//
//	.gitlet/HEAD              ref: refs/heads/master
//	.gitlet/refs/heads/master e69de29bb2d1d6434b8b29ae775ad8c2e48c5391
type RefManager struct {
	refsPath  scpath.SourcePath
	headsPath scpath.SourcePath
	headPath  scpath.SourcePath
}

// NewRefManager creates a reference manager rooted at sourceDir (the .gitlet directory).
func NewRefManager(sourceDir scpath.SourcePath) *RefManager {
	return &RefManager{
		refsPath:  sourceDir.RefsPath(),
		headsPath: sourceDir.HeadsPath(),
		headPath:  sourceDir.HeadPath(),
	}
}

// Init creates refs/heads and points HEAD at the default branch.
func (rm *RefManager) Init() error {
	if err := fileops.EnsureDir(rm.headsPath.ToAbsolutePath()); err != nil {
		return fmt.Errorf("failed to create refs directory: %w", err)
	}

	ref, err := scpath.NewBranchRef(DefaultBranch)
	if err != nil {
		return err
	}
	return rm.WriteHead(ref)
}

// ReadRef returns the commit id stored in ref.
func (rm *RefManager) ReadRef(ref scpath.RefPath) (objects.ObjectHash, error) {
	fullPath := rm.resolveReferencePath(ref).ToAbsolutePath()

	exists, err := fileops.Exists(fullPath)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", NewRefNotFoundError(ref)
	}

	content, err := fileops.ReadString(fullPath)
	if err != nil {
		return "", fmt.Errorf("error reading ref %s: %w", ref, err)
	}

	hash, err := objects.NewObjectHashFromString(content)
	if err != nil {
		return "", NewInvalidRefError(ref, content, err)
	}
	return hash, nil
}

// UpdateRef points ref at hash, creating the file if needed.
func (rm *RefManager) UpdateRef(ref scpath.RefPath, hash objects.ObjectHash) error {
	if err := hash.Validate(); err != nil {
		return fmt.Errorf("invalid hash: %w", err)
	}

	fullPath := rm.resolveReferencePath(ref).ToAbsolutePath()
	if err := fileops.EnsureParentDir(fullPath); err != nil {
		return fmt.Errorf("failed to create ref directory: %w", err)
	}

	if err := fileops.AtomicWrite(fullPath, []byte(hash.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write ref %s: %w", ref, err)
	}
	return nil
}

// DeleteRef removes ref and reports whether it existed. Directories left
// empty under refs/heads are pruned.
func (rm *RefManager) DeleteRef(ref scpath.RefPath) (bool, error) {
	fullPath := rm.resolveReferencePath(ref).ToAbsolutePath()

	exists, err := fileops.Exists(fullPath)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := fileops.SafeRemove(fullPath); err != nil {
		return false, err
	}
	rm.pruneEmptyParents(fullPath)
	return true, nil
}

// Exists reports whether ref has a file.
func (rm *RefManager) Exists(ref scpath.RefPath) (bool, error) {
	return fileops.Exists(rm.resolveReferencePath(ref).ToAbsolutePath())
}

// ReadHead returns the branch reference HEAD points to.
func (rm *RefManager) ReadHead() (scpath.RefPath, error) {
	content, err := fileops.ReadString(rm.headPath.ToAbsolutePath())
	if err != nil {
		return "", fmt.Errorf("error reading HEAD: %w", err)
	}

	target, ok := strings.CutPrefix(content, SymbolicRefPrefix)
	if !ok {
		return "", NewInvalidRefError(scpath.RefHEAD, content, fmt.Errorf("HEAD is not a symbolic reference"))
	}

	ref := scpath.RefPath(strings.TrimSpace(target))
	if !ref.IsBranch() || !ref.IsValid() {
		return "", NewInvalidRefError(scpath.RefHEAD, content, fmt.Errorf("HEAD does not name a branch"))
	}
	return ref, nil
}

// WriteHead makes ref the current branch.
func (rm *RefManager) WriteHead(ref scpath.RefPath) error {
	content := SymbolicRefPrefix + ref.String() + "\n"
	if err := fileops.AtomicWrite(rm.headPath.ToAbsolutePath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write HEAD: %w", err)
	}
	return nil
}

// ListBranches returns every branch name under refs/heads, sorted.
func (rm *RefManager) ListBranches() ([]string, error) {
	root := rm.headsPath.String()
	var names []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// HeadPath returns the full path to the HEAD file
func (rm *RefManager) HeadPath() scpath.SourcePath {
	return rm.headPath
}

// RefsPath returns the full path to the refs directory
func (rm *RefManager) RefsPath() scpath.SourcePath {
	return rm.refsPath
}

func (rm *RefManager) resolveReferencePath(ref scpath.RefPath) scpath.SourcePath {
	refStr := strings.TrimSpace(ref.String())

	if refStr == scpath.HeadFile {
		return rm.headPath
	}
	if after, ok := strings.CutPrefix(refStr, scpath.RefsDir+"/"); ok {
		return rm.refsPath.Join(filepath.FromSlash(after))
	}
	return rm.refsPath.Join(filepath.FromSlash(refStr))
}

func (rm *RefManager) pruneEmptyParents(path scpath.AbsolutePath) {
	stop := filepath.Clean(rm.headsPath.String())
	dir := path.Dir()
	for filepath.Clean(dir.String()) != stop && strings.HasPrefix(dir.String(), stop) {
		empty, err := fileops.IsEmptyDir(dir)
		if err != nil || !empty {
			return
		}
		if err := os.Remove(dir.String()); err != nil {
			return
		}
		dir = dir.Dir()
	}
}

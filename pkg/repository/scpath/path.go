package scpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RepositoryPath is the absolute path of a working directory that holds a
// .gitlet directory.
// Example: "/home/user/project"
type RepositoryPath string

// SourcePath is a path inside the .gitlet directory.
type SourcePath string

// AbsolutePath is any absolute filesystem path.
type AbsolutePath string

// RelativePath is a normalized, slash-separated path relative to the
// repository root. It never escapes the root.
// Example: "notes/todo.txt"
type RelativePath string

// RefPath names a reference file inside .gitlet.
// Examples: "refs/heads/master", "HEAD"
type RefPath string

// RefHEAD is the reference recording the current branch.
const RefHEAD RefPath = HeadFile

// String returns the path as a string
func (ap AbsolutePath) String() string {
	return string(ap)
}

// Dir returns the parent directory.
func (ap AbsolutePath) Dir() AbsolutePath {
	return AbsolutePath(filepath.Dir(string(ap)))
}

// String returns the reference path as a string
func (rp RefPath) String() string {
	return string(rp)
}

// IsValid rejects reference names that cannot be stored as plain files or
// that would be ambiguous to type on a command line.
func (rp RefPath) IsValid() bool {
	s := string(rp)
	if len(s) == 0 {
		return false
	}

	invalid := []string{" ", "\t", "\n", "~", "^", ":", "?", "*", "[", "\\", "..", "@{", "//"}
	for _, bad := range invalid {
		if strings.Contains(s, bad) {
			return false
		}
	}

	if strings.HasSuffix(s, ".lock") || strings.HasSuffix(s, ".") || strings.HasSuffix(s, "/") {
		return false
	}
	return !strings.HasPrefix(s, ".") && !strings.HasPrefix(s, "/")
}

// IsBranch checks if this is a branch reference
func (rp RefPath) IsBranch() bool {
	return strings.HasPrefix(string(rp), RefsDir+"/"+HeadsDir+"/")
}

// ShortName strips the refs/heads/ prefix: "refs/heads/dev" -> "dev".
func (rp RefPath) ShortName() string {
	return strings.TrimPrefix(string(rp), RefsDir+"/"+HeadsDir+"/")
}

// NewBranchRef creates the reference path for a branch name.
func NewBranchRef(name string) (RefPath, error) {
	if len(name) == 0 {
		return "", fmt.Errorf("branch name cannot be empty")
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("invalid branch name: %s", name)
	}
	refPath := RefPath(RefsDir + "/" + HeadsDir + "/" + name)
	if !refPath.IsValid() {
		return "", fmt.Errorf("invalid branch name: %s", name)
	}
	return refPath, nil
}

package scpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// String returns the path as a string
func (rp RelativePath) String() string {
	return string(rp)
}

// IsValid reports whether the path is non-empty, relative and free of
// parent-directory segments.
func (rp RelativePath) IsValid() bool {
	s := string(rp)
	if len(s) == 0 || s == "." {
		return false
	}
	if filepath.IsAbs(s) || strings.HasPrefix(s, "/") {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(s), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

// Normalize converts to forward slashes and cleans the path.
func (rp RelativePath) Normalize() RelativePath {
	normalized := filepath.ToSlash(filepath.Clean(string(rp)))
	normalized = strings.TrimPrefix(normalized, "./")
	return RelativePath(normalized)
}

// Components returns the slash-separated segments.
func (rp RelativePath) Components() []string {
	normalized := rp.Normalize()
	if normalized == "" || normalized == "." {
		return []string{}
	}
	return strings.Split(string(normalized), "/")
}

// IsInSubdir checks if the path is within the given subdirectory
func (rp RelativePath) IsInSubdir(subdir string) bool {
	normalized := rp.Normalize()
	return strings.HasPrefix(string(normalized), subdir+"/") || string(normalized) == subdir
}

// NewRelativePath normalizes and validates path.
func NewRelativePath(path string) (RelativePath, error) {
	rp := RelativePath(path).Normalize()
	if !rp.IsValid() {
		return "", fmt.Errorf("invalid relative path: %s", path)
	}
	return rp, nil
}

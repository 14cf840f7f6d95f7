package scpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// String returns the path as a string
func (rp RepositoryPath) String() string {
	return string(rp)
}

// IsValid checks if this is a valid absolute path
func (rp RepositoryPath) IsValid() bool {
	return filepath.IsAbs(string(rp))
}

// Join joins path elements to the repository path
func (rp RepositoryPath) Join(elem ...string) AbsolutePath {
	parts := append([]string{string(rp)}, elem...)
	return AbsolutePath(filepath.Join(parts...))
}

// JoinRelative resolves relPath inside the repository, refusing anything
// that would land outside it.
func (rp RepositoryPath) JoinRelative(relPath RelativePath) (AbsolutePath, error) {
	if !relPath.IsValid() {
		return "", fmt.Errorf("invalid relative path: %s", relPath)
	}

	result := AbsolutePath(filepath.Join(string(rp), filepath.FromSlash(string(relPath.Normalize()))))

	relCheck, err := filepath.Rel(string(rp), string(result))
	if err != nil {
		return "", fmt.Errorf("failed to validate path: %w", err)
	}
	if relCheck == "." || relCheck == ".." || strings.HasPrefix(relCheck, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes repository: %s", relPath)
	}

	return result, nil
}

// RelativeTo converts an absolute path under the repository into a RelativePath.
func (rp RepositoryPath) RelativeTo(abs string) (RelativePath, error) {
	rel, err := filepath.Rel(string(rp), abs)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	return NewRelativePath(rel)
}

// SourcePath returns the path to the .gitlet directory
func (rp RepositoryPath) SourcePath() SourcePath {
	return SourcePath(filepath.Join(string(rp), SourceDir))
}

// NewRepositoryPath creates a new RepositoryPath from a string
func NewRepositoryPath(path string) (RepositoryPath, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return RepositoryPath(absPath), nil
}

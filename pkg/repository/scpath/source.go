package scpath

import "path/filepath"

// String returns the path as a string
func (sp SourcePath) String() string {
	return string(sp)
}

// IsValid checks if this is a valid source path
func (sp SourcePath) IsValid() bool {
	return len(sp) > 0
}

// Join joins path elements to the source path
func (sp SourcePath) Join(elem ...string) SourcePath {
	parts := append([]string{string(sp)}, elem...)
	return SourcePath(filepath.Join(parts...))
}

// ToAbsolutePath converts to an absolute path
func (sp SourcePath) ToAbsolutePath() AbsolutePath {
	return AbsolutePath(sp)
}

// ObjectsPath returns the path to the objects directory
func (sp SourcePath) ObjectsPath() SourcePath {
	return sp.Join(ObjectsDir)
}

// RefsPath returns the path to the refs directory
func (sp SourcePath) RefsPath() SourcePath {
	return sp.Join(RefsDir)
}

// HeadsPath returns the directory holding one file per branch
func (sp SourcePath) HeadsPath() SourcePath {
	return sp.Join(RefsDir, HeadsDir)
}

// HeadPath returns the path to the HEAD file
func (sp SourcePath) HeadPath() SourcePath {
	return sp.Join(HeadFile)
}

// StagePath returns the path to the persisted staging area
func (sp SourcePath) StagePath() SourcePath {
	return sp.Join(StageFile)
}

// ConfigPath returns the path to the config file
func (sp SourcePath) ConfigPath() SourcePath {
	return sp.Join(ConfigFile)
}

// ObjectFilePath returns the fanned-out path of an object file.
// Example: hash "abcdef..." returns ".gitlet/objects/ab/cdef..."
func (sp SourcePath) ObjectFilePath(hash string) SourcePath {
	if len(hash) != 40 {
		return ""
	}
	return sp.Join(hash[:2], hash[2:])
}

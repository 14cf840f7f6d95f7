package staging

import (
	"fmt"

	"github.com/jenniferntran/gitlet/pkg/common/err"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

const pkgName = "staging"

// CodeCorrupt marks a stage file that cannot be decoded.
const CodeCorrupt = "STAGE_CORRUPT"

// CorruptStageError indicates the persisted staging area is unreadable.
type CorruptStageError struct {
	baseError *err.Error
	Path      scpath.SourcePath
}

// NewCorruptStageError wraps a decode failure for the stage file at path.
func NewCorruptStageError(path scpath.SourcePath, cause error) error {
	return &CorruptStageError{
		baseError: err.New(pkgName, CodeCorrupt, "read",
			fmt.Sprintf("stage file %s is corrupt", path), cause),
		Path: path,
	}
}

// Error implements the error interface
func (e *CorruptStageError) Error() string { return e.baseError.Error() }

// Unwrap returns the underlying error
func (e *CorruptStageError) Unwrap() error { return e.baseError }

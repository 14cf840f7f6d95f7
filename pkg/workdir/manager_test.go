package workdir

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackedPaths(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func snapshotOf(t *testing.T, d *Dir) map[string]string {
	t.Helper()
	files, err := d.ListPlainFiles()
	require.NoError(t, err)
	out := make(map[string]string, len(files))
	for _, f := range files {
		content, err := d.Read(f)
		require.NoError(t, err)
		out[f] = content
	}
	return out
}

func TestManager_UpdateToSnapshot(t *testing.T) {
	d := setupDir(t, map[string]string{
		"a.txt":       "old a",
		"gone.txt":    "tracked, not in target",
		"scratch.txt": "untracked",
	})
	m := NewManager(d)

	result, err := m.UpdateToSnapshot(context.Background(),
		map[string]string{"a.txt": "new a", "dir/b.txt": "b"},
		trackedPaths("a.txt", "gone.txt"))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"a.txt":       "new a",
		"dir/b.txt":   "b",
		"scratch.txt": "untracked",
	}, snapshotOf(t, d))

	assert.Equal(t, 3, result.FilesChanged)
	assert.Equal(t, ChangeSummary{Created: 1, Modified: 1, Deleted: 1}, result.Summary)
	require.Len(t, result.Operations, 3)
	assert.Equal(t, ActionDelete, result.Operations[2].Action)
}

func TestManager_UntrackedConflictLeavesEverythingUntouched(t *testing.T) {
	files := map[string]string{
		"a.txt":     "tracked",
		"x.txt":     "untracked work",
		"other.txt": "tracked too",
	}
	d := setupDir(t, files)
	m := NewManager(d)

	_, err := m.UpdateToSnapshot(context.Background(),
		map[string]string{"a.txt": "replaced", "x.txt": "from target"},
		trackedPaths("a.txt", "other.txt"))

	var conflict *UntrackedFileConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []string{"x.txt"}, conflict.Paths)
	assert.Equal(t, "There is an untracked file in the way; delete it or add it first.", conflict.UserMessage())

	assert.Equal(t, files, snapshotOf(t, d))
}

func TestManager_FailedWriteRollsBack(t *testing.T) {
	d := setupDir(t, map[string]string{"a.txt": "original", "blocker": "file"})
	m := NewManager(d)

	_, err := m.UpdateToSnapshot(context.Background(),
		map[string]string{"a.txt": "changed", "blocker/inner.txt": "x"},
		trackedPaths("a.txt", "blocker"))

	var txErr *TransactionError
	require.True(t, errors.As(err, &txErr))

	content, readErr := os.ReadFile(filepath.Join(d.Root().String(), "a.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(content))
}

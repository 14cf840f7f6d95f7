package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// =====================================================
// Test helpers
// =====================================================

func setupWorkDir(t *testing.T, files map[string]string) scpath.RepositoryPath {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return scpath.RepositoryPath(dir)
}

func readFile(t *testing.T, root scpath.RepositoryPath, name string) (string, bool) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root.String(), filepath.FromSlash(name)))
	if os.IsNotExist(err) {
		return "", false
	}
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data), true
}

func trackedSet(paths ...scpath.RelativePath) TrackedFunc {
	set := make(map[scpath.RelativePath]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p scpath.RelativePath) bool { return set[p] }
}

// =====================================================
// Analyzer
// =====================================================

func TestAnalyzeChanges(t *testing.T) {
	present := []scpath.RelativePath{"keep.txt", "old.txt", "notes.txt"}
	tracked := trackedSet("keep.txt", "old.txt")
	target := FileMap{"keep.txt": "k2", "new.txt": "n"}

	analysis := NewAnalyzer().AnalyzeChanges(present, tracked, target)

	want := []Operation{
		{Path: "keep.txt", Action: ActionModify, Content: "k2"},
		{Path: "new.txt", Action: ActionCreate, Content: "n"},
		{Path: "old.txt", Action: ActionDelete},
	}
	if !reflect.DeepEqual(analysis.Operations, want) {
		t.Errorf("Operations = %+v, want %+v", analysis.Operations, want)
	}

	wantSummary := ChangeSummary{Created: 1, Modified: 1, Deleted: 1}
	if analysis.Summary != wantSummary {
		t.Errorf("Summary = %+v, want %+v", analysis.Summary, wantSummary)
	}
	if analysis.Summary.Total() != 3 {
		t.Errorf("Total = %d, want 3", analysis.Summary.Total())
	}
}

func TestAnalyzeChanges_UntrackedNeverDeleted(t *testing.T) {
	analysis := NewAnalyzer().AnalyzeChanges(
		[]scpath.RelativePath{"scratch.txt"},
		trackedSet(),
		FileMap{},
	)
	if len(analysis.Operations) != 0 {
		t.Errorf("expected no operations, got %+v", analysis.Operations)
	}
}

// =====================================================
// Validator
// =====================================================

func TestFindUntrackedConflicts(t *testing.T) {
	present := []scpath.RelativePath{"z.txt", "a.txt", "tracked.txt", "unrelated.txt"}
	tracked := trackedSet("tracked.txt")
	target := FileMap{"a.txt": "", "z.txt": "", "tracked.txt": ""}

	got := NewValidator().FindUntrackedConflicts(present, tracked, target)
	want := []scpath.RelativePath{"a.txt", "z.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("conflicts = %v, want %v", got, want)
	}
}

func TestValidateOperations(t *testing.T) {
	tests := []struct {
		name    string
		ops     []Operation
		wantErr bool
	}{
		{"valid", []Operation{{Path: "a.txt", Action: ActionCreate}, {Path: "b.txt", Action: ActionDelete}}, false},
		{"empty path", []Operation{{Path: "", Action: ActionCreate}}, true},
		{"escaping path", []Operation{{Path: "../x", Action: ActionCreate}}, true},
		{"bad action", []Operation{{Path: "a.txt", Action: ActionType(9)}}, true},
		{"duplicate", []Operation{{Path: "a.txt", Action: ActionCreate}, {Path: "a.txt", Action: ActionDelete}}, true},
		{"repository dir", []Operation{{Path: ".gitlet/HEAD", Action: ActionDelete}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidator().ValidateOperations(tt.ops)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOperations() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidOperation) {
				t.Errorf("error %v does not wrap ErrInvalidOperation", err)
			}
		})
	}
}

// =====================================================
// FileOps
// =====================================================

func TestFileOps_WriteAndDelete(t *testing.T) {
	root := setupWorkDir(t, nil)
	ops := NewFileOps(root)

	if err := ops.ApplyOperation(Operation{Path: "dir/sub/a.txt", Action: ActionCreate, Content: "hello"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got, ok := readFile(t, root, "dir/sub/a.txt"); !ok || got != "hello" {
		t.Errorf("content = %q, %v", got, ok)
	}

	if err := ops.ApplyOperation(Operation{Path: "dir/sub/a.txt", Action: ActionDelete}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root.String(), "dir")); !os.IsNotExist(err) {
		t.Error("empty parent directories were not removed")
	}

	if err := ops.ApplyOperation(Operation{Path: "missing.txt", Action: ActionDelete}); err != nil {
		t.Errorf("deleting a missing file should succeed: %v", err)
	}
}

func TestFileOps_BackupRestore(t *testing.T) {
	root := setupWorkDir(t, map[string]string{"a.txt": "original"})
	ops := NewFileOps(root)

	existing, err := ops.CreateBackup("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	absent, err := ops.CreateBackup("b.txt")
	if err != nil {
		t.Fatal(err)
	}

	_ = ops.ApplyOperation(Operation{Path: "a.txt", Action: ActionModify, Content: "changed"})
	_ = ops.ApplyOperation(Operation{Path: "b.txt", Action: ActionCreate, Content: "new"})

	if err := ops.RestoreBackup(existing); err != nil {
		t.Fatal(err)
	}
	if err := ops.RestoreBackup(absent); err != nil {
		t.Fatal(err)
	}

	if got, _ := readFile(t, root, "a.txt"); got != "original" {
		t.Errorf("a.txt = %q, want original", got)
	}
	if _, ok := readFile(t, root, "b.txt"); ok {
		t.Error("b.txt should have been removed")
	}
}

// =====================================================
// Transactions
// =====================================================

func newTestManager(root scpath.RepositoryPath) *Manager {
	return NewManager(NewFileOps(root), NewValidator())
}

func TestExecuteAtomically(t *testing.T) {
	root := setupWorkDir(t, map[string]string{"a.txt": "1", "b.txt": "2"})
	ops := []Operation{
		{Path: "a.txt", Action: ActionModify, Content: "one"},
		{Path: "c.txt", Action: ActionCreate, Content: "three"},
		{Path: "b.txt", Action: ActionDelete},
	}

	result := newTestManager(root).ExecuteAtomically(context.Background(), ops)
	if !result.Success || result.Err != nil {
		t.Fatalf("transaction failed: %v", result.Err)
	}
	if result.OperationsApplied != 3 || result.TotalOperations != 3 {
		t.Errorf("applied %d of %d", result.OperationsApplied, result.TotalOperations)
	}

	if got, _ := readFile(t, root, "a.txt"); got != "one" {
		t.Errorf("a.txt = %q", got)
	}
	if got, _ := readFile(t, root, "c.txt"); got != "three" {
		t.Errorf("c.txt = %q", got)
	}
	if _, ok := readFile(t, root, "b.txt"); ok {
		t.Error("b.txt should be deleted")
	}
}

func TestExecuteAtomically_RollsBackOnFailure(t *testing.T) {
	root := setupWorkDir(t, map[string]string{"a.txt": "1", "blocker": "file, not a directory"})
	ops := []Operation{
		{Path: "a.txt", Action: ActionModify, Content: "changed"},
		{Path: "new.txt", Action: ActionCreate, Content: "n"},
		{Path: "blocker/inner.txt", Action: ActionCreate, Content: "x"},
	}

	result := newTestManager(root).ExecuteAtomically(context.Background(), ops)
	if result.Success || result.Err == nil {
		t.Fatal("expected transaction to fail")
	}
	if result.OperationsApplied != 2 {
		t.Errorf("OperationsApplied = %d, want 2", result.OperationsApplied)
	}

	if got, _ := readFile(t, root, "a.txt"); got != "1" {
		t.Errorf("a.txt = %q, want rollback to 1", got)
	}
	if _, ok := readFile(t, root, "new.txt"); ok {
		t.Error("new.txt should have been rolled back")
	}
}

func TestExecuteAtomically_Invalid(t *testing.T) {
	root := setupWorkDir(t, nil)
	result := newTestManager(root).ExecuteAtomically(context.Background(), []Operation{{Path: "", Action: ActionCreate}})
	if result.Success || !errors.Is(result.Err, ErrInvalidOperation) {
		t.Errorf("expected invalid operation error, got %v", result.Err)
	}
}

func TestExecuteAtomically_Cancelled(t *testing.T) {
	root := setupWorkDir(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newTestManager(root).ExecuteAtomically(ctx, []Operation{{Path: "a.txt", Action: ActionCreate, Content: "x"}})
	if result.Success || !errors.Is(result.Err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", result.Err)
	}
	if _, ok := readFile(t, root, "a.txt"); ok {
		t.Error("no operation should run after cancellation")
	}
}

func TestExecuteAtomically_Empty(t *testing.T) {
	result := newTestManager(setupWorkDir(t, nil)).ExecuteAtomically(context.Background(), nil)
	if !result.Success || result.TotalOperations != 0 {
		t.Errorf("unexpected result %+v", result)
	}
}

package fileops

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

func TestAtomicWrite_Success(t *testing.T) {
	tmpDir := t.TempDir()
	targetPath := filepath.Join(tmpDir, "stage")

	if err := AtomicWrite(scpath.AbsolutePath(targetPath), []byte(`{"add":{}}`), 0644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	content, err := os.ReadFile(targetPath)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(content) != `{"add":{}}` {
		t.Errorf("content = %q", content)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(targetPath)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0644 {
			t.Errorf("mode = %v, want 0644", info.Mode().Perm())
		}
	}
}

func TestAtomicWrite_OverwriteExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	targetPath := filepath.Join(tmpDir, "HEAD")
	if err := os.WriteFile(targetPath, []byte("ref: refs/heads/master\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWrite(scpath.AbsolutePath(targetPath), []byte("ref: refs/heads/dev\n"), 0644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	content, _ := os.ReadFile(targetPath)
	if string(content) != "ref: refs/heads/dev\n" {
		t.Errorf("content = %q", content)
	}
}

func TestAtomicWrite_InvalidDirectory(t *testing.T) {
	target := scpath.AbsolutePath(filepath.Join(t.TempDir(), "missing", "file"))
	if err := AtomicWrite(target, []byte("x"), 0644); err == nil {
		t.Fatal("expected error when the parent directory does not exist")
	}
}

func TestAtomicWrite_NoTempFileLeftBehind(t *testing.T) {
	tmpDir := t.TempDir()
	target := scpath.AbsolutePath(filepath.Join(tmpDir, "config.yaml"))

	for i := 0; i < 3; i++ {
		if err := AtomicWrite(target, []byte("log:\n  level: warn\n"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.yaml" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected directory entries: %v", names)
	}
}

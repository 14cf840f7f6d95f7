package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "a.txt")
	if err := os.WriteFile(file, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"existing dir", tmpDir, true},
		{"missing", filepath.Join(tmpDir, "nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Exists(scpath.AbsolutePath(tt.path))
			if err != nil {
				t.Fatalf("Exists: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestEnsureParentDir(t *testing.T) {
	target := scpath.AbsolutePath(filepath.Join(t.TempDir(), "refs", "heads", "master"))
	if err := EnsureParentDir(target); err != nil {
		t.Fatalf("EnsureParentDir: %v", err)
	}
	isDir, err := IsDirectory(scpath.AbsolutePath(filepath.Dir(target.String())))
	if err != nil || !isDir {
		t.Errorf("parent directory not created: %v", err)
	}
}

func TestReadStringMissingFile(t *testing.T) {
	got, err := ReadString(scpath.AbsolutePath(filepath.Join(t.TempDir(), "HEAD")))
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "" {
		t.Errorf("ReadString = %q, want empty", got)
	}
}

func TestReadStringTrims(t *testing.T) {
	p := filepath.Join(t.TempDir(), "master")
	if err := os.WriteFile(p, []byte("  abc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadString(scpath.AbsolutePath(p))
	if err != nil || got != "abc" {
		t.Errorf("ReadString = %q, %v", got, err)
	}
}

func TestWriteReadOnly(t *testing.T) {
	p := scpath.AbsolutePath(filepath.Join(t.TempDir(), "objects", "ab", "cdef"))
	if err := WriteReadOnly(p, []byte("data")); err != nil {
		t.Fatalf("WriteReadOnly: %v", err)
	}
	info, err := os.Stat(p.String())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0444 {
		t.Errorf("mode = %v, want 0444", info.Mode().Perm())
	}
}

func TestSafeRemove(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gone.txt")
	if err := SafeRemove(scpath.AbsolutePath(p)); err != nil {
		t.Errorf("removing a missing file should succeed: %v", err)
	}

	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SafeRemove(scpath.AbsolutePath(p)); err != nil {
		t.Fatalf("SafeRemove: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("file should be gone")
	}
}

func TestIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if ok, _ := IsFile(scpath.AbsolutePath(file)); !ok {
		t.Error("expected regular file")
	}
	if ok, _ := IsFile(scpath.AbsolutePath(tmpDir)); ok {
		t.Error("directory is not a regular file")
	}
	if ok, _ := IsFile(scpath.AbsolutePath(filepath.Join(tmpDir, "nope"))); ok {
		t.Error("missing path is not a file")
	}
}

func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()

	empty, err := IsEmptyDir(scpath.AbsolutePath(dir))
	if err != nil || !empty {
		t.Fatalf("fresh dir should be empty: %v %v", empty, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "x"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	empty, err = IsEmptyDir(scpath.AbsolutePath(dir))
	if err != nil || empty {
		t.Errorf("dir with a file should not be empty: %v %v", empty, err)
	}
}

package scpath

import (
	"path/filepath"
	"testing"
)

func TestRepositoryPath_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		path  RepositoryPath
		valid bool
	}{
		{"absolute", RepositoryPath(filepath.Join(string(filepath.Separator), "home", "u", "repo")), true},
		{"relative", RepositoryPath("relative/path"), false},
		{"empty", RepositoryPath(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v for %q", got, tt.valid, tt.path)
			}
		})
	}
}

func TestSourceLayout(t *testing.T) {
	root := RepositoryPath(filepath.Join(string(filepath.Separator), "work"))
	sp := root.SourcePath()

	if want := filepath.Join(string(root), ".gitlet"); sp.String() != want {
		t.Errorf("SourcePath() = %s, want %s", sp, want)
	}
	if want := filepath.Join(sp.String(), "refs", "heads"); sp.HeadsPath().String() != want {
		t.Errorf("HeadsPath() = %s, want %s", sp.HeadsPath(), want)
	}
	if want := filepath.Join(sp.String(), "stage"); sp.StagePath().String() != want {
		t.Errorf("StagePath() = %s, want %s", sp.StagePath(), want)
	}

	hash := "abcdef1234567890abcdef1234567890abcdef12"
	want := filepath.Join(sp.String(), "objects", "ab", hash[2:])
	if got := sp.ObjectsPath().ObjectFilePath(hash); got.String() != want {
		t.Errorf("ObjectFilePath() = %s, want %s", got, want)
	}
	if got := sp.ObjectFilePath("short"); got != "" {
		t.Errorf("ObjectFilePath(short) = %q, want empty", got)
	}
}

func TestNewRelativePath(t *testing.T) {
	tests := []struct {
		in      string
		want    RelativePath
		wantErr bool
	}{
		{"a.txt", "a.txt", false},
		{"./notes/todo.txt", "notes/todo.txt", false},
		{"dir/../b.txt", "b.txt", false},
		{"../outside.txt", "", true},
		{"/etc/passwd", "", true},
		{"", "", true},
		{".", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewRelativePath(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRelativePath(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewRelativePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinRelative(t *testing.T) {
	root := RepositoryPath(t.TempDir())

	got, err := root.JoinRelative("notes/a.txt")
	if err != nil {
		t.Fatalf("JoinRelative: %v", err)
	}
	if want := filepath.Join(string(root), "notes", "a.txt"); got.String() != want {
		t.Errorf("JoinRelative() = %s, want %s", got, want)
	}

	if _, err := root.JoinRelative("../escape"); err == nil {
		t.Error("expected error for a path escaping the repository")
	}
}

func TestNewBranchRef(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"master", false},
		{"feature/login", false},
		{"", true},
		{"-rf", true},
		{"has space", true},
		{"a..b", true},
		{"x.lock", true},
		{".hidden", true},
		{"trailing/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := NewBranchRef(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBranchRef(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil {
				if !ref.IsBranch() || ref.ShortName() != tt.name {
					t.Errorf("ref %q does not round to branch %q", ref, tt.name)
				}
			}
		})
	}
}

package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFSKind(t *testing.T) {
	root := t.TempDir()
	filePath := filepath.Join(root, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFS()
	tests := []struct {
		name string
		path string
		want PathKind
	}{
		{"directory", root, PathDir},
		{"regular file", filePath, PathFile},
		{"missing", filepath.Join(root, "nope"), PathMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fs.Kind(tt.path); got != tt.want {
				t.Errorf("Kind(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOSFSMkdirIsSingleLevel(t *testing.T) {
	root := t.TempDir()
	fs := NewOSFS()

	if err := fs.Mkdir(filepath.Join(root, "one")); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}

	// No implicit ancestor creation.
	if err := fs.Mkdir(filepath.Join(root, "a", "b")); err == nil {
		t.Error("Mkdir() with missing parent should fail")
	}
}

func TestOSFSWriteFileAtomic(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "out.txt")
	fs := NewOSFS()

	if err := os.WriteFile(target, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := fs.WriteFileAtomic(target, []byte("after"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "after" {
		t.Errorf("content = %q, want %q", got, "after")
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(dirEntries) != 1 {
		t.Errorf("directory holds %d entries, temporary file leaked", len(dirEntries))
	}
}

// faultFS delegates probes to the real filesystem but fails every write,
// standing in for permission-denied and disk-full conditions.
type faultFS struct {
	FS
	err error
}

func (f faultFS) Mkdir(string) error { return f.err }

func (f faultFS) WriteFile(string, []byte, os.FileMode) error { return f.err }

func (f faultFS) WriteFileAtomic(string, []byte, os.FileMode) error { return f.err }

func TestApplyRecordsWriteFailures(t *testing.T) {
	root := t.TempDir()
	engine := NewWithFS(faultFS{FS: NewOSFS(), err: os.ErrPermission})

	report, err := engine.Apply(root, []Entry{
		Dir("src"),
		File("README.md", []byte("x"), PolicySkip),
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	for _, res := range report {
		if res.Outcome != OutcomeFailed {
			t.Errorf("%s outcome = %s, want failed", res.Path, res.Outcome)
			continue
		}
		var entryErr *EntryError
		if !errors.As(res.Err, &entryErr) || entryErr.Reason != ReasonWriteFailed {
			t.Errorf("%s error = %v, want write-failed", res.Path, res.Err)
		}
		if !errors.Is(res.Err, os.ErrPermission) {
			t.Errorf("%s error should unwrap to the filesystem cause", res.Path)
		}
	}
}

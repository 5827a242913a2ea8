package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	if _, err := New(dir); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestNew_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	d, err := New("~/exports")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := filepath.Join(home, "exports", "a.csv")
	if got := d.Path("a.csv"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestDir_Write(t *testing.T) {
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := d.Write("contactos_240305.csv", func(w io.Writer) error {
		_, err := io.WriteString(w, "Name\nAna\n")
		return err
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "Name\nAna\n" {
		t.Errorf("content = %q", data)
	}

	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
}

func TestDir_WriteFailureLeavesNothing(t *testing.T) {
	root := t.TempDir()
	d, err := New(root)
	if err != nil {
		t.Fatal(err)
	}

	wantErr := errors.New("boom")
	_, err = d.Write("calendar.html", func(w io.Writer) error {
		io.WriteString(w, "<html>") // nolint:errcheck
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Write() error = %v, want %v", err, wantErr)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("directory not empty after failed write: %v", entries)
	}
}

func TestDir_PathStripsDirectories(t *testing.T) {
	d := &Dir{path: "/tmp/out"}
	if got := d.Path("../../etc/passwd"); got != filepath.Join("/tmp/out", "passwd") {
		t.Errorf("Path() = %q", got)
	}
}

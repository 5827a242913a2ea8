// Package export writes generated files into an output directory.
//
// Files are written to a temporary name next to the target and renamed into
// place once the writer callback succeeds, so a failed run never leaves a
// half-written contacts or calendar file behind.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Dir is an output directory.
type Dir struct {
	path string
}

// New returns a Dir rooted at path, expanding a leading ~/ and creating the
// directory if needed.
func New(path string) (*Dir, error) {
	if path == "" {
		path = "."
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Dir{path: path}, nil
}

// Path returns where a file called name would be written. Any directory
// part of name is dropped.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.path, filepath.Base(name))
}

// Write creates the file name and fills it through fn. The file only
// appears under its final name if fn returns nil.
func (d *Dir) Write(name string, fn func(io.Writer) error) (string, error) {
	target := d.Path(name)

	tmp, err := os.CreateTemp(d.path, "."+filepath.Base(name)+".*")
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // nolint:errcheck

	if err := fn(tmp); err != nil {
		tmp.Close() // nolint:errcheck
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return target, nil
}

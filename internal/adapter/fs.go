// Package adapter contains the filesystem adapter for the webch CLI.
package adapter

import (
	"fmt"
	"io"
	"os"

	m "webch.dev/pkg/webch/internal/model"
)

// FileAdapter abstracts the filesystem operations the workflow relies on. It
// intentionally hides direct `os` access so the merge pipeline can be tested
// without touching the disk.
type FileAdapter interface {
	// ReadLines loads a file and splits it into Lines named after path.
	ReadLines(path m.Path) ([]m.Line, error)

	// Create opens path for writing, truncating any existing file.
	Create(path m.Path) (io.WriteCloser, error)

	// Chdir changes the working directory for all following file access.
	Chdir(path m.Path) error

	// WriteFile writes content to path with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// LocalFileAdapter is the os-backed FileAdapter implementation.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter ready to be wired into
// the workflow.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadLines loads file contents from disk and splits them into lines. The
// whole file is held in memory; lines reference the path they came from.
func (a *LocalFileAdapter) ReadLines(path m.Path) ([]m.Line, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return m.SplitLines(string(path), data), nil
}

// Create opens path for writing.
func (a *LocalFileAdapter) Create(path m.Path) (io.WriteCloser, error) {
	f, err := os.Create(string(path))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return f, nil
}

// Chdir changes the process working directory.
func (a *LocalFileAdapter) Chdir(path m.Path) error {
	if err := os.Chdir(string(path)); err != nil {
		return fmt.Errorf("changing directory to %s: %w", path, err)
	}

	return nil
}

// WriteFile writes content to path with the given permissions.
func (a *LocalFileAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.WriteFile(string(path), content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Package fs provides local file system storage for downloaded documents.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docload"
)

// Ensure FileSystem implements docload.FileSystem at compile time.
var _ docload.FileSystem = (*FileSystem)(nil)

// FileSystem implements docload.FileSystem on the local disk.
type FileSystem struct {
	atomic bool
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithAtomicWrites makes WriteBytes write to a temporary file in the
// destination directory and rename it into place, so a failed write never
// leaves a truncated file at the destination.
func WithAtomicWrites() Option {
	return func(f *FileSystem) {
		f.atomic = true
	}
}

// NewFileSystem creates a new local FileSystem.
func NewFileSystem(opts ...Option) *FileSystem {
	f := &FileSystem{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Exists reports whether anything is present at path.
func (f *FileSystem) Exists(_ context.Context, path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteBytes creates or truncates the file at path with content.
func (f *FileSystem) WriteBytes(_ context.Context, path string, content []byte) error {
	if f.atomic {
		return writeAtomic(path, content)
	}
	return os.WriteFile(path, content, 0644)
}

// CreateDirectory creates path and all missing parents.
func (f *FileSystem) CreateDirectory(_ context.Context, path string) error {
	return os.MkdirAll(path, 0755)
}

func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	// CreateTemp uses 0600; match the non-atomic path.
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

package mock

import (
	"context"

	"github.com/fwojciec/docload"
)

var _ docload.FileSystem = (*FileSystem)(nil)

// FileSystem is a mock implementation of docload.FileSystem.
type FileSystem struct {
	ExistsFn          func(ctx context.Context, path string) bool
	WriteBytesFn      func(ctx context.Context, path string, content []byte) error
	CreateDirectoryFn func(ctx context.Context, path string) error
}

func (f *FileSystem) Exists(ctx context.Context, path string) bool {
	return f.ExistsFn(ctx, path)
}

func (f *FileSystem) WriteBytes(ctx context.Context, path string, content []byte) error {
	return f.WriteBytesFn(ctx, path, content)
}

func (f *FileSystem) CreateDirectory(ctx context.Context, path string) error {
	return f.CreateDirectoryFn(ctx, path)
}

package docload

import "context"

// FileSystem is the storage port used by the load service and downloaders.
// Paths are opaque to callers; an implementation may back them with a local
// directory tree or with object keys.
type FileSystem interface {
	// Exists reports whether an entry is present at path.
	// It returns false for any path that cannot be found, including paths
	// under missing parent directories.
	Exists(ctx context.Context, path string) bool

	// WriteBytes creates or truncates the file at path with exactly content.
	// The parent directory must already exist.
	WriteBytes(ctx context.Context, path string, content []byte) error

	// CreateDirectory creates path and any missing ancestors.
	// It succeeds if path already exists as a directory.
	CreateDirectory(ctx context.Context, path string) error
}

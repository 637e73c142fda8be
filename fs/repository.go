package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Repository maps document filenames to paths under a base directory.
type Repository struct {
	baseDir string
}

// NewRepository creates a Repository rooted at baseDir.
func NewRepository(baseDir string) *Repository {
	return &Repository{baseDir: baseDir}
}

// BaseDirectory returns the directory documents are stored under.
func (r *Repository) BaseDirectory() string {
	return r.baseDir
}

// DocumentPath returns the path of filename under the base directory.
//
// The filename is not validated or cleaned: nested segments, ".." and
// absolute paths pass through. As with path joining on the host platform,
// an absolute filename replaces the base directory.
func (r *Repository) DocumentPath(filename string) string {
	switch {
	case filename == "":
		return r.baseDir
	case r.baseDir == "", filepath.IsAbs(filename):
		return filename
	case strings.HasSuffix(r.baseDir, string(filepath.Separator)):
		return r.baseDir + filename
	default:
		return r.baseDir + string(filepath.Separator) + filename
	}
}

// EnsureDirectoryExists creates the base directory and any missing parents.
func (r *Repository) EnsureDirectoryExists() error {
	return os.MkdirAll(r.baseDir, 0755)
}

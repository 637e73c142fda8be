package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docload/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_BaseDirectory(t *testing.T) {
	t.Parallel()

	repo := fs.NewRepository("/documents")

	assert.Equal(t, "/documents", repo.BaseDirectory())
}

func TestRepository_DocumentPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		filename string
		want     string
	}{
		{
			name:     "simple filename",
			base:     "/documents",
			filename: "test.pdf",
			want:     "/documents/test.pdf",
		},
		{
			name:     "filename with spaces",
			base:     "/documents",
			filename: "with spaces.pdf",
			want:     "/documents/with spaces.pdf",
		},
		{
			name:     "nested segments pass through",
			base:     "/documents",
			filename: "nested/path.pdf",
			want:     "/documents/nested/path.pdf",
		},
		{
			name:     "parent segments are not resolved",
			base:     "/documents",
			filename: "../../etc/passwd",
			want:     "/documents/../../etc/passwd",
		},
		{
			name:     "absolute filename replaces base",
			base:     "/documents",
			filename: "/etc/passwd",
			want:     "/etc/passwd",
		},
		{
			name:     "base with trailing separator",
			base:     "/documents/",
			filename: "test.pdf",
			want:     "/documents/test.pdf",
		},
		{
			name:     "relative base",
			base:     "docs",
			filename: "a.pdf",
			want:     "docs/a.pdf",
		},
		{
			name:     "empty filename returns base",
			base:     "/documents",
			filename: "",
			want:     "/documents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := fs.NewRepository(filepath.FromSlash(tt.base))

			got := repo.DocumentPath(filepath.FromSlash(tt.filename))

			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestRepository_EnsureDirectoryExists(t *testing.T) {
	t.Parallel()

	t.Run("creates base directory", func(t *testing.T) {
		t.Parallel()

		base := filepath.Join(t.TempDir(), "new_documents")
		repo := fs.NewRepository(base)

		require.NoError(t, repo.EnsureDirectoryExists())

		info, err := os.Stat(base)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		base := filepath.Join(t.TempDir(), "level1", "level2", "documents")
		repo := fs.NewRepository(base)

		require.NoError(t, repo.EnsureDirectoryExists())

		info, err := os.Stat(base)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("does not fail if directory exists", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(t.TempDir())

		require.NoError(t, repo.EnsureDirectoryExists())
		require.NoError(t, repo.EnsureDirectoryExists())
	})
}

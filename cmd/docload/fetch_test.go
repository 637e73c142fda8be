package main_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docload/cmd/docload"
	"github.com/fwojciec/docload/fs"
	"github.com/fwojciec/docload/ingest"
	"github.com/fwojciec/docload/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(downloader *mock.Downloader, fsys *mock.FileSystem) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	repo := fs.NewRepository(filepath.FromSlash("/docs"))
	loader := ingest.NewService(downloader, fsys)
	return &main.Dependencies{
		Ctx:        context.Background(),
		Stdout:     stdout,
		Stderr:     stderr,
		Repository: repo,
		Loader:     loader,
		Batch:      &ingest.Batch{Service: loader, Repository: repo},
	}, stdout, stderr
}

func existsFS(exists bool) *mock.FileSystem {
	return &mock.FileSystem{
		ExistsFn:          func(context.Context, string) bool { return exists },
		CreateDirectoryFn: func(context.Context, string) error { return nil },
	}
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(filepath.FromSlash("/docs"), "a.pdf")

	t.Run("downloads into repository", func(t *testing.T) {
		t.Parallel()

		var gotURL, gotDest string
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, url, destination string) error {
				gotURL, gotDest = url, destination
				return nil
			},
		}
		deps, stdout, stderr := newTestDeps(downloader, existsFS(false))

		cmd := &main.FetchCmd{URL: "https://example.com/a.pdf", Name: "a.pdf"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a.pdf", gotURL)
		assert.Equal(t, dest, gotDest)
		assert.Equal(t, "downloaded "+dest+"\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("skips existing destination", func(t *testing.T) {
		t.Parallel()

		downloader := &mock.Downloader{
			DownloadFn: func(context.Context, string, string) error {
				t.Fatal("download should not be called")
				return nil
			},
		}
		deps, stdout, _ := newTestDeps(downloader, existsFS(true))

		cmd := &main.FetchCmd{URL: "https://example.com/a.pdf", Name: "a.pdf"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "skipped "+dest+" (exists)\n", stdout.String())
	})

	t.Run("force overwrites existing destination", func(t *testing.T) {
		t.Parallel()

		called := false
		downloader := &mock.Downloader{
			DownloadFn: func(context.Context, string, string) error {
				called = true
				return nil
			},
		}
		deps, stdout, _ := newTestDeps(downloader, existsFS(true))

		cmd := &main.FetchCmd{URL: "https://example.com/a.pdf", Name: "a.pdf", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.True(t, called)
		assert.Contains(t, stdout.String(), "downloaded")
	})

	t.Run("reports download errors", func(t *testing.T) {
		t.Parallel()

		errFetch := errors.New("connection refused")
		downloader := &mock.Downloader{
			DownloadFn: func(context.Context, string, string) error { return errFetch },
		}
		deps, stdout, stderr := newTestDeps(downloader, existsFS(false))

		cmd := &main.FetchCmd{URL: "https://example.com/a.pdf", Name: "a.pdf"}
		err := cmd.Run(deps)

		assert.Same(t, errFetch, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestPathCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newTestDeps(&mock.Downloader{}, &mock.FileSystem{})

	cmd := &main.PathCmd{Name: "guide.pdf"}
	require.NoError(t, cmd.Run(deps))

	assert.Equal(t, filepath.Join(filepath.FromSlash("/docs"), "guide.pdf")+"\n", stdout.String())
}

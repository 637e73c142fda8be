package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docload"
	main "github.com/fwojciec/docload/cmd/docload"
	"github.com/fwojciec/docload/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorCmd_Run(t *testing.T) {
	t.Parallel()

	discovered := []string{
		"https://example.com/docs/intro",
		"https://example.com/docs/api",
		"https://example.com/blog/news",
	}

	t.Run("uses sitemap by default and applies filters", func(t *testing.T) {
		t.Parallel()

		var downloaded []string
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, url, _ string) error {
				downloaded = append(downloaded, url)
				return nil
			},
		}
		deps, stdout, _ := newTestDeps(downloader, existsFS(false))
		deps.Sitemaps = &mock.URLSource{
			DiscoverFn: func(context.Context, string) ([]string, error) { return discovered, nil },
		}
		deps.Links = &mock.URLSource{
			DiscoverFn: func(context.Context, string) ([]string, error) {
				t.Fatal("link source should not be used")
				return nil, nil
			},
		}

		cmd := &main.MirrorCmd{
			URL:     "https://example.com",
			Include: []string{`/docs/`},
			Exclude: []string{`api$`},
		}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"https://example.com/docs/intro"}, downloaded)
		assert.Contains(t, stdout.String(), "1 downloaded, 0 skipped")
	})

	t.Run("uses page links when requested", func(t *testing.T) {
		t.Parallel()

		var downloaded []string
		downloader := &mock.Downloader{
			DownloadFn: func(_ context.Context, url, _ string) error {
				downloaded = append(downloaded, url)
				return nil
			},
		}
		deps, _, _ := newTestDeps(downloader, existsFS(false))
		deps.Links = &mock.URLSource{
			DiscoverFn: func(_ context.Context, sourceURL string) ([]string, error) {
				assert.Equal(t, "https://example.com/index.html", sourceURL)
				return []string{"https://example.com/a.pdf"}, nil
			},
		}

		cmd := &main.MirrorCmd{URL: "https://example.com/index.html", Links: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"https://example.com/a.pdf"}, downloaded)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newTestDeps(&mock.Downloader{}, existsFS(false))

		cmd := &main.MirrorCmd{URL: "https://example.com", Include: []string{"("}}
		err := cmd.Run(deps)

		assert.Equal(t, docload.EINVALID, docload.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid include pattern")
	})

	t.Run("reports discovery failure", func(t *testing.T) {
		t.Parallel()

		errDiscover := errors.New("no sitemap")
		deps, stdout, stderr := newTestDeps(&mock.Downloader{}, existsFS(false))
		deps.Sitemaps = &mock.URLSource{
			DiscoverFn: func(context.Context, string) ([]string, error) { return nil, errDiscover },
		}

		cmd := &main.MirrorCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		assert.ErrorIs(t, err, errDiscover)
		assert.Contains(t, stdout.String(), "0 downloaded, 0 skipped")
		assert.Contains(t, stderr.String(), "no sitemap")
	})
}

package goquery_test

import (
	"testing"

	"github.com/fwojciec/docload"
	"github.com/fwojciec/docload/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<a href="/papers/a.pdf">A</a>
<a href="b.PDF#page=2">B</a>
<a href="https://other.org/c.pdf">C</a>
<a href="notes.html">Notes</a>
<a href="#top">Top</a>
<a href="mailto:team@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="/papers/a.pdf">A again</a>
<a>no href</a>
</body></html>`

	t.Run("returns absolute http links in document order", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor().ExtractLinks(page, "https://example.com/papers/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/papers/a.pdf",
			"https://example.com/papers/b.PDF",
			"https://other.org/c.pdf",
			"https://example.com/papers/notes.html",
		}, links)
	})

	t.Run("filters by extension case-insensitively", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor(goquery.WithExtensions("pdf")).ExtractLinks(page, "https://example.com/papers/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/papers/a.pdf",
			"https://example.com/papers/b.PDF",
			"https://other.org/c.pdf",
		}, links)
	})

	t.Run("keeps only same-host links", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor(goquery.WithSameHost(), goquery.WithExtensions(".pdf")).
			ExtractLinks(page, "https://example.com/papers/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/papers/a.pdf",
			"https://example.com/papers/b.PDF",
		}, links)
	})

	t.Run("resolves against base element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><base href="https://cdn.example.com/files/"></head>
<body><a href="x.pdf">X</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/files/x.pdf"}, links)
	})

	t.Run("returns empty slice when page has no links", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor().ExtractLinks("<p>nothing</p>", "https://example.com/")

		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})

	t.Run("returns EINVALID for bad base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks("<a href='x'>x</a>", "http://[::1")

		require.Error(t, err)
		assert.Equal(t, docload.EINVALID, docload.ErrorCode(err))
	})
}

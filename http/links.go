package http

import (
	"context"
	"io"
	"net/http"

	"github.com/fwojciec/docload"
)

// DefaultMaxPageSize caps how much of an HTML page is read for link discovery.
const DefaultMaxPageSize = 10 << 20

// Ensure PageLinkSource implements docload.URLSource.
var _ docload.URLSource = (*PageLinkSource)(nil)

// PageLinkSource discovers document URLs from the links on an HTML page,
// such as a directory listing or a publications index.
type PageLinkSource struct {
	client    *http.Client
	extractor docload.LinkExtractor
}

// NewPageLinkSource creates a new PageLinkSource.
// If client is nil, http.DefaultClient is used.
func NewPageLinkSource(client *http.Client, extractor docload.LinkExtractor) *PageLinkSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &PageLinkSource{client: client, extractor: extractor}
}

// Discover fetches the page at sourceURL and returns the links on it.
// Relative links resolve against the final URL after redirects.
func (s *PageLinkSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, docload.Errorf(docload.EINVALID, "invalid source URL: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: sourceURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, DefaultMaxPageSize))
	if err != nil {
		return nil, err
	}

	return s.extractor.ExtractLinks(string(body), resp.Request.URL.String())
}

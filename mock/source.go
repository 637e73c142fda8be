package mock

import (
	"context"

	"github.com/fwojciec/docload"
)

// Compile-time interface verification.
var (
	_ docload.URLSource     = (*URLSource)(nil)
	_ docload.LinkExtractor = (*LinkExtractor)(nil)
	_ docload.DomainLimiter = (*DomainLimiter)(nil)
)

// URLSource is a mock implementation of docload.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, sourceURL string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	return s.DiscoverFn(ctx, sourceURL)
}

// LinkExtractor is a mock implementation of docload.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

// DomainLimiter is a mock implementation of docload.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

package ingest

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/docload"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

var (
	_ docload.DomainLimiter = (*DomainLimiter)(nil)
	_ docload.Downloader    = (*LimitedDownloader)(nil)
)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter with a burst of 1.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a new DomainLimiter allowing rps requests per
// second to each domain. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// RegistrableDomain returns the eTLD+1 of host (docs.example.co.uk →
// example.co.uk). Hosts without one, such as IP addresses and localhost,
// are returned lowercased as is.
func RegistrableDomain(host string) string {
	host = strings.ToLower(host)
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// LimitedDownloader waits on a DomainLimiter before each download.
type LimitedDownloader struct {
	next    docload.Downloader
	limiter docload.DomainLimiter
}

// NewLimitedDownloader wraps next with limiter, keyed by registrable domain.
func NewLimitedDownloader(next docload.Downloader, limiter docload.DomainLimiter) *LimitedDownloader {
	return &LimitedDownloader{next: next, limiter: limiter}
}

// Download waits for the URL's domain and delegates to the wrapped downloader.
// URLs without a host are passed through for the downloader to reject.
func (d *LimitedDownloader) Download(ctx context.Context, rawURL, destination string) error {
	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		if err := d.limiter.Wait(ctx, RegistrableDomain(u.Hostname())); err != nil {
			return err
		}
	}
	return d.next.Download(ctx, rawURL, destination)
}

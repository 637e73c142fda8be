package docload

import (
	"context"
	"regexp"
)

// URLSource discovers document URLs from a site.
type URLSource interface {
	Discover(ctx context.Context, sourceURL string) ([]string, error)
}

// LinkExtractor returns the absolute http(s) links found in an HTML page.
// Relative links are resolved against baseURL.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}

// Apply returns the URLs that pass the filter, preserving order.
func (f *URLFilter) Apply(urls []string) []string {
	if f == nil {
		return urls
	}
	var out []string
	for _, u := range urls {
		if f.Match(u) {
			out = append(out, u)
		}
	}
	return out
}

// Package goquery provides HTML link extraction using goquery.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docload"
)

// Ensure LinkExtractor implements docload.LinkExtractor.
var _ docload.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor returns absolute http(s) links from anchor elements.
type LinkExtractor struct {
	sameHost   bool
	extensions map[string]bool
}

// Option configures a LinkExtractor.
type Option func(*LinkExtractor)

// WithSameHost keeps only links on the same host as the page.
func WithSameHost() Option {
	return func(e *LinkExtractor) {
		e.sameHost = true
	}
}

// WithExtensions keeps only links whose path ends in one of exts
// (e.g., ".pdf"). Matching is case-insensitive.
func WithExtensions(exts ...string) Option {
	return func(e *LinkExtractor) {
		for _, ext := range exts {
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			e.extensions[strings.ToLower(ext)] = true
		}
	}
}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor(opts ...Option) *LinkExtractor {
	e := &LinkExtractor{extensions: make(map[string]bool)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractLinks parses html and returns matching links in document order,
// without duplicates and with fragments removed. A <base href> in the page
// takes precedence over baseURL for resolving relative links.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docload.Errorf(docload.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docload.Errorf(docload.EINVALID, "failed to parse HTML: %v", err)
	}

	resolveBase := base
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if b, err := base.Parse(strings.TrimSpace(href)); err == nil {
			resolveBase = b
		}
	}

	seen := make(map[string]bool)
	links := []string{}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}

		u, err := resolveBase.Parse(href)
		if err != nil {
			return
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return
		}
		u.Fragment = ""
		u.RawFragment = ""

		if e.sameHost && !strings.EqualFold(u.Host, base.Host) {
			return
		}
		if len(e.extensions) > 0 && !e.extensions[strings.ToLower(path.Ext(u.Path))] {
			return
		}

		link := u.String()
		if seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	})

	return links, nil
}

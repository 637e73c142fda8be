package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/docload"
)

// URLToPath converts a document URL to a relative file path rooted at the
// URL's host. Query strings and fragments are ignored and ".." segments are
// resolved so the result never climbs above the host directory.
//
// Example: https://example.com/papers/a.pdf → example.com/papers/a.pdf
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docload.Errorf(docload.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", docload.Errorf(docload.EINVALID, "URL %q has no host", rawURL)
	}

	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" {
		host += "_" + port
	}

	p := u.Path

	// Root or trailing slash → index.html in that directory
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index.html"
	}

	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	return host + "/" + p, nil
}

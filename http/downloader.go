// Package http provides HTTP-based implementations of docload interfaces:
// a document downloader and URL sources backed by sitemaps and HTML pages.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fwojciec/docload"
)

// DefaultTimeout is the default timeout for a download request.
const DefaultTimeout = 30 * time.Second

// DefaultChunkSize is the default size of reads from the response body.
const DefaultChunkSize = 8192

// Ensure Downloader implements docload.Downloader at compile time.
var _ docload.Downloader = (*Downloader)(nil)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Downloader fetches documents with a single GET request and writes them
// through a docload.FileSystem.
type Downloader struct {
	fsys      docload.FileSystem
	client    *http.Client
	timeout   time.Duration
	chunkSize int
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithChunkSize sets the buffer size used to read response bodies.
// Non-positive values fall back to DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(dl *Downloader) {
		dl.chunkSize = n
	}
}

// WithClient sets the HTTP client used for requests. The client is copied
// and the configured timeout applied to the copy.
func WithClient(c *http.Client) Option {
	return func(dl *Downloader) {
		dl.client = c
	}
}

// NewDownloader creates a new Downloader writing through fsys.
func NewDownloader(fsys docload.FileSystem, opts ...Option) *Downloader {
	d := &Downloader{
		fsys:      fsys,
		timeout:   DefaultTimeout,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.chunkSize <= 0 {
		d.chunkSize = DefaultChunkSize
	}

	client := &http.Client{}
	if d.client != nil {
		c := *d.client
		client = &c
	}
	client.Timeout = d.timeout
	d.client = client

	return d
}

// Timeout returns the per-request timeout.
func (d *Downloader) Timeout() time.Duration {
	return d.timeout
}

// ChunkSize returns the read buffer size.
func (d *Downloader) ChunkSize() int {
	return d.chunkSize
}

// Download retrieves url and writes the full body to destination, creating
// the destination's parent directory first. Nothing is written when the
// request fails or the status is not 2xx.
func (d *Downloader) Download(ctx context.Context, url, destination string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	content, err := d.readBody(resp.Body)
	if err != nil {
		return err
	}

	if err := d.fsys.CreateDirectory(ctx, filepath.Dir(destination)); err != nil {
		return err
	}
	return d.fsys.WriteBytes(ctx, destination, content)
}

// readBody buffers the whole body, reading chunkSize bytes at a time.
func (d *Downloader) readBody(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, d.chunkSize)
	for {
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

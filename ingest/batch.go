package ingest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docload"
	"github.com/fwojciec/docload/fs"
)

// BatchResult counts the outcomes of a batch.
type BatchResult struct {
	Loaded  int
	Skipped int
}

// BatchProgress reports one finished entry.
type BatchProgress struct {
	URL         string
	Destination string
	Loaded      bool
	Completed   int
	Total       int
}

// BatchProgressFunc is called after each entry is loaded or skipped.
type BatchProgressFunc func(BatchProgress)

// Batch loads many documents one after another into a repository.
type Batch struct {
	Service    *Service
	Repository *fs.Repository
}

// LoadEntries loads each entry in order. An entry without a name is stored
// under the path derived from its URL by fs.URLToPath.
//
// The batch stops at the first failure and returns the counts so far with
// the error; documents already written stay in place.
func (b *Batch) LoadEntries(ctx context.Context, entries []docload.ManifestEntry, skipIfExists bool, progress BatchProgressFunc) (BatchResult, error) {
	var result BatchResult

	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return result, err
		}

		dest, err := b.destination(entry)
		if err != nil {
			return result, err
		}

		loaded, err := b.Service.LoadDocument(ctx, entry.URL, dest, skipIfExists)
		if err != nil {
			return result, fmt.Errorf("load %s: %w", entry.URL, err)
		}

		if loaded {
			result.Loaded++
		} else {
			result.Skipped++
		}

		if progress != nil {
			progress(BatchProgress{
				URL:         entry.URL,
				Destination: dest,
				Loaded:      loaded,
				Completed:   i + 1,
				Total:       len(entries),
			})
		}
	}

	return result, nil
}

// LoadSource discovers URLs from source, applies filter (nil keeps all) and
// loads the rest with LoadEntries.
func (b *Batch) LoadSource(ctx context.Context, source docload.URLSource, sourceURL string, filter *docload.URLFilter, skipIfExists bool, progress BatchProgressFunc) (BatchResult, error) {
	urls, err := source.Discover(ctx, sourceURL)
	if err != nil {
		return BatchResult{}, fmt.Errorf("discover %s: %w", sourceURL, err)
	}

	urls = filter.Apply(urls)
	entries := make([]docload.ManifestEntry, len(urls))
	for i, u := range urls {
		entries[i] = docload.ManifestEntry{URL: u}
	}

	return b.LoadEntries(ctx, entries, skipIfExists, progress)
}

func (b *Batch) destination(entry docload.ManifestEntry) (string, error) {
	name := entry.Name
	if name == "" {
		p, err := fs.URLToPath(entry.URL)
		if err != nil {
			return "", err
		}
		name = filepath.FromSlash(p)
	}
	return b.Repository.DocumentPath(name), nil
}

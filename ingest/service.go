// Package ingest orchestrates document loading on top of the docload
// storage and downloader ports.
package ingest

import (
	"context"
	"path/filepath"

	"github.com/fwojciec/docload"
	"github.com/fwojciec/docload/fs"
)

// SkipIfExists is the conventional skipIfExists argument to LoadDocument:
// an existing destination is left untouched.
const SkipIfExists = true

// Service loads documents from URLs into storage.
type Service struct {
	downloader docload.Downloader
	fsys       docload.FileSystem
}

// NewService creates a new Service. If fsys is nil, the local file system is used.
func NewService(downloader docload.Downloader, fsys docload.FileSystem) *Service {
	if fsys == nil {
		fsys = fs.NewFileSystem()
	}
	return &Service{downloader: downloader, fsys: fsys}
}

// Downloader returns the downloader the service delegates to.
func (s *Service) Downloader() docload.Downloader {
	return s.downloader
}

// FileSystem returns the storage the service checks and prepares.
func (s *Service) FileSystem() docload.FileSystem {
	return s.fsys
}

// LoadDocument downloads url to destination and reports whether a download
// took place. With skipIfExists set and destination present, it returns false
// without touching storage or the network. Whether to skip is decided by
// existence alone, never by content or freshness.
//
// Errors from the file system and the downloader are returned as is.
func (s *Service) LoadDocument(ctx context.Context, url, destination string, skipIfExists bool) (bool, error) {
	if skipIfExists && s.fsys.Exists(ctx, destination) {
		return false, nil
	}

	if err := s.fsys.CreateDirectory(ctx, filepath.Dir(destination)); err != nil {
		return false, err
	}
	if err := s.downloader.Download(ctx, url, destination); err != nil {
		return false, err
	}
	return true, nil
}

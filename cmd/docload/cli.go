package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docload"
	"github.com/fwojciec/docload/fs"
	"github.com/fwojciec/docload/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Repository *fs.Repository
	Loader     *ingest.Service
	Batch      *ingest.Batch

	// Downloads is nil when the ledger is disabled.
	Downloads docload.DownloadService

	Sitemaps docload.URLSource
	Links    docload.URLSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir         string        `short:"d" default:"documents" env:"DOCLOAD_DIR" help:"Base directory documents are stored under"`
	DB          string        `name:"db" env:"DOCLOAD_DB" help:"Download ledger database path (default ~/.docload/docload.db)"`
	NoLedger    bool          `help:"Do not record downloads in the ledger"`
	Timeout     time.Duration `default:"30s" help:"Per-download timeout"`
	ChunkSize   int           `default:"8192" help:"Read buffer size in bytes"`
	Atomic      bool          `help:"Write to a temporary file and rename into place"`
	RPS         float64       `name:"rps" default:"1.0" help:"Requests per second per domain (0 disables limiting)"`
	S3Bucket    string        `name:"s3-bucket" env:"DOCLOAD_S3_BUCKET" help:"Store documents in this S3 bucket instead of the local disk"`
	S3Prefix    string        `name:"s3-prefix" env:"DOCLOAD_S3_PREFIX" help:"Key prefix for S3 storage"`
	MetricsFile string        `help:"Write Prometheus metrics to this textfile on exit"`
	Verbose     bool          `short:"v" help:"Log every operation to stderr"`

	Fetch   FetchCmd   `cmd:"" help:"Download one document"`
	Batch   BatchCmd   `cmd:"" help:"Download the documents listed in a YAML manifest"`
	Mirror  MirrorCmd  `cmd:"" help:"Download every document a site's sitemap or page links point to"`
	History HistoryCmd `cmd:"" help:"List recorded downloads"`
	Path    PathCmd    `cmd:"" help:"Print the storage path for a document name"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL   string `arg:"" help:"Document URL"`
	Name  string `arg:"" help:"Destination filename under --dir"`
	Force bool   `short:"f" help:"Download even if the destination exists"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Manifest string `arg:"" type:"existingfile" help:"YAML manifest of documents"`
	Force    bool   `short:"f" help:"Download even if destinations exist"`
}

// MirrorCmd is the "mirror" subcommand.
type MirrorCmd struct {
	URL     string   `arg:"" help:"Site or page URL"`
	Links   bool     `help:"Follow the links on the page instead of reading the sitemap"`
	Ext     []string `help:"With --links, only follow links ending in this extension (repeatable)"`
	Include []string `short:"i" help:"Only download URLs matching this regex (repeatable)"`
	Exclude []string `short:"x" help:"Skip URLs matching this regex (repeatable)"`
	Force   bool     `short:"f" help:"Download even if destinations exist"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int    `short:"n" default:"20" help:"Maximum number of downloads to show"`
	URL   string `help:"Only show downloads of this URL"`
}

// PathCmd is the "path" subcommand.
type PathCmd struct {
	Name string `arg:"" help:"Document filename"`
}

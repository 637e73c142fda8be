package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fwojciec/docload"
	"github.com/fwojciec/docload/fs"
	"github.com/fwojciec/docload/goquery"
	dlhttp "github.com/fwojciec/docload/http"
	"github.com/fwojciec/docload/ingest"
	dlprom "github.com/fwojciec/docload/prometheus"
	"github.com/fwojciec/docload/s3"
	dlslog "github.com/fwojciec/docload/slog"
	"github.com/fwojciec/docload/sqlite"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// HTTP client for downloads and discovery. Defaults to a new client.
	HTTPClient *http.Client

	// SQLite database backing the download ledger.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docload"),
		kong.Description("Download documents from URLs into local or S3 storage"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docload --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Repository = fs.NewRepository(cli.Dir)
	if cmd == "path" {
		return kongCtx.Run(deps)
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Storage, innermost first.
	var fsys docload.FileSystem
	if cli.S3Bucket != "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Configure AWS credentials and region via the environment or ~/.aws")
			return fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		fsys = s3.NewFileSystem(awss3.NewFromConfig(cfg), cli.S3Bucket, cli.S3Prefix)
	} else {
		var opts []fs.Option
		if cli.Atomic {
			opts = append(opts, fs.WithAtomicWrites())
		}
		fsys = fs.NewFileSystem(opts...)
		if cmd != "history" {
			if err := deps.Repository.EnsureDirectoryExists(); err != nil {
				return fmt.Errorf("failed to create document directory %q: %w", cli.Dir, err)
			}
		}
	}

	var metrics *dlprom.Metrics
	if cli.MetricsFile != "" {
		reg := prometheus.NewRegistry()
		metrics, err = dlprom.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		defer func() {
			if werr := dlprom.WriteTextfile(cli.MetricsFile, reg); werr != nil {
				err = errors.Join(err, fmt.Errorf("failed to write metrics: %w", werr))
			}
		}()
		fsys = metrics.FileSystem(fsys)
	}

	var recorder *ingest.Recorder
	if !cli.NoLedger {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCLOAD_DB or pass --no-ledger\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		deps.Downloads = sqlite.NewDownloadService(m.DB)
		recorder = ingest.NewRecorder(deps.Downloads)
		fsys = recorder.FileSystem(fsys)
	}

	if logger != nil {
		fsys = dlslog.NewLoggingFileSystem(fsys, logger)
	}

	// Downloader, innermost first.
	client := m.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	var downloader docload.Downloader = dlhttp.NewDownloader(fsys,
		dlhttp.WithClient(client),
		dlhttp.WithTimeout(cli.Timeout),
		dlhttp.WithChunkSize(cli.ChunkSize),
	)
	if recorder != nil {
		downloader = recorder.Downloader(downloader)
	}
	if metrics != nil {
		downloader = metrics.Downloader(downloader)
	}
	downloader = ingest.NewLimitedDownloader(downloader, ingest.NewDomainLimiter(cli.RPS))
	if logger != nil {
		downloader = dlslog.NewLoggingDownloader(downloader, logger)
	}

	deps.Loader = ingest.NewService(downloader, fsys)
	deps.Batch = &ingest.Batch{Service: deps.Loader, Repository: deps.Repository}

	discoveryClient := *client
	discoveryClient.Timeout = cli.Timeout
	var sitemaps docload.URLSource = dlhttp.NewSitemapSource(&discoveryClient)
	var links docload.URLSource = dlhttp.NewPageLinkSource(&discoveryClient, goquery.NewLinkExtractor(goquery.WithSameHost(), goquery.WithExtensions(cli.Mirror.Ext...)))
	if logger != nil {
		sitemaps = dlslog.NewLoggingURLSource(sitemaps, logger)
		links = dlslog.NewLoggingURLSource(links, logger)
	}
	deps.Sitemaps = sitemaps
	deps.Links = links

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docload.db"
	}
	dir := filepath.Join(home, ".docload")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docload.db")
}

package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docload"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Downloads == nil {
		fmt.Fprintln(deps.Stderr, "error: the ledger is disabled (--no-ledger)")
		return docload.Errorf(docload.EINVALID, "ledger disabled")
	}

	filter := docload.DownloadFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	downloads, err := deps.Downloads.FindDownloads(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docload.ErrorMessage(err))
		return err
	}

	if len(downloads) == 0 {
		fmt.Fprintln(deps.Stdout, "No downloads recorded. Use 'docload fetch' to download a document.")
		return nil
	}

	for _, d := range downloads {
		fmt.Fprintf(deps.Stdout, "%s  %8d  %s  %s  %s\n",
			d.FetchedAt.Local().Format(time.DateTime), d.Size, d.ContentHash, d.URL, d.Path)
	}

	return nil
}

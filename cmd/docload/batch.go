package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docload"
	"github.com/fwojciec/docload/ingest"
	"github.com/fwojciec/docload/yaml"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer f.Close()

	entries, err := yaml.ParseManifest(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Manifest, docload.ErrorMessage(err))
		return err
	}

	result, err := deps.Batch.LoadEntries(deps.Ctx, entries, !c.Force, progressPrinter(deps))
	return finishBatch(deps, result, err)
}

func progressPrinter(deps *Dependencies) ingest.BatchProgressFunc {
	return func(p ingest.BatchProgress) {
		printOutcome(deps, p.Destination, p.Loaded)
	}
}

func finishBatch(deps *Dependencies, result ingest.BatchResult, err error) error {
	fmt.Fprintf(deps.Stdout, "%d downloaded, %d skipped\n", result.Loaded, result.Skipped)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docload.ErrorMessage(err))
		return err
	}
	return nil
}

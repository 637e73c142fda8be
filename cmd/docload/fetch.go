package main

import (
	"fmt"

	"github.com/fwojciec/docload"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	dest := deps.Repository.DocumentPath(c.Name)

	loaded, err := deps.Loader.LoadDocument(deps.Ctx, c.URL, dest, !c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docload.ErrorMessage(err))
		return err
	}

	printOutcome(deps, dest, loaded)
	return nil
}

func printOutcome(deps *Dependencies, dest string, loaded bool) {
	if loaded {
		fmt.Fprintf(deps.Stdout, "downloaded %s\n", dest)
	} else {
		fmt.Fprintf(deps.Stdout, "skipped %s (exists)\n", dest)
	}
}

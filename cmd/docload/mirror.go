package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/docload"
)

// Run executes the mirror command.
func (c *MirrorCmd) Run(deps *Dependencies) error {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docload.ErrorMessage(err))
		return err
	}

	source := deps.Sitemaps
	if c.Links {
		source = deps.Links
	}

	result, err := deps.Batch.LoadSource(deps.Ctx, source, c.URL, filter, !c.Force, progressPrinter(deps))
	return finishBatch(deps, result, err)
}

func (c *MirrorCmd) filter() (*docload.URLFilter, error) {
	if len(c.Include) == 0 && len(c.Exclude) == 0 {
		return nil, nil
	}

	filter := &docload.URLFilter{}
	for _, pattern := range c.Include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, docload.Errorf(docload.EINVALID, "invalid include pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range c.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, docload.Errorf(docload.EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}

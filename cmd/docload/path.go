package main

import "fmt"

// Run executes the path command.
func (c *PathCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Repository.DocumentPath(c.Name))
	return nil
}

package main

import (
	"strings"

	"github.com/fwojciec/newgrounds"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	opts := newgrounds.SearchOptions{
		Page: c.Page,
		Sort: newgrounds.SearchSort(c.Sort),
	}

	results, err := deps.Service.SearchAudio(deps.Ctx, strings.Join(c.Terms, " "), opts)
	if err != nil {
		return reportError(deps, err)
	}

	return writeJSON(deps.Stdout, results)
}

package main

import "github.com/fwojciec/newgrounds/scrape"

// Run executes the audio command. A single id prints one record; several
// ids print an array in argument order.
func (c *AudioCmd) Run(deps *Dependencies) error {
	audios, err := scrape.GetAudios(deps.Ctx, deps.Service, c.IDs, deps.Concurrency)
	if err != nil {
		return reportError(deps, err)
	}

	if len(audios) == 1 {
		return writeJSON(deps.Stdout, audios[0])
	}
	return writeJSON(deps.Stdout, audios)
}

package main

// Run executes the playlist command.
func (c *PlaylistCmd) Run(deps *Dependencies) error {
	playlist, err := deps.Service.GetPlaylist(deps.Ctx, c.ID)
	if err != nil {
		return reportError(deps, err)
	}

	return writeJSON(deps.Stdout, playlist)
}

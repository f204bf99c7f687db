package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newgrounds"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Service     newgrounds.Service
	Concurrency int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL      string        `name:"base-url" env:"NGSCRAPE_BASE_URL" help:"Site root used to build page URLs (default https://www.newgrounds.com)"`
	Timeout      time.Duration `default:"30s" env:"NGSCRAPE_TIMEOUT" help:"Timeout for each page fetch or navigation"`
	UserAgent    string        `name:"user-agent" env:"NGSCRAPE_USER_AGENT" help:"User agent for fetches and rendered pages"`
	FullMarkdown bool          `name:"full-markdown" env:"NGSCRAPE_FULL_MARKDOWN" help:"Convert rich text with the full Markdown converter"`
	Stealth      bool          `env:"NGSCRAPE_STEALTH" help:"Inject stealth evasions into rendered pages"`
	Render       bool          `env:"NGSCRAPE_RENDER" help:"Fetch static pages through the browser"`
	Verbose      bool          `short:"v" env:"NGSCRAPE_VERBOSE" help:"Log at debug level"`
	Concurrency  int           `short:"c" default:"3" env:"NGSCRAPE_CONCURRENCY" help:"Concurrent audio lookups"`

	Search   SearchCmd   `cmd:"" help:"Search audio submissions"`
	Audio    AudioCmd    `cmd:"" help:"Show audio detail records"`
	Playlist PlaylistCmd `cmd:"" help:"Show a playlist and its items"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Terms []string `arg:"" help:"Search terms"`
	Page  int      `short:"p" default:"1" help:"Result page"`
	Sort  string   `short:"s" default:"relevance" enum:"relevance,date-desc,date-asc,score-desc,score-asc,views-desc,views-asc" help:"Sort order"`
}

// AudioCmd is the "audio" subcommand.
type AudioCmd struct {
	IDs []string `arg:"" name:"id" help:"Audio ids"`
}

// PlaylistCmd is the "playlist" subcommand.
type PlaylistCmd struct {
	ID string `arg:"" help:"Playlist id (owner/name)"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportError prints the user-facing message of err and logs the full
// error at Debug level, so --verbose shows internal failures.
func reportError(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", newgrounds.ErrorMessage(err))
	if deps.Logger != nil {
		deps.Logger.Debug("command failed", "err", err)
	}
	return err
}

// Package scrape wires fetching, extraction and assembly into a
// newgrounds.Service.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fwojciec/newgrounds"
)

var _ newgrounds.Service = (*Client)(nil)

// Client fetches pages, extracts raw records and assembles them.
// The Fetcher is shared across calls and is not closed by the Client.
type Client struct {
	Fetcher   newgrounds.Fetcher
	Static    newgrounds.StaticExtractor
	Rendered  newgrounds.RenderedExtractor
	Converter newgrounds.Converter
	Logger    *slog.Logger

	// BaseURL is the site root used to build page URLs and resolve links.
	// Defaults to newgrounds.DefaultBaseURL.
	BaseURL string
}

// SearchAudio fetches one search page and assembles every result on it.
func (c *Client) SearchAudio(ctx context.Context, terms string, opts newgrounds.SearchOptions) ([]*newgrounds.SearchResult, error) {
	if strings.TrimSpace(terms) == "" {
		return nil, newgrounds.Errorf(newgrounds.EINVALID, "search terms required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	html, err := c.Fetcher.Fetch(ctx, newgrounds.SearchURL(c.BaseURL, terms, opts))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", terms, err)
	}

	raws, err := c.Static.ExtractSearchResults(html)
	if err != nil {
		return nil, err
	}

	a := c.assembler()
	results := make([]*newgrounds.SearchResult, 0, len(raws))
	for _, raw := range raws {
		results = append(results, a.SearchResult(raw))
	}
	return results, nil
}

// GetAudio fetches and assembles the detail page of one audio.
func (c *Client) GetAudio(ctx context.Context, id string) (*newgrounds.Audio, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newgrounds.Errorf(newgrounds.EINVALID, "audio id required")
	}

	html, err := c.Fetcher.Fetch(ctx, newgrounds.AudioURL(c.BaseURL, id))
	if err != nil {
		var fe *newgrounds.FetchError
		if errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound {
			return nil, newgrounds.Errorf(newgrounds.ENOTFOUND, "audio %q not found", id)
		}
		return nil, fmt.Errorf("audio %q: %w", id, err)
	}

	raw, err := c.Static.ExtractAudio(html)
	if err != nil {
		return nil, err
	}
	return c.assembler().Audio(id, raw), nil
}

// GetPlaylist renders the playlist page and assembles its items.
// Playlist ids have the form "owner/name".
func (c *Client) GetPlaylist(ctx context.Context, id string) (*newgrounds.Playlist, error) {
	owner, name, ok := strings.Cut(strings.Trim(id, "/"), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, newgrounds.Errorf(newgrounds.EINVALID, "playlist id must be owner/name, got %q", id)
	}

	raw, err := c.Rendered.ExtractPlaylist(ctx, newgrounds.PlaylistURL(c.BaseURL, id))
	if err != nil {
		return nil, fmt.Errorf("playlist %q: %w", id, err)
	}
	return c.assembler().Playlist(id, raw), nil
}

func (c *Client) assembler() *newgrounds.Assembler {
	a := newgrounds.NewAssembler(c.Converter, c.Logger)
	a.BaseURL = c.BaseURL
	return a
}

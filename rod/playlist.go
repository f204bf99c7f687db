package rod

import (
	"context"

	"github.com/fwojciec/newgrounds"
)

// playlistScript reads a rendered playlist page. Numbers are returned as
// text and coerced by the caller; list entries without a submission anchor
// are skipped.
const playlistScript = `() => {
	const text = (el) => (el && el.textContent ? el.textContent.trim() : "");

	const match = window.location.pathname.match(/^\/playlist\/([^\/]+\/[^\/]+)/);
	const result = {
		playlistId: match ? match[1] : "",
		playlistTitle: text(document.querySelector("#playlist_outer .pod-head h2")),
		playlistIcon: "",
		author: "",
		authorIcon: "",
		authorUrl: "",
		items: [],
	};

	const icon = document.querySelector("img.playlist-icon-large");
	if (icon) {
		result.playlistIcon = icon.src || "";
	}

	const user = document.querySelector("ul.authorlinks li div.item-user");
	if (user) {
		const link = user.querySelector("a.item-icon");
		if (link) {
			result.authorUrl = link.href || "";
			const img = link.querySelector("img");
			if (img) {
				result.authorIcon = img.src || "";
			} else {
				const image = link.querySelector("svg image");
				result.authorIcon = image
					? image.getAttribute("href") || image.getAttribute("xlink:href") || ""
					: "";
			}
		}
		result.author = text(user.querySelector("h4 a"));
	}

	const list = document.querySelector("#playlist_list");
	if (!list) {
		return result;
	}

	list.querySelectorAll("li").forEach((li) => {
		const wrapper = li.querySelector(".audio-wrapper");
		if (!wrapper) return;
		const link = wrapper.querySelector("a.item-audiosubmission");
		if (!link) return;

		const url = link.href || "";
		let id = "";
		try {
			const parts = new URL(url).pathname.split("/");
			if (parts.length >= 4) {
				id = parts[3];
			}
		} catch (e) {}

		let score = "";
		const star = link.querySelector(".star-score");
		if (star && star.title) {
			score = star.title.replace("Score:", "").trim();
		}

		const img = link.querySelector(".item-icon img");
		result.items.push({
			id: id,
			title: link.getAttribute("title") || "",
			author: text(link.querySelector(".item-details-main .detail-title span strong")),
			description: text(link.querySelector(".detail-description")),
			url: url,
			views: text(link.querySelector(".item-details-meta dl dd:nth-child(3)")),
			score: score,
			genre: text(link.querySelector(".item-details-meta dl dd:nth-child(2)")),
			icon: img ? img.src || "" : "",
		});
	});
	return result;
}`

// Ensure PlaylistExtractor implements newgrounds.RenderedExtractor at
// compile time.
var _ newgrounds.RenderedExtractor = (*PlaylistExtractor)(nil)

// PlaylistExtractor reads playlists from pages rendered in a browser.
type PlaylistExtractor struct {
	opener newgrounds.SessionOpener
}

// NewPlaylistExtractor creates a new PlaylistExtractor that renders pages
// in sessions from opener.
func NewPlaylistExtractor(opener newgrounds.SessionOpener) *PlaylistExtractor {
	return &PlaylistExtractor{opener: opener}
}

// ExtractPlaylist implements newgrounds.RenderedExtractor. The session is
// closed on every return path.
func (e *PlaylistExtractor) ExtractPlaylist(ctx context.Context, url string) (raw *newgrounds.RawPlaylist, err error) {
	session, err := e.opener.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := session.Close(); err == nil && cerr != nil {
			raw, err = nil, cerr
		}
	}()

	if err := session.Navigate(ctx, url); err != nil {
		return nil, err
	}

	raw = &newgrounds.RawPlaylist{}
	if err := session.Evaluate(ctx, playlistScript, raw); err != nil {
		return nil, err
	}
	if raw.Items == nil {
		raw.Items = []newgrounds.RawPlaylistItem{}
	}
	return raw, nil
}

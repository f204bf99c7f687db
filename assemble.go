package newgrounds

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"
)

// Assembler turns raw extracted fields into records. Required fields are
// always set, with nil or "" when the page carries no usable value.
// Optional fields are left unset when there is no source data.
//
// Unparsable values are logged at Warn level and never fail assembly.
type Assembler struct {
	// BaseURL resolves relative links. Defaults to DefaultBaseURL.
	BaseURL string

	// Converter renders rich-text fields. Defaults to MarkupConverter.
	Converter Converter

	Logger *slog.Logger
}

// NewAssembler returns an Assembler using the default base URL.
func NewAssembler(conv Converter, logger *slog.Logger) *Assembler {
	return &Assembler{Converter: conv, Logger: logger}
}

// SearchResult assembles a search result. The number of metadata values
// selects the layout: one is the view count, two is (ignored, views), three
// or more is (type, genre, views).
func (a *Assembler) SearchResult(raw *RawSearchResult) *SearchResult {
	r := &SearchResult{
		Title:            raw.Title,
		Link:             raw.Link,
		ID:               IDFromLink(raw.Link),
		Thumbnail:        raw.Thumbnail,
		Artist:           raw.Artist,
		ShortDescription: raw.ShortDescription,
	}

	if raw.ScoreTitle != "" {
		if v, ok := ParseStarScore(raw.ScoreTitle); ok {
			r.Score = &v
		} else {
			a.warn("score", raw.ScoreTitle)
		}
	}

	var views string
	switch n := len(raw.Meta); {
	case n == 1:
		views = raw.Meta[0]
	case n == 2:
		views = raw.Meta[1]
	case n >= 3:
		r.Type = raw.Meta[0]
		r.Genre = raw.Meta[1]
		views = raw.Meta[2]
	}
	r.Views = a.count("views", views)

	return r
}

// Audio assembles the detail record of the audio with the given id.
func (a *Assembler) Audio(id string, raw *RawAudio) *Audio {
	f := raw.Fields
	if f == nil {
		f = Fields{}
	}

	r := &Audio{
		ID:      id,
		Title:   raw.Title,
		Caption: raw.Caption,
		URL:     AudioURL(a.BaseURL, id),
		Icon:    raw.Icon,
		Credits: Credits{
			Artist: raw.CreditsArtist,
			URL:    raw.CreditsURL,
			Icon:   raw.CreditsIcon,
		},
		Related:        make([]RelatedItem, 0, len(raw.Related)),
		LicensingTerms: a.convert("licensingTerms", raw.LicensingHTML),
		Media: AudioMedia{
			Rating:      parseRating(raw.RatingClass),
			DownloadURL: raw.DownloadURL,
			FileURL:     raw.FileURL,
			ShareURL:    raw.ShareURL,
		},
		AuthorComments: a.convert("authorComments", raw.AuthorCommentsHTML),
		ReviewsPresent: raw.HasReviews,
	}

	r.Info.Listens = a.count("listens", f.Text("listens"))
	r.Info.Downloads = a.count("downloads", f.Text("downloads"))
	if f.Has("votes") {
		r.Info.Votes = a.count("votes", f.Text("votes"))
	}
	if f.Has("faves") {
		r.Info.Faves = &Faves{
			Count:   a.count("faves", f.Text("faves")),
			ViewURL: raw.FavesURL,
		}
	}
	if f.Has("score") {
		r.Info.Score = a.score(f.Text("score"))
	}
	if f.Has("uploaded") {
		if ts, ok := ParseTimestamp(f["uploaded"].List()...); ok {
			r.Info.Uploaded = ts
		} else {
			a.warn("uploaded", f.Text("uploaded"))
		}
	}
	if f.Has("genre") {
		r.Info.Genre = Genre{
			ID:        genreID(raw.GenreHref),
			Name:      f.Text("genre"),
			BrowseURL: raw.GenreHref,
		}
	}
	if v := fileInfoField(f); !v.IsAbsent() {
		r.Info.FileInfo = a.fileInfo(v)
	}
	if f.Has("tags") {
		r.Info.Tags = strings.Split(f.Text("tags"), ", ")
	}
	if raw.HasFrontpage {
		fp := &Frontpaged{URL: ResolveURL(a.BaseURL, raw.FrontpageHref)}
		if ts, ok := ParseTimestamp(raw.FrontpageText); ok {
			fp.Time = ts
		} else {
			a.warn("frontpaged", raw.FrontpageText)
		}
		r.Info.Frontpaged = fp
	}

	if raw.AppearanceLabel != "" || raw.AppearanceURL != "" {
		r.Appearances = &Appearance{Label: raw.AppearanceLabel, URL: raw.AppearanceURL}
	}

	for _, rel := range raw.Related {
		item := RelatedItem{Title: rel.Title, URL: rel.URL, Artist: rel.Artist}
		if rel.URL != "" {
			item.ID = IDFromLink(rel.URL)
		}
		r.Related = append(r.Related, item)
	}

	return r
}

// Playlist assembles a playlist requested under id.
func (a *Assembler) Playlist(id string, raw *RawPlaylist) *Playlist {
	r := &Playlist{
		URL:   PlaylistURL(a.BaseURL, id),
		Items: []PlaylistItem{},
	}
	if raw == nil {
		return r
	}

	r.ID = raw.ID
	r.Title = raw.Title
	r.Thumbnail = raw.Icon
	r.Author = PlaylistAuthor{
		Name: raw.Author,
		URL:  raw.AuthorURL,
		Icon: raw.AuthorIcon,
	}

	for _, it := range raw.Items {
		item := PlaylistItem{
			ID:          it.ID,
			Title:       it.Title,
			Author:      it.Author,
			Description: it.Description,
			URL:         it.URL,
			Views:       a.count("views", it.Views),
			Genre:       it.Genre,
			Icon:        it.Icon,
		}
		if s := strings.TrimSpace(it.Score); s != "" {
			if v, ok := ParseScore(s); ok {
				item.Score = &v
			} else {
				a.warn("score", it.Score)
			}
		}
		r.Items = append(r.Items, item)
	}

	return r
}

// count parses a counter field. Empty text is silently absent.
func (a *Assembler) count(field, text string) *int {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	n, ok := ParseCount(text)
	if !ok {
		a.warn(field, text)
		return nil
	}
	return &n
}

// score keeps the raw text when it cannot be read as a number.
func (a *Assembler) score(text string) Score {
	if v, ok := ParseScore(text); ok {
		return NumberScore(v)
	}
	a.warn("score", text)
	return TextScore(text)
}

// fileInfo reads either three values (type, size, duration) or a single
// "TYPE (SIZE DURATION)" value.
func (a *Assembler) fileInfo(v FieldValue) FileInfo {
	var fi FileInfo
	var duration string

	values := v.List()
	if len(values) == 1 {
		values = splitFileInfo(values[0])
	}
	if len(values) > 0 {
		fi.Type = values[0]
	}
	if len(values) > 1 {
		fi.Size = values[1]
	}
	if len(values) > 2 {
		duration = values[2]
	}

	if duration != "" {
		if secs, ok := ParseDuration(duration); ok {
			fi.DurationSeconds = &secs
		} else {
			a.warn("fileInfo.duration", duration)
		}
	}
	return fi
}

func (a *Assembler) convert(field, html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	conv := a.Converter
	if conv == nil {
		conv = NewMarkupConverter()
	}
	text, err := conv.Convert(html)
	if err != nil {
		a.logger().Warn("rich text conversion failed", "field", field, "err", err)
		return ""
	}
	return text
}

func (a *Assembler) warn(field, value string) {
	a.logger().Warn("unparsable field", "field", field, "value", value)
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func fileInfoField(f Fields) FieldValue {
	if v := f["file_info"]; !v.IsAbsent() {
		return v
	}
	return f["file"]
}

var fileInfoPattern = regexp.MustCompile(`^(\S+)\s*\((.*)\)$`)

// splitFileInfo splits "MP3 (3.2 MB 2:30)" into its three parts.
func splitFileInfo(s string) []string {
	m := fileInfoPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return []string{s}
	}
	tokens := strings.Fields(m[2])
	if len(tokens) == 0 {
		return []string{m[1]}
	}

	n := 1
	if len(tokens) > 1 && isWord(tokens[1]) {
		n = 2
	}
	values := []string{m[1], strings.Join(tokens[:n], " ")}
	if rest := tokens[n:]; len(rest) > 0 {
		values = append(values, strings.Join(rest, " "))
	}
	return values
}

func isWord(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

// genreID reads the "genre" query parameter of a genre browse link.
func genreID(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("genre")
}

// parseRating reads the letter out of a "rated-e" class.
func parseRating(class string) string {
	for _, c := range strings.Fields(class) {
		parts := strings.Split(c, "-")
		if len(parts) > 1 && parts[1] != "" {
			return strings.ToUpper(parts[1])
		}
	}
	return ""
}

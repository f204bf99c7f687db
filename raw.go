package newgrounds

import "strings"

// FieldValue holds the raw values collected for one label of a definition
// list. A value is absent (no values), a scalar (one value) or a list.
type FieldValue struct {
	Values []string
}

// IsAbsent reports whether no values were collected.
func (v FieldValue) IsAbsent() bool {
	return len(v.Values) == 0
}

// Scalar returns the value when exactly one was collected.
func (v FieldValue) Scalar() (string, bool) {
	if len(v.Values) != 1 {
		return "", false
	}
	return v.Values[0], true
}

// List returns all collected values in document order.
func (v FieldValue) List() []string {
	return v.Values
}

// Fields is the raw field map: normalized label keys mapped to the values
// that followed the label. It is built and discarded per extraction call.
type Fields map[string]FieldValue

// Has reports whether key was seen with at least one value.
func (f Fields) Has(key string) bool {
	return !f[key].IsAbsent()
}

// Text returns the value of key as a single string: the scalar itself, or
// the list joined with a space.
func (f Fields) Text(key string) string {
	return strings.Join(f[key].Values, " ")
}

// NormalizeKey turns label text such as "File Info:" into "file_info".
func NormalizeKey(label string) string {
	label = strings.TrimSpace(label)
	label = strings.TrimSuffix(label, ":")
	return strings.ToLower(strings.Join(strings.Fields(label), "_"))
}

// RawSearchResult is the uncoerced content of one search result block.
type RawSearchResult struct {
	Title            string
	Link             string
	Thumbnail        string
	Artist           string
	ShortDescription string

	// ScoreTitle is the title attribute of the star-score element.
	ScoreTitle string

	// Meta holds the texts of the secondary-metadata value elements in
	// document order. Its length selects the layout.
	Meta []string
}

// RawAudio is the uncoerced content of an audio detail page.
type RawAudio struct {
	Title   string
	Caption string
	Icon    string

	CreditsArtist string
	CreditsURL    string
	CreditsIcon   string

	// Fields is the raw field map of every sidebar definition list.
	Fields Fields

	FavesURL  string
	GenreHref string

	HasFrontpage  bool
	FrontpageText string
	FrontpageHref string

	AppearanceLabel string
	AppearanceURL   string

	Related []RawRelated

	LicensingHTML      string
	AuthorCommentsHTML string

	// RatingClass is the class attribute of the reviewed-item heading,
	// e.g. "rated-e".
	RatingClass string
	DownloadURL string
	FileURL     string
	ShareURL    string

	HasReviews bool
}

// RawRelated is the uncoerced content of one related-item entry.
type RawRelated struct {
	URL    string
	Title  string
	Artist string
}

// RawPlaylist is the shape returned by the in-page playlist routine.
type RawPlaylist struct {
	ID         string            `json:"playlistId"`
	Title      string            `json:"playlistTitle"`
	Icon       string            `json:"playlistIcon"`
	Author     string            `json:"author"`
	AuthorIcon string            `json:"authorIcon"`
	AuthorURL  string            `json:"authorUrl"`
	Items      []RawPlaylistItem `json:"items"`
}

// RawPlaylistItem is one playlist entry as read from the rendered page.
// Numeric fields are still text.
type RawPlaylistItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Views       string `json:"views"`
	Score       string `json:"score"`
	Genre       string `json:"genre"`
	Icon        string `json:"icon"`
}

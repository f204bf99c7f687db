package newgrounds

import (
	"encoding/json"
	"strconv"
)

// Audio is the full detail record of an audio submission.
type Audio struct {
	ID      string  `json:"id"`
	Title   string  `json:"title,omitempty"`
	Caption string  `json:"caption,omitempty"`
	URL     string  `json:"url"`
	Icon    string  `json:"icon,omitempty"`
	Credits Credits `json:"credits"`

	Info AudioInfo `json:"info"`

	Appearances    *Appearance   `json:"appearances,omitempty"`
	Related        []RelatedItem `json:"related"`
	LicensingTerms string        `json:"licensingTerms"`
	Media          AudioMedia    `json:"audio"`
	AuthorComments string        `json:"authorComments,omitempty"`

	// ReviewsPresent reports whether the page has a review container.
	// Review content itself is not extracted.
	ReviewsPresent bool `json:"reviewsPresent"`
}

// Credits identifies the submitting artist.
type Credits struct {
	Artist string `json:"artist"`
	URL    string `json:"url,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// AudioInfo holds the sidebar statistics of an audio page. Uploaded is
// omitted when the upload date is missing or unreadable.
type AudioInfo struct {
	Listens    *int        `json:"listens"`
	Faves      *Faves      `json:"faves,omitempty"`
	Downloads  *int        `json:"downloads"`
	Votes      *int        `json:"votes,omitempty"`
	Score      Score       `json:"score"`
	Tags       []string    `json:"tags,omitempty"`
	Uploaded   string      `json:"uploaded,omitempty"`
	Genre      Genre       `json:"genre"`
	FileInfo   FileInfo    `json:"fileInfo"`
	Frontpaged *Frontpaged `json:"frontpaged,omitempty"`
}

// Faves describes the favourites counter and its listing page.
type Faves struct {
	Count   *int   `json:"count,omitempty"`
	ViewURL string `json:"viewUrl,omitempty"`
}

// Genre is the genre an audio was filed under.
type Genre struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	BrowseURL string `json:"browseUrl,omitempty"`
}

// FileInfo describes the audio file.
type FileInfo struct {
	Type            string `json:"type"`
	Size            string `json:"size"`
	DurationSeconds *int   `json:"durationSeconds"`
}

// Frontpaged records when an audio was featured on the front page.
type Frontpaged struct {
	// Time is omitted when the front-page date is missing or unreadable.
	Time string `json:"time,omitempty"`
	URL  string `json:"url"`
}

// Appearance is a collection or game an audio appears in.
type Appearance struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// RelatedItem is an entry of the "related" sidebar.
type RelatedItem struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	URL    string `json:"url,omitempty"`
	Artist string `json:"artist,omitempty"`
}

// AudioMedia holds the rating and the file/share links of an audio.
type AudioMedia struct {
	Rating      string `json:"rating,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	FileURL     string `json:"fileUrl,omitempty"`
	ShareURL    string `json:"shareUrl,omitempty"`
}

// Score is either a numeric score or, when the page text cannot be read as
// a number, the raw text. The zero value is an absent score.
type Score struct {
	Value float64
	Text  string
	Valid bool
}

// NumberScore returns a numeric Score.
func NumberScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

// TextScore returns a Score holding unparsed text.
func TextScore(s string) Score {
	return Score{Text: s}
}

// IsZero reports whether the score is absent.
func (s Score) IsZero() bool {
	return !s.Valid && s.Text == ""
}

// MarshalJSON encodes a number, a string, or null.
func (s Score) MarshalJSON() ([]byte, error) {
	switch {
	case s.Valid:
		return []byte(strconv.FormatFloat(s.Value, 'f', -1, 64)), nil
	case s.Text != "":
		return json.Marshal(s.Text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a number, a string, or null.
func (s *Score) UnmarshalJSON(data []byte) error {
	*s = Score{}
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &s.Text)
	}
	if err := json.Unmarshal(data, &s.Value); err != nil {
		return err
	}
	s.Valid = true
	return nil
}

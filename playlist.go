package newgrounds

// Playlist is a user playlist extracted from a rendered page.
type Playlist struct {
	ID        string         `json:"id"`
	Title     string         `json:"title,omitempty"`
	URL       string         `json:"url"`
	Thumbnail string         `json:"thumbnail"`
	Author    PlaylistAuthor `json:"author"`
	Items     []PlaylistItem `json:"items"`
}

// PlaylistAuthor identifies the playlist owner.
type PlaylistAuthor struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// PlaylistItem is a single submission contained in a playlist.
type PlaylistItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Views       *int     `json:"views"`
	Score       *float64 `json:"score"`
	Genre       string   `json:"genre,omitempty"`
	Icon        string   `json:"icon"`
}

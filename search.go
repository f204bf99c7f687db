package newgrounds

// SearchSort is a sort order accepted by the audio search page.
type SearchSort string

// SearchSort constants for SearchOptions.
const (
	SortRelevance SearchSort = "relevance"
	SortDateDesc  SearchSort = "date-desc"
	SortDateAsc   SearchSort = "date-asc"
	SortScoreDesc SearchSort = "score-desc"
	SortScoreAsc  SearchSort = "score-asc"
	SortViewsDesc SearchSort = "views-desc"
	SortViewsAsc  SearchSort = "views-asc"
)

// SearchSorts lists every supported sort order.
var SearchSorts = []SearchSort{
	SortRelevance,
	SortDateDesc,
	SortDateAsc,
	SortScoreDesc,
	SortScoreAsc,
	SortViewsDesc,
	SortViewsAsc,
}

// SearchOptions controls a single search page request.
// Zero values mean page 1 sorted by relevance.
type SearchOptions struct {
	Page int        `json:"page"`
	Sort SearchSort `json:"sortBy"`
}

// Validate returns an error if the options contain invalid fields.
func (o SearchOptions) Validate() error {
	if o.Page < 0 {
		return Errorf(EINVALID, "search page must be positive, got %d", o.Page)
	}
	if o.Sort == "" {
		return nil
	}
	for _, s := range SearchSorts {
		if o.Sort == s {
			return nil
		}
	}
	return Errorf(EINVALID, "unknown search sort %q", o.Sort)
}

// withDefaults fills zero values with page 1 and relevance sorting.
func (o SearchOptions) withDefaults() SearchOptions {
	if o.Page == 0 {
		o.Page = 1
	}
	if o.Sort == "" {
		o.Sort = SortRelevance
	}
	return o
}

// SearchResult is a single audio entry on a search results page.
type SearchResult struct {
	Title            string `json:"title"`
	Link             string `json:"link"`
	ID               string `json:"id"`
	Thumbnail        string `json:"thumbnail"`
	Artist           string `json:"artist"`
	ShortDescription string `json:"shortDescription"`

	// Score and Views are nil when the page carries no parsable value.
	Score *float64 `json:"score"`
	Views *int     `json:"views"`

	// Type and Genre are only present in the three-field metadata layout.
	Type  string `json:"type,omitempty"`
	Genre string `json:"genre,omitempty"`
}

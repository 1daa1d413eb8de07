package source

// SearchEntry is one search result.
type SearchEntry struct {
	Title        string `json:"title"`
	ReleaseLabel string `json:"release"`
	ImageURL     string `json:"img"`
	PageURL      string `json:"url"`
}

func (e SearchEntry) String() string {
	if e.ReleaseLabel == "" {
		return e.Title
	}
	return e.Title + " (" + e.ReleaseLabel + ")"
}

// SearchPage is the result of one search results page scrape.
type SearchPage struct {
	Keyword    string         `json:"keyword"`
	Page       int            `json:"page"`
	Entries    []SearchEntry  `json:"entries"`
	Pagination PaginationInfo `json:"pagination"`
}

// ByTitle keys the entries by title. Later duplicates overwrite earlier ones.
func (p *SearchPage) ByTitle() map[string]SearchEntry {
	return SearchByTitle(p.Entries)
}

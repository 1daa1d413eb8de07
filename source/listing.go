// Package source defines the records scraped from the site.
package source

// ListingEntry is one item of the paginated home listing.
type ListingEntry struct {
	Title        string `json:"title"`
	EpisodeLabel string `json:"episode"`
	ImageURL     string `json:"img"`
	PageURL      string `json:"url"`
}

func (e ListingEntry) String() string {
	if e.EpisodeLabel == "" {
		return e.Title
	}
	return e.Title + " - " + e.EpisodeLabel
}

// ListingPage is the result of one home page scrape.
type ListingPage struct {
	Page       int            `json:"page"`
	Entries    []ListingEntry `json:"entries"`
	Pagination PaginationInfo `json:"pagination"`
}

// ByTitle keys the entries by title. Later duplicates overwrite earlier ones.
func (p *ListingPage) ByTitle() map[string]ListingEntry {
	return ListingByTitle(p.Entries)
}

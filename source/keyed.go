package source

import "github.com/samber/lo"

// ListingByTitle is the title-keyed view of listing entries.
func ListingByTitle(entries []ListingEntry) map[string]ListingEntry {
	return lo.KeyBy(entries, func(e ListingEntry) string { return e.Title })
}

// SearchByTitle is the title-keyed view of search entries.
func SearchByTitle(entries []SearchEntry) map[string]SearchEntry {
	return lo.KeyBy(entries, func(e SearchEntry) string { return e.Title })
}

// KeyedListingPage is a ListingPage with its entries keyed by title.
type KeyedListingPage struct {
	Page       int                     `json:"page"`
	Entries    map[string]ListingEntry `json:"entries"`
	Pagination PaginationInfo          `json:"pagination"`
}

// KeyedSearchPage is a SearchPage with its entries keyed by title.
type KeyedSearchPage struct {
	Keyword    string                 `json:"keyword"`
	Page       int                    `json:"page"`
	Entries    map[string]SearchEntry `json:"entries"`
	Pagination PaginationInfo         `json:"pagination"`
}

// Keyed returns the title-keyed view of p.
func (p *ListingPage) Keyed() *KeyedListingPage {
	return &KeyedListingPage{Page: p.Page, Entries: p.ByTitle(), Pagination: p.Pagination}
}

// Keyed returns the title-keyed view of p.
func (p *SearchPage) Keyed() *KeyedSearchPage {
	return &KeyedSearchPage{Keyword: p.Keyword, Page: p.Page, Entries: p.ByTitle(), Pagination: p.Pagination}
}

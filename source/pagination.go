package source

// PaginationInfo locates a page within a paginated listing. Both values are at least 1.
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// SinglePage is the pagination of markup without pagination controls.
var SinglePage = PaginationInfo{CurrentPage: 1, TotalPages: 1}

// HasNext reports whether a page follows the current one.
func (p PaginationInfo) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// HasPrevious reports whether a page precedes the current one.
func (p PaginationInfo) HasPrevious() bool {
	return p.CurrentPage > 1
}

// Package extract turns the site's HTML into source records.
//
// Every extractor is a pure function of a parsed document. Missing elements
// never fail an extraction: optional fields fall back to documented defaults
// and entries lacking their required elements are skipped.
package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/anitaku/source"
	"github.com/samber/lo"
)

// Kind tags the page an HTML document was fetched from.
type Kind string

const (
	KindListing Kind = "listing"
	KindSearch  Kind = "search"
	KindDetail  Kind = "detail"
	KindEpisode Kind = "episode"
)

// ErrUnknownKind is returned for a page kind outside Kinds.
var ErrUnknownKind = errors.New("unknown page kind")

// Kinds lists every supported page kind.
func Kinds() []Kind {
	return []Kind{KindListing, KindSearch, KindDetail, KindEpisode}
}

// ParseKind validates a page kind name.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(Kinds(), kind) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// Result is the record set extracted from one document. Only the fields of
// its Kind are set; Pagination accompanies listing and search results.
type Result struct {
	Kind       Kind                   `json:"kind"`
	Listing    []source.ListingEntry  `json:"listing,omitempty"`
	Search     []source.SearchEntry   `json:"search,omitempty"`
	Detail     *source.DetailRecord   `json:"detail,omitempty"`
	Episode    *source.EpisodePage    `json:"episode,omitempty"`
	Pagination *source.PaginationInfo `json:"pagination,omitempty"`
}

// Extractor resolves relative URLs against the site base it was created with.
type Extractor struct {
	base string
}

// New returns an Extractor for the site rooted at base (no trailing slash).
func New(base string) *Extractor {
	return &Extractor{base: strings.TrimRight(base, "/")}
}

// Base returns the site root URLs are resolved against.
func (e *Extractor) Base() string {
	return e.base
}

// Extract parses html once and runs the extractor for kind.
func (e *Extractor) Extract(kind Kind, html io.Reader) (*Result, error) {
	if !lo.Contains(Kinds(), kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	result := &Result{Kind: kind}
	switch kind {
	case KindListing:
		result.Listing = e.Listing(doc)
		result.Pagination = lo.ToPtr(ListingPagination(doc))
	case KindSearch:
		result.Search = e.Search(doc)
		result.Pagination = lo.ToPtr(SearchPagination(doc))
	case KindDetail:
		result.Detail = e.Detail(doc)
	case KindEpisode:
		result.Episode = e.Episode(doc)
	}

	return result, nil
}

// Parse builds a document from raw HTML text.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

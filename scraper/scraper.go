// Package scraper fetches the site's pages and extracts their records.
package scraper

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/extract"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/network"
	"github.com/anisan-cli/anitaku/source"
	"github.com/anisan-cli/anitaku/util"
	"github.com/spf13/viper"
)

// ErrEmptyKeyword is returned by Search for a blank keyword.
var ErrEmptyKeyword = errors.New("search keyword is empty")

// Fetcher returns the HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Scraper builds the site's endpoint URLs, fetches them and runs the matching extractor.
// Fetch errors are returned as is.
type Scraper struct {
	fetcher   Fetcher
	extractor *extract.Extractor
}

// New returns a Scraper for the site rooted at base.
func New(base string, fetcher Fetcher) *Scraper {
	return &Scraper{
		fetcher:   fetcher,
		extractor: extract.New(base),
	}
}

// FromConfig returns a Scraper for site.base_url using the configured fetcher.
func FromConfig() *Scraper {
	base := viper.GetString(key.SiteBaseURL)
	if base == "" {
		base = constant.BaseURL
	}
	return New(base, network.NewFetcher())
}

// Base returns the site root.
func (s *Scraper) Base() string {
	return s.extractor.Base()
}

// HomeURL is the listing endpoint for page.
func (s *Scraper) HomeURL(page int) string {
	return s.Base() + constant.HomePath + "?page=" + strconv.Itoa(clampPage(page))
}

// SearchURL is the search endpoint for keyword and page.
func (s *Scraper) SearchURL(keyword string, page int) string {
	return s.Base() + constant.SearchPath +
		"?keyword=" + util.EscapeComponent(keyword) +
		"&page=" + strconv.Itoa(clampPage(page))
}

// PageURL resolves a detail or episode path, absolute URLs included, against the site root.
func (s *Scraper) PageURL(path string) string {
	return extract.Normalize(s.Base(), strings.TrimSpace(path))
}

// Home scrapes a page of the recently updated listing. Pages below 1 read as 1.
func (s *Scraper) Home(ctx context.Context, page int) (*source.ListingPage, error) {
	page = clampPage(page)

	doc, err := s.document(ctx, s.HomeURL(page))
	if err != nil {
		return nil, err
	}

	result := &source.ListingPage{
		Page:       page,
		Entries:    s.extractor.Listing(doc),
		Pagination: extract.ListingPagination(doc),
	}
	log.Infof("home page %d: %s", page, util.Quantify(len(result.Entries), "entry", "entries"))
	return result, nil
}

// Search scrapes a page of search results for keyword.
func (s *Scraper) Search(ctx context.Context, keyword string, page int) (*source.SearchPage, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	page = clampPage(page)

	doc, err := s.document(ctx, s.SearchURL(keyword, page))
	if err != nil {
		return nil, err
	}

	result := &source.SearchPage{
		Keyword:    keyword,
		Page:       page,
		Entries:    s.extractor.Search(doc),
		Pagination: extract.SearchPagination(doc),
	}
	log.Infof("search %q page %d: %s", keyword, page, util.Quantify(len(result.Entries), "result", "results"))
	return result, nil
}

// Details scrapes an anime info page.
func (s *Scraper) Details(ctx context.Context, path string) (*source.DetailRecord, error) {
	doc, err := s.document(ctx, s.PageURL(path))
	if err != nil {
		return nil, err
	}
	return s.extractor.Detail(doc), nil
}

// Episode scrapes an episode page.
func (s *Scraper) Episode(ctx context.Context, path string) (*source.EpisodePage, error) {
	doc, err := s.document(ctx, s.PageURL(path))
	if err != nil {
		return nil, err
	}
	return s.extractor.Episode(doc), nil
}

func clampPage(page int) int {
	return util.Max(page, 1)
}

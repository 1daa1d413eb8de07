package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/anitaku/extract"
)

// document fetches url and parses its HTML.
func (s *Scraper) document(ctx context.Context, url string) (*goquery.Document, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return extract.Parse(html)
}

package render

import (
	"fmt"

	"github.com/anisan-cli/anitaku/extract"
	"github.com/anisan-cli/anitaku/source"
)

// Listing writes a home listing page.
func Listing(opts Options, page *source.ListingPage) error {
	if opts.Format == Text {
		return writeText(opts, listingText(opts, page))
	}

	if opts.ByTitle {
		return write(opts, page.Keyed())
	}
	return write(opts, page)
}

// Search writes a search results page.
func Search(opts Options, page *source.SearchPage) error {
	if opts.Format == Text {
		return writeText(opts, searchText(opts, page))
	}

	if opts.ByTitle {
		return write(opts, page.Keyed())
	}
	return write(opts, page)
}

// Detail writes an anime info record.
func Detail(opts Options, record *source.DetailRecord) error {
	if opts.Format == Text {
		return writeText(opts, detailText(opts, record))
	}
	return write(opts, record)
}

// Episode writes an episode page.
func Episode(opts Options, page *source.EpisodePage) error {
	if opts.Format == Text {
		return writeText(opts, episodeText(opts, page))
	}
	return write(opts, page)
}

// write encodes v in the structured format opts selects.
func write(opts Options, v any) error {
	if opts.Format == YAML {
		return writeYAML(opts, v)
	}
	return writeJSON(opts, v)
}

// Result writes whatever an extraction produced.
func Result(opts Options, result *extract.Result) error {
	pagination := source.SinglePage
	if result.Pagination != nil {
		pagination = *result.Pagination
	}

	switch result.Kind {
	case extract.KindListing:
		return Listing(opts, &source.ListingPage{Page: pagination.CurrentPage, Entries: result.Listing, Pagination: pagination})
	case extract.KindSearch:
		return Search(opts, &source.SearchPage{Page: pagination.CurrentPage, Entries: result.Search, Pagination: pagination})
	case extract.KindDetail:
		return Detail(opts, result.Detail)
	case extract.KindEpisode:
		return Episode(opts, result.Episode)
	default:
		return fmt.Errorf("%w: %q", extract.ErrUnknownKind, result.Kind)
	}
}

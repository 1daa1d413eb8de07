// Package paginate renders pagination links for scraped pages.
package paginate

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/anisan-cli/anitaku/source"
	"github.com/anisan-cli/anitaku/util"
)

const (
	// ClassCurrent marks the current page of the listing.
	ClassCurrent = "current"
	// ClassActive marks the current page of search results.
	ClassActive = "active"

	ellipsis = `<span class="ellipsis">...</span>`
)

// Options controls the generated links.
type Options struct {
	// Window is how many pages are shown on each side of the current one.
	Window int
	// Class is set on the current page's anchor.
	Class string
	// Params are written before the page parameter of every link.
	Params url.Values
}

// Listing returns options for home listing links.
func Listing(window int) Options {
	return Options{Window: window, Class: ClassCurrent}
}

// Search returns options for search result links keeping keyword.
func Search(keyword string, window int) Options {
	return Options{Window: window, Class: ClassActive, Params: url.Values{"keyword": {keyword}}}
}

// Pages lists the page numbers shown for info; zero stands for a gap.
// The first and last pages are always present, a gap of a single page is filled in.
func Pages(info source.PaginationInfo, window int) []int {
	total := util.Max(info.TotalPages, 1)
	current := util.Min(util.Max(info.CurrentPage, 1), total)
	window = util.Max(window, 0)

	from := util.Max(current-window, 1)
	to := util.Min(current+window, total)

	var pages []int
	add := func(n int) {
		if len(pages) > 0 {
			last := pages[len(pages)-1]
			switch {
			case n-last == 2:
				pages = append(pages, last+1)
			case n-last > 2:
				pages = append(pages, 0)
			}
		}
		pages = append(pages, n)
	}

	if from > 1 {
		add(1)
	}
	for n := from; n <= to; n++ {
		add(n)
	}
	if to < total {
		add(total)
	}

	return pages
}

// Links renders anchors of the form <a href="?page=N">N</a> for info.
func Links(info source.PaginationInfo, opts Options) string {
	current := util.Min(util.Max(info.CurrentPage, 1), util.Max(info.TotalPages, 1))
	prefix := "?"
	if len(opts.Params) > 0 {
		prefix += opts.Params.Encode() + "&"
	}

	var b strings.Builder
	for _, n := range Pages(info, opts.Window) {
		if n == 0 {
			b.WriteString(ellipsis)
			continue
		}

		href := html.EscapeString(fmt.Sprintf("%spage=%d", prefix, n))
		if n == current && opts.Class != "" {
			fmt.Fprintf(&b, `<a href="%s" class="%s">%d</a>`, href, html.EscapeString(opts.Class), n)
		} else {
			fmt.Fprintf(&b, `<a href="%s">%d</a>`, href, n)
		}
	}

	return b.String()
}

package extract

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/anitaku/source"
	"github.com/anisan-cli/anitaku/util"
)

var (
	listingPager = compile("ul.pagination-list")
	selectedPage = compile("li.selected")

	searchPager   = chainOf(".anime_name_pagination .pagination", ".pagination")
	searchCurrent = chainOf("li.selected", "li.active", ".active")
)

// ListingPagination reads the home page pagination list: the selected item is
// the current page, the largest numeric link the total.
func ListingPagination(doc *goquery.Document) source.PaginationInfo {
	list, ok := listingPager.first(doc.Selection).Get()
	if !ok {
		return source.SinglePage
	}

	current := pageNumber(textOf(list, selectedPage))
	total := 1
	anchorElement.all(list).Each(func(_ int, a *goquery.Selection) {
		if n, ok := parsePage(text(a)); ok {
			total = util.Max(total, n)
		}
	})

	return pagination(current, total)
}

// SearchPagination reads the search results pagination: the active item is
// the current page, the last link the total, by its text or else its page= parameter.
func SearchPagination(doc *goquery.Document) source.PaginationInfo {
	container, ok := searchPager.first(doc.Selection).Get()
	if !ok {
		return source.SinglePage
	}

	current := 1
	if active, ok := searchCurrent.first(container).Get(); ok {
		current = pageNumber(text(active))
	}

	total := 1
	if last := anchorElement.all(container).Last(); last.Length() > 0 {
		if n, ok := parsePage(text(last)); ok {
			total = n
		} else {
			total = pageNumber(pageParam(attr(last, "href")))
		}
	}

	return pagination(current, total)
}

func pagination(current, total int) source.PaginationInfo {
	return source.PaginationInfo{CurrentPage: current, TotalPages: util.Max(current, total)}
}

// parsePage accepts positive integers only.
func parsePage(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// pageNumber is parsePage falling back to 1.
func pageNumber(s string) int {
	if n, ok := parsePage(s); ok {
		return n
	}
	return 1
}

func pageParam(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("page")
}

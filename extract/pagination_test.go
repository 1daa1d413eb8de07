package extract

import (
	"testing"

	"github.com/anisan-cli/anitaku/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestListingPagination(t *testing.T) {
	Convey("Given a home page pagination list", t, func() {
		info := ListingPagination(fixture(t, "listing.html"))

		Convey("The selected item is current and the largest number is the total", func() {
			So(info, ShouldResemble, source.PaginationInfo{CurrentPage: 2, TotalPages: 42})
		})
	})

	Convey("Without pagination markup there is a single page", t, func() {
		So(ListingPagination(fixture(t, "empty.html")), ShouldResemble, source.PaginationInfo{CurrentPage: 1, TotalPages: 1})
	})

	Convey("Without a selected item the first page is current", t, func() {
		doc := inline(t, `<ul class="pagination-list"><li><a>1</a></li><li><a>2</a></li></ul>`)
		So(ListingPagination(doc), ShouldResemble, source.PaginationInfo{CurrentPage: 1, TotalPages: 2})
	})

	Convey("The total never falls below the current page", t, func() {
		doc := inline(t, `<ul class="pagination-list"><li><a>1</a></li><li class="selected"><span>9</span></li></ul>`)
		So(ListingPagination(doc), ShouldResemble, source.PaginationInfo{CurrentPage: 9, TotalPages: 9})
	})
}

func TestSearchPagination(t *testing.T) {
	Convey("Given a search page whose last link is not numeric", t, func() {
		info := SearchPagination(fixture(t, "search.html"))

		Convey("The total is read from its page parameter", func() {
			So(info, ShouldResemble, source.PaginationInfo{CurrentPage: 2, TotalPages: 7})
		})
	})

	Convey("Without pagination markup there is a single page", t, func() {
		So(SearchPagination(fixture(t, "empty.html")), ShouldResemble, source.SinglePage)
	})

	Convey("Given a generic pagination container with an active item", t, func() {
		doc := inline(t, `<div class="pagination"><ul>
			<li><a href="?page=1">1</a></li>
			<li class="active"><a href="?page=3">3</a></li>
			<li><a href="?page=5">5</a></li>
		</ul></div>`)

		Convey("The last numeric link is the total", func() {
			So(SearchPagination(doc), ShouldResemble, source.PaginationInfo{CurrentPage: 3, TotalPages: 5})
		})
	})

	Convey("Given a pagination container without links", t, func() {
		doc := inline(t, `<div class="pagination"></div>`)

		Convey("There is a single page", func() {
			So(SearchPagination(doc), ShouldResemble, source.SinglePage)
		})
	})
}

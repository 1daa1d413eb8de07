package paginate

import (
	"testing"

	"github.com/anisan-cli/anitaku/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPages(t *testing.T) {
	Convey("A single page shows just itself", t, func() {
		So(Pages(source.SinglePage, 2), ShouldResemble, []int{1})
	})

	Convey("Pages within the window are all shown", t, func() {
		So(Pages(source.PaginationInfo{CurrentPage: 2, TotalPages: 4}, 2), ShouldResemble, []int{1, 2, 3, 4})
	})

	Convey("Gaps become zero markers", t, func() {
		So(Pages(source.PaginationInfo{CurrentPage: 10, TotalPages: 20}, 2), ShouldResemble, []int{1, 0, 8, 9, 10, 11, 12, 0, 20})
	})

	Convey("A gap of one page is filled in", t, func() {
		So(Pages(source.PaginationInfo{CurrentPage: 4, TotalPages: 7}, 1), ShouldResemble, []int{1, 2, 3, 4, 5, 6, 7})
	})

	Convey("An out of range current page is clamped", t, func() {
		So(Pages(source.PaginationInfo{CurrentPage: 9, TotalPages: 3}, 1), ShouldResemble, []int{1, 2, 3})
		So(Pages(source.PaginationInfo{CurrentPage: 0, TotalPages: 0}, 1), ShouldResemble, []int{1})
	})
}

func TestLinks(t *testing.T) {
	Convey("Listing links mark the current page", t, func() {
		got := Links(source.PaginationInfo{CurrentPage: 2, TotalPages: 3}, Listing(2))
		So(got, ShouldEqual,
			`<a href="?page=1">1</a>`+
				`<a href="?page=2" class="current">2</a>`+
				`<a href="?page=3">3</a>`)
	})

	Convey("Search links keep the keyword before the page", t, func() {
		got := Links(source.PaginationInfo{CurrentPage: 1, TotalPages: 2}, Search("one piece", 1))
		So(got, ShouldEqual,
			`<a href="?keyword=one+piece&amp;page=1" class="active">1</a>`+
				`<a href="?keyword=one+piece&amp;page=2">2</a>`)
	})

	Convey("Truncated ranges get ellipsis markers", t, func() {
		got := Links(source.PaginationInfo{CurrentPage: 5, TotalPages: 9}, Listing(1))
		So(got, ShouldEqual,
			`<a href="?page=1">1</a>`+
				`<span class="ellipsis">...</span>`+
				`<a href="?page=4">4</a>`+
				`<a href="?page=5" class="current">5</a>`+
				`<a href="?page=6">6</a>`+
				`<span class="ellipsis">...</span>`+
				`<a href="?page=9">9</a>`)
	})
}

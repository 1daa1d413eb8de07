package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseKind(t *testing.T) {
	Convey("Known kinds parse regardless of case", t, func() {
		for _, name := range []string{"listing", "Search", " DETAIL ", "episode"} {
			kind, err := ParseKind(name)
			So(err, ShouldBeNil)
			So(Kinds(), ShouldContain, kind)
		}
	})

	Convey("Unknown kinds are rejected", t, func() {
		_, err := ParseKind("movie")
		So(errors.Is(err, ErrUnknownKind), ShouldBeTrue)
	})
}

func TestExtract(t *testing.T) {
	e := New(testBase)

	open := func(name string) *os.File {
		f, err := os.Open(filepath.Join("testdata", name))
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = f.Close() })
		return f
	}

	Convey("A listing result carries entries and pagination", t, func() {
		result, err := e.Extract(KindListing, open("listing.html"))
		So(err, ShouldBeNil)
		So(result.Kind, ShouldEqual, KindListing)
		So(result.Listing, ShouldHaveLength, 2)
		So(result.Pagination, ShouldNotBeNil)
		So(result.Pagination.TotalPages, ShouldEqual, 42)
		So(result.Search, ShouldBeNil)
	})

	Convey("A search result carries entries and pagination", t, func() {
		result, err := e.Extract(KindSearch, open("search.html"))
		So(err, ShouldBeNil)
		So(result.Search, ShouldHaveLength, 3)
		So(result.Pagination.CurrentPage, ShouldEqual, 2)
	})

	Convey("A detail result has no pagination", t, func() {
		result, err := e.Extract(KindDetail, open("detail.html"))
		So(err, ShouldBeNil)
		So(result.Detail.Title, ShouldEqual, "Naruto")
		So(result.Pagination, ShouldBeNil)
	})

	Convey("An episode result carries the episode page", t, func() {
		result, err := e.Extract(KindEpisode, open("episode.html"))
		So(err, ShouldBeNil)
		So(result.Episode.EpisodeNumber, ShouldEqual, "5")
	})

	Convey("An unknown kind fails before parsing", t, func() {
		_, err := e.Extract(Kind("movie"), strings.NewReader("<html></html>"))
		So(errors.Is(err, ErrUnknownKind), ShouldBeTrue)
	})

	Convey("Extracting the same document twice gives the same result", t, func() {
		first, err := e.Extract(KindSearch, open("search.html"))
		So(err, ShouldBeNil)
		second, err := e.Extract(KindSearch, open("search.html"))
		So(err, ShouldBeNil)
		So(second, ShouldResemble, first)
	})
}

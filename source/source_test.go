package source

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestByTitle(t *testing.T) {
	Convey("Given listing entries with a duplicate title", t, func() {
		page := &ListingPage{Entries: []ListingEntry{
			{Title: "Naruto", EpisodeLabel: "Episode 1"},
			{Title: "Bleach", EpisodeLabel: "Episode 3"},
			{Title: "Naruto", EpisodeLabel: "Episode 2"},
		}}

		Convey("The ordered slice keeps all of them", func() {
			So(page.Entries, ShouldHaveLength, 3)
		})

		Convey("The keyed view keeps the last duplicate", func() {
			keyed := page.ByTitle()
			So(keyed, ShouldHaveLength, 2)
			So(keyed["Naruto"].EpisodeLabel, ShouldEqual, "Episode 2")
		})
	})

	Convey("Search entries are keyed the same way", t, func() {
		page := &SearchPage{Entries: []SearchEntry{
			{Title: "One Piece", ReleaseLabel: "Released: 1999"},
			{Title: "One Piece", ReleaseLabel: "Released: 2023"},
		}}
		So(page.ByTitle()["One Piece"].ReleaseLabel, ShouldEqual, "Released: 2023")
	})

	Convey("The keyed page keeps the page fields", t, func() {
		page := &SearchPage{
			Keyword:    "one piece",
			Page:       2,
			Entries:    []SearchEntry{{Title: "One Piece"}},
			Pagination: PaginationInfo{CurrentPage: 2, TotalPages: 5},
		}
		keyed := page.Keyed()
		So(keyed.Keyword, ShouldEqual, "one piece")
		So(keyed.Page, ShouldEqual, 2)
		So(keyed.Pagination, ShouldResemble, page.Pagination)
		So(keyed.Entries, ShouldContainKey, "One Piece")
	})
}

func TestStrings(t *testing.T) {
	Convey("String forms", t, func() {
		So(ListingEntry{Title: "Naruto", EpisodeLabel: "Episode 5"}.String(), ShouldEqual, "Naruto - Episode 5")
		So(ListingEntry{Title: "Naruto"}.String(), ShouldEqual, "Naruto")
		So(SearchEntry{Title: "Bleach", ReleaseLabel: "Released: 2004"}.String(), ShouldEqual, "Bleach (Released: 2004)")
	})
}

func TestPaginationInfo(t *testing.T) {
	Convey("Pagination navigation", t, func() {
		So(SinglePage.HasNext(), ShouldBeFalse)
		So(SinglePage.HasPrevious(), ShouldBeFalse)
		middle := PaginationInfo{CurrentPage: 2, TotalPages: 3}
		So(middle.HasNext(), ShouldBeTrue)
		So(middle.HasPrevious(), ShouldBeTrue)
	})
}

func TestEpisodePageJSON(t *testing.T) {
	Convey("Given an episode page with only a title", t, func() {
		page := EpisodePage{FullTitle: "Naruto", Servers: []Server{}, RelatedEpisodes: []RelatedEpisode{}}
		data, err := json.Marshal(page)
		So(err, ShouldBeNil)

		var decoded map[string]any
		So(json.Unmarshal(data, &decoded), ShouldBeNil)

		Convey("Missing fields are omitted", func() {
			So(decoded, ShouldNotContainKey, "animeName")
			So(decoded, ShouldNotContainKey, "category")
			So(decoded, ShouldNotContainKey, "nextEpisode")
		})

		Convey("Lists are always present", func() {
			So(decoded, ShouldContainKey, "servers")
			So(decoded, ShouldContainKey, "relatedEpisodes")
		})
	})
}

func TestFindServer(t *testing.T) {
	Convey("Given an episode page with servers", t, func() {
		page := &EpisodePage{Servers: []Server{
			{Name: "Anime", URL: "//embed.one/1", ServerType: "anime"},
			{Name: "Vidstreaming", URL: "//embed.two/1", ServerType: "vidcdn"},
		}}

		Convey("An empty name picks the first server", func() {
			s, ok := page.FindServer("")
			So(ok, ShouldBeTrue)
			So(s.Name, ShouldEqual, "Anime")
		})

		Convey("Names match regardless of case", func() {
			s, ok := page.FindServer("vidSTREAMING")
			So(ok, ShouldBeTrue)
			So(s.URL, ShouldEqual, "//embed.two/1")
		})

		Convey("Unknown names are not found", func() {
			_, ok := page.FindServer("streamsb")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("A page without servers finds nothing", t, func() {
		_, ok := (&EpisodePage{}).FindServer("")
		So(ok, ShouldBeFalse)
	})
}

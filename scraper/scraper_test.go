package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/anisan-cli/anitaku/network"
	. "github.com/smartystreets/goconvey/convey"
)

const testBase = "https://anitaku.bz"

// fakeFetcher serves fixtures by URL and records what was requested.
type fakeFetcher struct {
	pages     map[string]string
	requested []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.requested = append(f.requested, url)
	html, ok := f.pages[url]
	if !ok {
		return "", &network.FetchError{URL: url, StatusCode: http.StatusNotFound, Err: errors.New("not found")}
	}
	return html, nil
}

func fixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "extract", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestURLs(t *testing.T) {
	Convey("Given a scraper for the site", t, func() {
		s := New(testBase+"/", &fakeFetcher{})

		Convey("The home URL carries the page", func() {
			So(s.HomeURL(3), ShouldEqual, testBase+"/home.html?page=3")
		})

		Convey("Pages below 1 read as 1", func() {
			So(s.HomeURL(0), ShouldEqual, testBase+"/home.html?page=1")
			So(s.SearchURL("naruto", -4), ShouldEqual, testBase+"/search.html?keyword=naruto&page=1")
		})

		Convey("The search keyword is component-escaped", func() {
			So(s.SearchURL("one piece & co", 2), ShouldEqual, testBase+"/search.html?keyword=one%20piece%20%26%20co&page=2")
		})

		Convey("Paths and absolute URLs both resolve", func() {
			So(s.PageURL("/category/naruto"), ShouldEqual, testBase+"/category/naruto")
			So(s.PageURL("category/naruto"), ShouldEqual, testBase+"/category/naruto")
			So(s.PageURL(" https://anitaku.bz/naruto-episode-5 "), ShouldEqual, testBase+"/naruto-episode-5")
		})
	})
}

func TestScrape(t *testing.T) {
	Convey("Given fixtures served by a fake fetcher", t, func() {
		fetcher := &fakeFetcher{pages: map[string]string{
			testBase + "/home.html?page=2":                  fixture(t, "listing.html"),
			testBase + "/search.html?keyword=naruto&page=1": fixture(t, "search.html"),
			testBase + "/category/naruto":                   fixture(t, "detail.html"),
			testBase + "/naruto-episode-5":                  fixture(t, "episode.html"),
		}}
		s := New(testBase, fetcher)
		ctx := context.Background()

		Convey("Home returns the listing page", func() {
			page, err := s.Home(ctx, 2)
			So(err, ShouldBeNil)
			So(page.Page, ShouldEqual, 2)
			So(page.Entries, ShouldHaveLength, 2)
			So(page.Pagination.TotalPages, ShouldEqual, 42)
		})

		Convey("Search returns the results page", func() {
			page, err := s.Search(ctx, "  naruto ", 0)
			So(err, ShouldBeNil)
			So(page.Keyword, ShouldEqual, "naruto")
			So(page.Page, ShouldEqual, 1)
			So(page.Entries, ShouldHaveLength, 3)
			So(page.Pagination.CurrentPage, ShouldEqual, 2)
		})

		Convey("A blank keyword is rejected without fetching", func() {
			_, err := s.Search(ctx, "   ", 1)
			So(err, ShouldEqual, ErrEmptyKeyword)
			So(fetcher.requested, ShouldBeEmpty)
		})

		Convey("Details accepts a path", func() {
			record, err := s.Details(ctx, "/category/naruto")
			So(err, ShouldBeNil)
			So(record.Title, ShouldEqual, "Naruto")
			So(record.Episodes, ShouldHaveLength, 3)
		})

		Convey("Episode accepts an absolute URL", func() {
			page, err := s.Episode(ctx, testBase+"/naruto-episode-5")
			So(err, ShouldBeNil)
			So(page.AnimeName, ShouldEqual, "Naruto")
			So(page.Servers, ShouldHaveLength, 3)
		})

		Convey("Fetch errors come back unmodified", func() {
			_, err := s.Details(ctx, "/category/unknown")

			var fetchErr *network.FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.URL, ShouldEqual, testBase+"/category/unknown")
			So(fetchErr.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestScrapeThroughProxy(t *testing.T) {
	Convey("Given a proxy serving the home page", t, func() {
		listing := fixture(t, "listing.html")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("url") != testBase+"/home.html?page=1" {
				http.Error(w, "unexpected target", http.StatusBadGateway)
				return
			}
			fmt.Fprint(w, listing)
		}))
		defer server.Close()

		s := New(testBase, &network.Fetcher{Client: server.Client(), Proxy: server.URL + "/raw?url="})

		Convey("The listing is scraped end to end", func() {
			page, err := s.Home(context.Background(), 1)
			So(err, ShouldBeNil)
			So(page.Entries[0].Title, ShouldEqual, "Naruto")
		})

		Convey("A proxy failure is a FetchError", func() {
			_, err := s.Search(context.Background(), "naruto", 1)

			var fetchErr *network.FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.StatusCode, ShouldEqual, http.StatusBadGateway)
		})
	})
}

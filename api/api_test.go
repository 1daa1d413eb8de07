package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/anisan-cli/anitaku/network"
	"github.com/anisan-cli/anitaku/scraper"
	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

const testBase = "https://anitaku.bz"

type fakeFetcher map[string]string

func (f fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	if html, ok := f[url]; ok {
		return html, nil
	}
	return "", &network.FetchError{URL: url, StatusCode: http.StatusServiceUnavailable, Err: errors.New("unavailable")}
}

func fixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "extract", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorDetail    `json:"error"`
}

func get(router *gin.Engine, target string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRouter(t *testing.T) {
	Convey("Given a router over fixture pages", t, func() {
		s := scraper.New(testBase, fakeFetcher{
			testBase + "/home.html?page=1":                  fixture(t, "listing.html"),
			testBase + "/search.html?keyword=naruto&page=2": fixture(t, "search.html"),
			testBase + "/category/naruto":                   fixture(t, "detail.html"),
			testBase + "/naruto-episode-5":                  fixture(t, "episode.html"),
		})
		router := NewRouter(s, Options{Mode: gin.TestMode, Window: 1})

		Convey("Health reports the site", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			So(w.Code, ShouldEqual, http.StatusOK)

			var health healthData
			So(json.Unmarshal(w.Body.Bytes(), &health), ShouldBeNil)
			So(health.Status, ShouldEqual, "ok")
			So(health.Site, ShouldEqual, testBase)
		})

		Convey("Home defaults to the first page", func() {
			w, body := get(router, "/api/v1/home?page=abc")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(body.Success, ShouldBeTrue)

			var data struct {
				Result struct {
					Entries []map[string]string `json:"entries"`
				} `json:"result"`
				Links string `json:"links"`
			}
			So(json.Unmarshal(body.Data, &data), ShouldBeNil)
			So(data.Result.Entries, ShouldHaveLength, 2)
			So(data.Links, ShouldContainSubstring, `<a href="?page=2" class="current">2</a>`)
		})

		Convey("Home can key entries by title", func() {
			_, body := get(router, "/api/v1/home?by_title=true")

			var data struct {
				Result struct {
					Entries map[string]map[string]string `json:"entries"`
				} `json:"result"`
			}
			So(json.Unmarshal(body.Data, &data), ShouldBeNil)
			So(data.Result.Entries, ShouldContainKey, "One Piece")
		})

		Convey("Search reads the search parameter", func() {
			w, body := get(router, "/api/v1/search?search=naruto&page=2")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(string(body.Data), ShouldContainSubstring, "Naruto Movie")
			So(string(body.Data), ShouldContainSubstring, `class=\"active\"`)
		})

		Convey("Search accepts keyword too", func() {
			w, _ := get(router, "/api/v1/search?keyword=naruto&page=2")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Search without a keyword is a bad request", func() {
			w, body := get(router, "/api/v1/search")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(body.Success, ShouldBeFalse)
			So(body.Error.Code, ShouldEqual, ErrCodeInvalidInput)
		})

		Convey("Details and episode take a path", func() {
			w, body := get(router, "/api/v1/details?path=/category/naruto")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(string(body.Data), ShouldContainSubstring, `"title":"Naruto"`)

			w, body = get(router, "/api/v1/episode?url="+testBase+"/naruto-episode-5")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(string(body.Data), ShouldContainSubstring, `"episodeNumber":"5"`)
		})

		Convey("A fetch failure is a bad gateway", func() {
			w, body := get(router, "/api/v1/details?path=/category/missing")
			So(w.Code, ShouldEqual, http.StatusBadGateway)
			So(body.Success, ShouldBeFalse)
			So(body.Error.Code, ShouldEqual, ErrCodeFetchFailed)
		})

		Convey("Pagination links are generated without fetching", func() {
			w, body := get(router, "/api/v1/pagination?kind=search&keyword=one%20piece&page=3&total=10")
			So(w.Code, ShouldEqual, http.StatusOK)

			var data paginationData
			So(json.Unmarshal(body.Data, &data), ShouldBeNil)
			So(data.Pages, ShouldResemble, []int{1, 2, 3, 4, 0, 10})
			So(data.Links, ShouldContainSubstring, `<a href="?keyword=one+piece&amp;page=3" class="active">3</a>`)
			So(data.Links, ShouldContainSubstring, `<span class="ellipsis">...</span>`)
		})

		Convey("Pagination rejects kinds without pages", func() {
			w, _ := get(router, "/api/v1/pagination?kind=detail")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("Errors map to statuses", t, func() {
		status, code := classify(&network.FetchError{URL: "x", Err: context.DeadlineExceeded})
		So(status, ShouldEqual, http.StatusGatewayTimeout)
		So(code, ShouldEqual, ErrCodeTimeout)

		status, code = classify(scraper.ErrEmptyKeyword)
		So(status, ShouldEqual, http.StatusBadRequest)
		So(code, ShouldEqual, ErrCodeInvalidInput)

		status, code = classify(errors.New("boom"))
		So(status, ShouldEqual, http.StatusInternalServerError)
		So(code, ShouldEqual, ErrCodeInternal)
	})
}

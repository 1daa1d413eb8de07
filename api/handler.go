package api

import (
	"net/http"
	"time"

	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/extract"
	"github.com/anisan-cli/anitaku/paginate"
	"github.com/anisan-cli/anitaku/scraper"
	"github.com/anisan-cli/anitaku/source"
	"github.com/anisan-cli/anitaku/util"
	"github.com/gin-gonic/gin"
)

type handler struct {
	scraper *scraper.Scraper
	window  int
	started time.Time
}

// pageData is a listing or search page with its rendered pagination links.
type pageData struct {
	Page  any    `json:"result"`
	Links string `json:"links"`
}

type healthData struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Site    string `json:"site"`
	Uptime  string `json:"uptime"`
}

type paginationData struct {
	Pagination source.PaginationInfo `json:"pagination"`
	Pages      []int                 `json:"pages"`
	Links      string                `json:"links"`
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthData{
		Status:  "ok",
		Version: constant.Version,
		Site:    h.scraper.Base(),
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}

// home serves GET /api/v1/home?page=N[&by_title=true].
func (h *handler) home(c *gin.Context) {
	page, err := h.scraper.Home(c.Request.Context(), pageParam(c, "page"))
	if err != nil {
		respondError(c, err)
		return
	}

	data := pageData{Page: page, Links: paginate.Links(page.Pagination, paginate.Listing(h.window))}
	if boolParam(c, "by_title") {
		data.Page = page.Keyed()
	}
	respond(c, data)
}

// search serves GET /api/v1/search?search=Q&page=N; keyword= is accepted too.
func (h *handler) search(c *gin.Context) {
	keyword, err := requiredParam(c, "search", "keyword")
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.scraper.Search(c.Request.Context(), keyword, pageParam(c, "page"))
	if err != nil {
		respondError(c, err)
		return
	}

	data := pageData{Page: page, Links: paginate.Links(page.Pagination, paginate.Search(page.Keyword, h.window))}
	if boolParam(c, "by_title") {
		data.Page = page.Keyed()
	}
	respond(c, data)
}

// details serves GET /api/v1/details?path=P; url= is accepted too.
func (h *handler) details(c *gin.Context) {
	path, err := requiredParam(c, "path", "url")
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := h.scraper.Details(c.Request.Context(), path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, record)
}

// episode serves GET /api/v1/episode?path=P; url= is accepted too.
func (h *handler) episode(c *gin.Context) {
	path, err := requiredParam(c, "path", "url")
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.scraper.Episode(c.Request.Context(), path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, page)
}

// pagination serves GET /api/v1/pagination?kind=listing|search&page=N&total=M[&keyword=Q].
func (h *handler) pagination(c *gin.Context) {
	kind := extract.KindListing
	if raw := c.Query("kind"); raw != "" {
		parsed, err := extract.ParseKind(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		kind = parsed
	}

	current := pageParam(c, "page")
	info := source.PaginationInfo{CurrentPage: current, TotalPages: util.Max(pageParam(c, "total"), current)}

	var opts paginate.Options
	switch kind {
	case extract.KindListing:
		opts = paginate.Listing(h.window)
	case extract.KindSearch:
		opts = paginate.Search(firstParam(c, "keyword", "search"), h.window)
	default:
		respondError(c, extract.ErrUnknownKind)
		return
	}

	respond(c, paginationData{
		Pagination: info,
		Pages:      paginate.Pages(info, h.window),
		Links:      paginate.Links(info, opts),
	})
}

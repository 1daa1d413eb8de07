// Package api relays scrapes over a JSON HTTP API.
package api

import (
	"time"

	"github.com/anisan-cli/anitaku/scraper"
	"github.com/gin-gonic/gin"
)

// Options configure the router.
type Options struct {
	// Mode is the gin mode: debug, release or test.
	Mode string
	// Window is the number of pages shown around the current one in pagination links.
	Window int
}

// NewRouter returns an engine serving the scrape endpoints under /api/v1.
func NewRouter(s *scraper.Scraper, opts Options) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	h := &handler{scraper: s, window: opts.Window, started: time.Now()}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLog())

	v1 := r.Group("/api/v1")
	v1.GET("/health", h.health)
	v1.GET("/home", h.home)
	v1.GET("/search", h.search)
	v1.GET("/details", h.details)
	v1.GET("/episode", h.episode)
	v1.GET("/pagination", h.pagination)

	return r
}

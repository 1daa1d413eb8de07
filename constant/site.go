package constant

// Site conventions of the scraped host.
const (
	// BaseURL is the site root every relative page and image URL is resolved against.
	BaseURL = "https://anitaku.bz"

	// CORSProxy is prefixed to the query-escaped target URL when fetching through a proxy.
	CORSProxy = "https://api.allorigins.win/raw?url="

	// PlaceholderImage stands in for search results that carry no image element.
	PlaceholderImage = "https://gogocdn.net/images/404-image.png"
)

// Endpoint paths relative to BaseURL.
const (
	HomePath   = "/home.html"
	SearchPath = "/search.html"
)

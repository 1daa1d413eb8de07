package source

// EpisodeRange is one episode-list tab. Bounds are the raw attribute strings.
type EpisodeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DetailRecord describes an anime's info page.
type DetailRecord struct {
	Title       string         `json:"title"`
	ImageURL    string         `json:"image"`
	Description string         `json:"description"`
	Episodes    []EpisodeRange `json:"episodes"`
}

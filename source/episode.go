package source

import "strings"

// Link is an anchor's label and target.
type Link struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
}

// NavLink points at the previous or next episode.
type NavLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Server is an alternate host for the episode's video.
type Server struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	ServerType string `json:"serverType"`
}

// RelatedEpisode is an entry of the episode page's episode list.
type RelatedEpisode struct {
	Number string `json:"number"`
	URL    string `json:"url"`
	Title  string `json:"title"`
}

// EpisodePage holds everything read from a single episode page.
// Fields whose element was missing stay empty and are omitted from JSON.
type EpisodePage struct {
	FullTitle       string           `json:"fullTitle,omitempty"`
	AnimeName       string           `json:"animeName,omitempty"`
	EpisodeNumber   string           `json:"episodeNumber,omitempty"`
	Category        *Link            `json:"category,omitempty"`
	AnimeURL        string           `json:"animeUrl,omitempty"`
	CurrentVideoURL string           `json:"currentVideoUrl,omitempty"`
	Servers         []Server         `json:"servers"`
	PreviousEpisode *NavLink         `json:"previousEpisode,omitempty"`
	NextEpisode     *NavLink         `json:"nextEpisode,omitempty"`
	RelatedEpisodes []RelatedEpisode `json:"relatedEpisodes"`
	Description     string           `json:"description,omitempty"`
	CoverImage      string           `json:"coverImage,omitempty"`
}

// FindServer returns the server whose name matches name case-insensitively.
// An empty name selects the first server.
func (p *EpisodePage) FindServer(name string) (Server, bool) {
	if len(p.Servers) == 0 {
		return Server{}, false
	}
	if name == "" {
		return p.Servers[0], true
	}
	for _, s := range p.Servers {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Server{}, false
}

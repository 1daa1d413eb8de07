package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/source"
	"github.com/anisan-cli/anitaku/util"
)

var (
	episodeHeading  = compile(".anime_video_body h1")
	episodeCategory = compile(".anime_video_body_cate a")
	episodeAnime    = compile(".anime-info a")
	episodeIframe   = compile(".play-video iframe")
	episodeServers  = compile(".anime_muti_link ul li a")
	serverIcon      = compile("i")
	episodePrevious = compile(".anime_video_body_episodes_l a")
	episodeNext     = compile(".anime_video_body_episodes_r a")
	episodeRelated  = compile("#load_ep a")
	metaDescription = compile(`meta[name="description"]`)
	metaImage       = compile(`meta[itemprop="image"]`)
)

var episodeTitle = regexp.MustCompile(`(?P<name>[^\d]+)\s+Episode\s+(?P<number>\d+)`)

// unknownServer names a server whose label could not be read.
const unknownServer = "Unknown"

// SplitEpisodeTitle splits "Naruto Episode 5" into "Naruto" and "5".
// ok is false when the title has no "Episode N" part.
func SplitEpisodeTitle(title string) (name, number string, ok bool) {
	groups := util.ReGroups(episodeTitle, title)
	if len(groups) == 0 {
		return "", "", false
	}
	return strings.TrimSpace(groups["name"]), groups["number"], true
}

// Episode reads an episode page. Every field is best effort: a missing element
// leaves its field empty, and a failure midway returns what was read so far.
func (e *Extractor) Episode(doc *goquery.Document) (page *source.EpisodePage) {
	page = &source.EpisodePage{
		Servers:         []source.Server{},
		RelatedEpisodes: []source.RelatedEpisode{},
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("episode: parsing stopped early: %v", r)
		}
	}()

	root := doc.Selection

	page.FullTitle = textOf(root, episodeHeading)
	if name, number, ok := SplitEpisodeTitle(page.FullTitle); ok {
		page.AnimeName = name
		page.EpisodeNumber = number
	}

	if a, ok := episodeCategory.first(root).Get(); ok {
		page.Category = &source.Link{Name: text(a), URL: e.absolute(attr(a, "href"))}
	}

	page.AnimeURL = e.absolute(attrOf(root, episodeAnime, "href"))
	page.CurrentVideoURL = attrOf(root, episodeIframe, "src")

	episodeServers.all(root).Each(func(_ int, a *goquery.Selection) {
		page.Servers = append(page.Servers, source.Server{
			Name:       serverName(a),
			URL:        attr(a, "data-video"),
			ServerType: attr(a, "rel"),
		})
	})

	page.PreviousEpisode = e.navLink(root, episodePrevious)
	page.NextEpisode = e.navLink(root, episodeNext)

	episodeRelated.all(root).Each(func(_ int, a *goquery.Selection) {
		page.RelatedEpisodes = append(page.RelatedEpisodes, source.RelatedEpisode{
			Number: attr(a, "ep_end"),
			URL:    e.absolute(attr(a, "href")),
			Title:  text(a),
		})
	})

	page.Description = attrOf(root, metaDescription, "content")
	page.CoverImage = e.absolute(attrOf(root, metaImage, "content"))

	return page
}

func (e *Extractor) navLink(root *goquery.Selection, r rule) *source.NavLink {
	a, ok := r.first(root).Get()
	if !ok {
		return nil
	}
	return &source.NavLink{URL: e.absolute(attr(a, "href")), Title: text(a)}
}

// serverName is the text right after the server's icon element.
func serverName(a *goquery.Selection) string {
	icon, ok := serverIcon.first(a).Get()
	if !ok {
		return unknownServer
	}

	next := icon.Get(0).NextSibling
	if next == nil {
		return unknownServer
	}

	if name := strings.TrimSpace(nodeText(next)); name != "" {
		return name
	}
	return unknownServer
}

package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/source"
	"github.com/samber/mo"
)

var (
	// Search markup is less consistent than the listing, hence the fallbacks.
	searchItems   = chainOf(".last_episodes ul.items li", ".items li", "li.video-block")
	searchTitle   = chainOf("p.name a", "a.name")
	searchRelease = compile("p.released")
)

// Search reads the result entries of a search page in document order.
// Items need a title and at least one of an image or an anchor element.
// A missing image, or one without a src, falls back to the placeholder image.
func (e *Extractor) Search(doc *goquery.Document) []source.SearchEntry {
	items, ok := searchItems.all(doc.Selection).Get()
	if !ok {
		log.Debug("search: no result items")
		return []source.SearchEntry{}
	}
	entries := make([]source.SearchEntry, 0, items.Length())

	items.Each(func(_ int, item *goquery.Selection) {
		block := imageBlock.first(item)
		img := block.FlatMap(imageElement.first)
		anchor := block.FlatMap(anchorElement.first)
		title, hasTitle := searchTitle.first(item).Get()
		if (img.IsAbsent() && anchor.IsAbsent()) || !hasTitle {
			return
		}

		imgSrc := constant.PlaceholderImage
		if s, ok := img.Get(); ok && attr(s, "src") != "" {
			imgSrc = attr(s, "src")
		}

		entries = append(entries, source.SearchEntry{
			Title:        text(title),
			ReleaseLabel: textOf(item, searchRelease),
			ImageURL:     e.absolute(imgSrc),
			PageURL:      e.absolute(searchLink(anchor, title)),
		})
	})

	log.Debugf("search: %d items, %d entries", items.Length(), len(entries))
	return entries
}

// searchLink prefers the image block anchor, then the title's parent when it is a link.
func searchLink(anchor mo.Option[*goquery.Selection], title *goquery.Selection) string {
	if a, ok := anchor.Get(); ok {
		return attr(a, "href")
	}

	if parent := title.Parent(); goquery.NodeName(parent) == "a" {
		return attr(parent, "href")
	}
	return ""
}

package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/source"
)

var (
	listingItems   = compile(".last_episodes ul.items li")
	imageBlock     = compile(".img")
	imageElement   = compile("img")
	anchorElement  = compile("a")
	listingTitle   = compile("p.name a")
	listingEpisode = compile("p.episode")
)

// Listing reads the recently updated entries of a home page in document order.
// Items without an image or a title element are skipped.
func (e *Extractor) Listing(doc *goquery.Document) []source.ListingEntry {
	items := listingItems.all(doc.Selection)
	entries := make([]source.ListingEntry, 0, items.Length())

	items.Each(func(_ int, item *goquery.Selection) {
		block := imageBlock.first(item)
		img, hasImg := block.FlatMap(imageElement.first).Get()
		title, hasTitle := listingTitle.first(item).Get()
		if !hasImg || !hasTitle {
			return
		}

		entry := source.ListingEntry{
			Title:        text(title),
			EpisodeLabel: textOf(item, listingEpisode),
			ImageURL:     e.absolute(attr(img, "src")),
		}
		if anchor, ok := block.FlatMap(anchorElement.first).Get(); ok {
			entry.PageURL = e.absolute(attr(anchor, "href"))
		}

		entries = append(entries, entry)
	})

	log.Debugf("listing: %d items, %d entries", items.Length(), len(entries))
	return entries
}

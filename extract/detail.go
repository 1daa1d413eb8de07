package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/anitaku/source"
)

var (
	detailTitle       = compile("#wrapper_bg .anime_info_body_bg h1")
	detailImage       = compile("#wrapper_bg .anime_info_body_bg img")
	detailDescription = compile("#wrapper_bg .anime_info_body_bg .description")
	episodeRanges     = compile("#episode_page li a")
)

// Detail reads an anime info page. Absent info elements read as empty strings;
// episode range bounds are copied verbatim in document order.
func (e *Extractor) Detail(doc *goquery.Document) *source.DetailRecord {
	root := doc.Selection
	record := &source.DetailRecord{
		Title:       textOf(root, detailTitle),
		ImageURL:    e.absolute(attrOf(root, detailImage, "src")),
		Description: textOf(root, detailDescription),
		Episodes:    []source.EpisodeRange{},
	}

	episodeRanges.all(root).Each(func(_ int, a *goquery.Selection) {
		record.Episodes = append(record.Episodes, source.EpisodeRange{
			Start: a.AttrOr("ep_start", ""),
			End:   a.AttrOr("ep_end", ""),
		})
	})

	return record
}

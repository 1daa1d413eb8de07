package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/paginate"
	"github.com/anisan-cli/anitaku/source"
	"github.com/anisan-cli/anitaku/style"
	"github.com/anisan-cli/anitaku/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const itemIndent = 3

var (
	faintURL = style.Fg(color.Gray)
	label    = style.Fg(color.Purple)
	number   = style.Fg(color.Yellow)
)

func writeText(opts Options, s string) error {
	_, err := fmt.Fprintln(opts.out(), s)
	return err
}

func listingText(opts Options, page *source.ListingPage) string {
	var b strings.Builder

	b.WriteString(style.Title("Recently updated"))
	b.WriteString("\n\n")

	for i, entry := range page.Entries {
		line := fmt.Sprintf("%s %s", number(fmt.Sprintf("%2d.", i+1)), style.Bold(entry.Title))
		if entry.EpisodeLabel != "" {
			line += " " + label(entry.EpisodeLabel)
		}
		b.WriteString(line + "\n")
		b.WriteString(link(opts, entry.PageURL))
	}

	b.WriteString(summary(opts, len(page.Entries), "entry", "entries", page.Pagination))
	return b.String()
}

func searchText(opts Options, page *source.SearchPage) string {
	var b strings.Builder

	b.WriteString(style.Title(fmt.Sprintf("Results for %q", page.Keyword)))
	b.WriteString("\n\n")

	if len(page.Entries) == 0 {
		b.WriteString(style.Faint("No results") + "\n")
	}

	for i, entry := range page.Entries {
		line := fmt.Sprintf("%s %s", number(fmt.Sprintf("%2d.", i+1)), style.Bold(entry.Title))
		if entry.ReleaseLabel != "" {
			line += " " + style.Faint(entry.ReleaseLabel)
		}
		b.WriteString(line + "\n")
		b.WriteString(link(opts, entry.PageURL))
	}

	b.WriteString(summary(opts, len(page.Entries), "result", "results", page.Pagination))
	return b.String()
}

func detailText(opts Options, record *source.DetailRecord) string {
	var b strings.Builder

	b.WriteString(style.Title(orDash(record.Title)))
	b.WriteString("\n\n")

	if record.Description != "" {
		b.WriteString(wordwrap.String(record.Description, opts.width()))
		b.WriteString("\n\n")
	}

	if record.ImageURL != "" {
		b.WriteString(label("Image") + " " + faintURL(record.ImageURL) + "\n")
	}

	ranges := make([]string, len(record.Episodes))
	for i, r := range record.Episodes {
		ranges[i] = r.Start + "-" + r.End
	}
	b.WriteString(label("Episodes") + " ")
	if len(ranges) == 0 {
		b.WriteString(style.Faint("none"))
	} else {
		b.WriteString(strings.Join(ranges, ", "))
	}

	return b.String()
}

func episodeText(opts Options, page *source.EpisodePage) string {
	var b strings.Builder

	b.WriteString(style.Title(orDash(page.FullTitle)))
	b.WriteString("\n\n")

	if page.AnimeName != "" {
		b.WriteString(label("Anime") + " " + page.AnimeName + "\n")
	}
	if page.EpisodeNumber != "" {
		b.WriteString(label("Episode") + " " + number(page.EpisodeNumber) + "\n")
	}
	if page.Category != nil {
		b.WriteString(label("Category") + " " + page.Category.Name + " " + faintURL(page.Category.URL) + "\n")
	}
	if page.CurrentVideoURL != "" {
		b.WriteString(label("Playing") + " " + faintURL(page.CurrentVideoURL) + "\n")
	}

	if len(page.Servers) > 0 {
		b.WriteString("\n" + style.Bold(util.Quantify(len(page.Servers), "server", "servers")) + "\n")
		for _, server := range page.Servers {
			b.WriteString(fmt.Sprintf("%s %s\n", icon.Get(icon.Episode), server.Name))
			b.WriteString(link(opts, server.URL))
		}
	}

	if page.PreviousEpisode != nil || page.NextEpisode != nil {
		b.WriteString("\n")
	}
	if page.PreviousEpisode != nil {
		b.WriteString(label("Previous") + " " + page.PreviousEpisode.Title + "\n")
	}
	if page.NextEpisode != nil {
		b.WriteString(label("Next") + " " + page.NextEpisode.Title + "\n")
	}

	if page.Description != "" {
		b.WriteString("\n" + wordwrap.String(page.Description, opts.width()) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// link renders an indented, truncated URL line.
func link(opts Options, url string) string {
	if url == "" {
		return ""
	}

	width := util.Max(opts.width()-itemIndent, 10)
	return indent.String(faintURL(truncate.StringWithTail(url, uint(width), "…")), itemIndent) + "\n"
}

func summary(opts Options, count int, singular, plural string, info source.PaginationInfo) string {
	pages := paginate.Pages(info, opts.Window)
	numbers := make([]string, len(pages))
	for i, n := range pages {
		switch n {
		case 0:
			numbers[i] = style.Faint("…")
		case info.CurrentPage:
			numbers[i] = style.Bold("[" + strconv.Itoa(n) + "]")
		default:
			numbers[i] = strconv.Itoa(n)
		}
	}

	return fmt.Sprintf("\n%s  %s %d/%d  %s",
		style.Faint(util.Quantify(count, singular, plural)),
		label("Page"),
		info.CurrentPage,
		info.TotalPages,
		strings.Join(numbers, " "),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

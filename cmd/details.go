package cmd

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/open"
	"github.com/anisan-cli/anitaku/render"
	"github.com/anisan-cli/anitaku/scraper"
	"github.com/anisan-cli/anitaku/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)
	addOutputFlag(detailsCmd)

	rootCmd.AddCommand(episodeCmd)
	addOutputFlag(episodeCmd)
	episodeCmd.Flags().BoolP("open", "O", false, "Open a video server's embed in the browser instead of printing the page")
	episodeCmd.Flags().StringP("server", "s", "", "Server to open, the first one when empty")
}

// embedURL makes protocol-relative player sources openable.
func embedURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

var detailsCmd = &cobra.Command{
	Use:     "details <path|url>",
	Short:   "Scrape an anime info page",
	Aliases: []string{"info"},
	Example: "  anitaku details /category/naruto",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := interruptible()
		defer cancel()

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), args[0]))
		record, err := scraper.FromConfig().Details(ctx, args[0])
		erase()
		handleErr(err)

		emit(cmd, func(opts render.Options) error {
			return render.Detail(opts, record)
		})
	},
}

var episodeCmd = &cobra.Command{
	Use:     "episode <path|url>",
	Short:   "Scrape an episode page and its video servers",
	Aliases: []string{"ep"},
	Example: "  anitaku episode naruto-episode-5",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := interruptible()
		defer cancel()

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Episode), args[0]))
		page, err := scraper.FromConfig().Episode(ctx, args[0])
		erase()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("open")) {
			name := lo.Must(cmd.Flags().GetString("server"))
			server, ok := page.FindServer(name)
			if !ok {
				handleErr(fmt.Errorf("no server %q on %s", name, args[0]))
			}
			handleErr(open.Start(embedURL(server.URL)))
			cmd.Printf("%s opened %s\n", icon.Get(icon.Success), server.Name)
			return
		}

		emit(cmd, func(opts render.Options) error {
			return render.Episode(opts, page)
		})
	},
}

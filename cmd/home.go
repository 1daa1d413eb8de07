package cmd

import (
	"fmt"

	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/render"
	"github.com/anisan-cli/anitaku/scraper"
	"github.com/anisan-cli/anitaku/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(homeCmd)

	homeCmd.Flags().IntP("page", "p", 1, "Listing page to scrape")
	addOutputFlag(homeCmd)
}

var homeCmd = &cobra.Command{
	Use:     "home",
	Short:   "Scrape the recently updated listing",
	Aliases: []string{"latest"},
	Example: "  anitaku home --page 2 --format text",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := interruptible()
		defer cancel()

		page := lo.Must(cmd.Flags().GetInt("page"))

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching page %d...", icon.Get(icon.Progress), page))
		listing, err := scraper.FromConfig().Home(ctx, page)
		erase()
		handleErr(err)

		emit(cmd, func(opts render.Options) error {
			return render.Listing(opts, listing)
		})
	},
}

package cmd

import (
	"fmt"

	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/query"
	"github.com/anisan-cli/anitaku/util"
	"github.com/anisan-cli/anitaku/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name  string
	flag  string
	short string
	clear func() error
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", "c", func() error { return util.Delete(where.Cache()) }},
	{"queries history", "queries", "q", query.Clear},
	{"logs directory", "logs", "l", func() error { return util.Delete(where.Logs()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.flag, t.short, false, "clear "+t.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached data, remembered queries and logs",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared bool

		for _, t := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(t.flag)) {
				continue
			}

			cleared = true
			name := util.Capitalize(t.name)
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), name))
			err := t.clear()
			erase()
			handleErr(err)
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), name)
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}

package cmd

import (
	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/style"
	"github.com/anisan-cli/anitaku/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name   string
	flag   string
	short  string
	path   func() string
	hidden bool
}

var whereTargets = []whereTarget{
	{"Config", "config", "c", where.Config, false},
	{"Logs", "logs", "l", where.Logs, false},
	{"Cache", "cache", "", where.Cache, true},
	{"Queries", "queries", "q", where.Queries, false},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		whereCmd.Flags().BoolP(t.flag, t.short, false, t.name+" path")
		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths of the files and directories anitaku uses",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(t.flag)) {
				cmd.Println(t.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(whereTargets, func(t whereTarget, _ int) bool { return t.hidden })

		for i, t := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.flag))
			cmd.Println(t.path())
		}
	},
}

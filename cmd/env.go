package cmd

import (
	"os"

	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/config"
	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/style"
	"github.com/anisan-cli/anitaku/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames lists every environment variable the application reads, sorted.
func envNames() []string {
	names := lo.Map(sortedFields(), func(f config.Field, _ int) string { return f.Env() })
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables read by " + constant.Anitaku,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, env := range envNames() {
			current, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(name(env), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(current))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}

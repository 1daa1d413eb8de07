package cmd

import (
	"runtime"
	"strings"
	"text/template"

	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/style"
	"github.com/anisan-cli/anitaku/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Git Commit" }}  {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify(cmd.OutOrStdout())

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, Revision, BuiltAt, BuiltBy, OS, Arch string
		}{
			App:      constant.Anitaku,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
		}))
	},
}

package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/extract"
	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/render"
	"github.com/anisan-cli/anitaku/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("kind", "k", string(extract.KindListing), "Page kind of the document (listing, search, detail, episode)")
	lo.Must0(extractCmd.RegisterFlagCompletionFunc("kind", completionKinds))
	addOutputFlag(extractCmd)
}

func completionKinds(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(extract.Kinds(), func(k extract.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
}

var extractCmd = &cobra.Command{
	Use:   "extract <file|->",
	Short: "Extract records from a saved HTML page",
	Long: "Extract records from a saved HTML page without fetching anything.\n" +
		"Relative URLs are resolved against site.base_url. Use - to read standard input.",
	Example: "  anitaku extract --kind search results.html\n  curl -s https://anitaku.bz/home.html | anitaku extract -",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := extract.ParseKind(lo.Must(cmd.Flags().GetString("kind")))
		handleErr(err)

		var in io.Reader = os.Stdin
		if args[0] != "-" {
			file, err := filesystem.API().Open(args[0])
			handleErr(err)
			defer util.Ignore(file.Close)
			in = file
		}

		base := strings.TrimSpace(viper.GetString(key.SiteBaseURL))
		if base == "" {
			base = constant.BaseURL
		}

		result, err := extract.New(base).Extract(kind, in)
		handleErr(err)

		emit(cmd, func(opts render.Options) error {
			return render.Result(opts, result)
		})
	},
}

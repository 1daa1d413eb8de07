// Package cmd implements the command-line interface for anitaku.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/network"
	"github.com/anisan-cli/anitaku/render"
	"github.com/anisan-cli/anitaku/style"
	"github.com/anisan-cli/anitaku/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("format", "F", "", "Output format (json, yaml, text)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(render.Formats(), func(f render.Format, _ int) string { return string(f) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.OutputFormat, rootCmd.PersistentFlags().Lookup("format")))

	rootCmd.PersistentFlags().Bool("pretty", true, "Indent JSON output")
	lo.Must0(viper.BindPFlag(key.OutputPretty, rootCmd.PersistentFlags().Lookup("pretty")))

	rootCmd.PersistentFlags().BoolP("by-title", "T", false, "Key listing and search results by title")
	lo.Must0(viper.BindPFlag(key.OutputByTitle, rootCmd.PersistentFlags().Lookup("by-title")))

	rootCmd.PersistentFlags().String("proxy", "", "Proxy prefix for page fetches, empty to fetch directly")
	lo.Must0(viper.BindPFlag(key.FetchProxy, rootCmd.PersistentFlags().Lookup("proxy")))

	rootCmd.PersistentFlags().String("base-url", "", "Site root to scrape")
	lo.Must0(viper.BindPFlag(key.SiteBaseURL, rootCmd.PersistentFlags().Lookup("base-url")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.OutOrStdout())
	})
}

// rootCmd is the entry point of the CLI.
var rootCmd = &cobra.Command{
	Use:   constant.Anitaku,
	Short: "Scrape anime listings, search results and episodes from anitaku",
	Long: style.Title(constant.Anitaku) + "\n\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("  Scrape anime listings, search results and episodes from anitaku"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}
		handleErr(cmd.Help())
	},
}

// Execute runs the command selected by the process arguments.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// interruptible returns a context cancelled on Ctrl+C.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)

	msg := strings.Trim(err.Error(), " \n")
	var fetchErr *network.FetchError
	if errors.As(err, &fetchErr) {
		msg = fmt.Sprintf("could not fetch %s: %s", style.Fg(color.Yellow)(fetchErr.URL), msg)
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), msg)
	os.Exit(1)
}

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/query"
	"github.com/anisan-cli/anitaku/render"
	"github.com/anisan-cli/anitaku/scraper"
	"github.com/anisan-cli/anitaku/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("page", "p", 1, "Results page to scrape")
	addOutputFlag(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:     "search [keyword...]",
	Short:   "Search the site by keyword",
	Long:    "Search the site by keyword. Without a keyword, one is asked for interactively with suggestions from previous searches.",
	Example: "  anitaku search one piece --page 2",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		keyword := strings.Join(args, " ")
		if strings.TrimSpace(keyword) == "" {
			handleErr(askKeyword(&keyword))
		}

		ctx, cancel := interruptible()
		defer cancel()

		page := lo.Must(cmd.Flags().GetInt("page"))

		erase := util.PrintErasable(fmt.Sprintf("%s Searching for %q...", icon.Get(icon.Search), keyword))
		results, err := scraper.FromConfig().Search(ctx, keyword, page)
		erase()
		handleErr(err)

		if err := query.Remember(results.Keyword, 1); err != nil {
			log.Warnf("remember keyword: %v", err)
		}

		emit(cmd, func(opts render.Options) error {
			return render.Search(opts, results)
		})
	},
}

func askKeyword(keyword *string) error {
	if !util.IsTerminal() {
		return errors.New("a keyword is required when not running in a terminal")
	}

	prompt := &survey.Input{
		Message: "What are you looking for?",
		Suggest: query.SuggestMany,
	}
	if suggestion, ok := query.Suggest("").Get(); ok {
		prompt.Default = suggestion
	}

	return survey.AskOne(prompt, keyword, survey.WithValidator(survey.Required))
}

package cmd

import (
	"encoding/json"
	"reflect"

	"github.com/anisan-cli/anitaku/extract"
	"github.com/anisan-cli/anitaku/source"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringP("kind", "k", "", "Only the record of this page kind (listing, search, detail, episode)")
	lo.Must0(schemaCmd.RegisterFlagCompletionFunc("kind", completionKinds))
	schemaCmd.Flags().BoolP("by-title", "T", false, "Describe the title-keyed listing and search output")
}

// schemaTarget is the record written for kind.
func schemaTarget(kind extract.Kind, byTitle bool) any {
	switch kind {
	case extract.KindListing:
		if byTitle {
			return &source.KeyedListingPage{}
		}
		return &source.ListingPage{}
	case extract.KindSearch:
		if byTitle {
			return &source.KeyedSearchPage{}
		}
		return &source.SearchPage{}
	case extract.KindDetail:
		return &source.DetailRecord{}
	case extract.KindEpisode:
		return &source.EpisodePage{}
	default:
		return &extract.Result{}
	}
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the output records",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var kind extract.Kind
		if raw := lo.Must(cmd.Flags().GetString("kind")); raw != "" {
			parsed, err := extract.ParseKind(raw)
			handleErr(err)
			kind = parsed
		}

		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		schema := reflector.Reflect(schemaTarget(kind, lo.Must(cmd.Flags().GetBool("by-title"))))

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}

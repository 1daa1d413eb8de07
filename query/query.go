// Package query keeps the history of search keywords and suggests them back.
package query

import (
	"strings"

	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is a remembered keyword and how often it was searched.
type Record struct {
	Rank    int    `json:"rank"`
	Keyword string `json:"keyword"`
}

var history = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// suggestions memoizes SuggestMany per input until the history changes.
var suggestions = make(map[string][]string)

func load() map[string]*Record {
	cached, expired, err := history.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*Record)
	}
	return cached
}

// Remember adds weight to keyword's rank, recording it first if needed.
// It does nothing when search.remember_queries is off.
func Remember(keyword string, weight int) error {
	if !viper.GetBool(key.SearchRememberQueries) {
		return nil
	}

	keyword = sanitize(keyword)
	if keyword == "" {
		return nil
	}

	records := load()
	if record, ok := records[keyword]; ok {
		record.Rank += weight
	} else {
		records[keyword] = &Record{Rank: weight, Keyword: keyword}
	}

	suggestions = make(map[string][]string)
	return history.Set(records)
}

// Records returns the history, most searched first.
func Records() []*Record {
	records := lo.Values(load())
	sortByRank(records)
	return records
}

// Suggest returns the best remembered keyword for a partial input.
func Suggest(input string) mo.Option[string] {
	found := SuggestMany(input)
	if len(found) == 0 {
		return mo.None[string]()
	}
	return mo.Some(found[0])
}

// SuggestMany returns remembered keywords fuzzily matching input, most searched first.
func SuggestMany(input string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	input = sanitize(input)
	if found, ok := suggestions[input]; ok {
		return found
	}

	records := lo.Filter(lo.Values(load()), func(r *Record, _ int) bool {
		return fuzzy.Match(input, r.Keyword)
	})
	sortByRank(records)

	found := lo.Map(records, func(r *Record, _ int) string { return r.Keyword })
	suggestions[input] = found
	return found
}

// Clear forgets every remembered keyword.
func Clear() error {
	suggestions = make(map[string][]string)
	return history.Set(make(map[string]*Record))
}

func sortByRank(records []*Record) {
	slices.SortFunc(records, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Keyword, b.Keyword)
	})
}

func sanitize(keyword string) string {
	return strings.TrimSpace(strings.ToLower(keyword))
}

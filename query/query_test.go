package query

import (
	"testing"

	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given an empty history", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		viper.Set(key.SearchRememberQueries, true)
		So(Clear(), ShouldBeNil)

		Convey("When keywords are remembered", func() {
			So(Remember("Naruto", 1), ShouldBeNil)
			So(Remember("  BLEACH ", 10), ShouldBeNil)
			So(Remember("naruto shippuden", 3), ShouldBeNil)

			Convey("Suggestions come most searched first", func() {
				So(SuggestMany("nar"), ShouldResemble, []string{"naruto shippuden", "naruto"})
				So(Suggest("ble").MustGet(), ShouldEqual, "bleach")
			})

			Convey("Remembering again raises the rank", func() {
				So(SuggestMany("nar")[0], ShouldEqual, "naruto shippuden")
				So(Remember("naruto", 5), ShouldBeNil)
				So(SuggestMany("nar")[0], ShouldEqual, "naruto")
			})

			Convey("Records are sorted by rank", func() {
				records := Records()
				So(records, ShouldHaveLength, 3)
				So(records[0].Keyword, ShouldEqual, "bleach")
				So(records[0].Rank, ShouldEqual, 10)
			})

			Convey("Clear forgets everything", func() {
				So(Clear(), ShouldBeNil)
				So(Records(), ShouldBeEmpty)
				So(Suggest("nar").IsAbsent(), ShouldBeTrue)
			})

			Convey("Suggestions can be turned off", func() {
				viper.Set(key.SearchShowQuerySuggestions, false)
				So(SuggestMany("nar"), ShouldBeEmpty)
			})
		})

		Convey("When remembering is turned off", func() {
			viper.Set(key.SearchRememberQueries, false)
			So(Remember("one piece", 1), ShouldBeNil)

			Convey("Nothing is stored", func() {
				So(Records(), ShouldBeEmpty)
			})
		})

		Convey("Blank keywords are ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(Records(), ShouldBeEmpty)
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("Keywords are trimmed and lower-cased", t, func() {
		So(sanitize("  NARUTO  "), ShouldEqual, "naruto")
	})
}

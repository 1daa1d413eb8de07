package extract

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given the site base", t, func() {
		Convey("Absolute URLs pass through", func() {
			So(Normalize(testBase, "http://x"), ShouldEqual, "http://x")
			So(Normalize(testBase, "https://cdn.example.com/a.png"), ShouldEqual, "https://cdn.example.com/a.png")
		})

		Convey("A leading slash is appended to the base", func() {
			So(Normalize(testBase, "/p"), ShouldEqual, testBase+"/p")
			So(Normalize(testBase, "/images/x.png"), ShouldEqual, testBase+"/images/x.png")
		})

		Convey("Relative paths are joined with a slash", func() {
			So(Normalize(testBase, "p"), ShouldEqual, testBase+"/p")
			So(Normalize(testBase, "images/x.png"), ShouldEqual, testBase+"/images/x.png")
		})

		Convey("Protocol-relative URLs are treated as rooted paths", func() {
			So(Normalize(testBase, "//cdn.example.com/x"), ShouldEqual, testBase+"//cdn.example.com/x")
		})

		Convey("Normalizing twice changes nothing", func() {
			for _, candidate := range []string{"/p", "p", "https://x/y"} {
				once := Normalize(testBase, candidate)
				So(Normalize(testBase, once), ShouldEqual, once)
			}
		})
	})

	Convey("Empty attribute values stay empty", t, func() {
		So(New(testBase).absolute(""), ShouldBeEmpty)
	})

	Convey("A trailing slash on the base is dropped", t, func() {
		e := New(testBase + "/")
		So(e.Base(), ShouldEqual, testBase)
		So(e.absolute("/p"), ShouldEqual, testBase+"/p")
	})
}

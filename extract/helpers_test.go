package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const testBase = "https://anitaku.bz"

func fixture(t *testing.T, name string) *goquery.Document {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func inline(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := Parse(html)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/samber/mo"
	"golang.org/x/net/html"
)

// rule is a precompiled CSS selector.
type rule struct {
	raw     string
	matcher cascadia.Selector
}

func compile(raw string) rule {
	return rule{raw: raw, matcher: cascadia.MustCompile(raw)}
}

func (r rule) String() string {
	return r.raw
}

// all returns every descendant of root matching r.
func (r rule) all(root *goquery.Selection) *goquery.Selection {
	return root.FindMatcher(r.matcher)
}

// first returns the first descendant of root matching r, if any.
func (r rule) first(root *goquery.Selection) mo.Option[*goquery.Selection] {
	found := root.FindMatcher(r.matcher).First()
	if found.Length() == 0 {
		return mo.None[*goquery.Selection]()
	}
	return mo.Some(found)
}

// chain is an ordered list of candidate rules: the first rule matching anything wins.
type chain []rule

func chainOf(raws ...string) chain {
	c := make(chain, len(raws))
	for i, raw := range raws {
		c[i] = compile(raw)
	}
	return c
}

// all returns the matches of the first rule with any.
func (c chain) all(root *goquery.Selection) mo.Option[*goquery.Selection] {
	for _, r := range c {
		if found := r.all(root); found.Length() > 0 {
			return mo.Some(found)
		}
	}
	return mo.None[*goquery.Selection]()
}

// first returns the first match of the first rule with any.
func (c chain) first(root *goquery.Selection) mo.Option[*goquery.Selection] {
	for _, r := range c {
		if found := r.first(root); found.IsPresent() {
			return found
		}
	}
	return mo.None[*goquery.Selection]()
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// attr reads a trimmed attribute; absent attributes read as empty.
func attr(s *goquery.Selection, name string) string {
	return strings.TrimSpace(s.AttrOr(name, ""))
}

// textOf reads the trimmed text of the first match of r, empty without one.
func textOf(root *goquery.Selection, r rule) string {
	if s, ok := r.first(root).Get(); ok {
		return text(s)
	}
	return ""
}

// attrOf reads an attribute of the first match of r, empty without one.
func attrOf(root *goquery.Selection, r rule, name string) string {
	if s, ok := r.first(root).Get(); ok {
		return attr(s, name)
	}
	return ""
}

// nodeText concatenates the text nodes under n, n included.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

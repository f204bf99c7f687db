package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/newgrounds"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	labelMatcher = cascadia.MustCompile("dt")
	listMatcher  = cascadia.MustCompile("ul")
	itemMatcher  = cascadia.MustCompile("ul li")
	scriptMatch  = cascadia.MustCompile("script")
	breakMatch   = cascadia.MustCompile("br")
	inlineMatch  = cascadia.MustCompile("a, span")
)

// tagsKey always collapses to a single comma-joined value.
const tagsKey = "tags"

// WalkFields collects the label/value runs of every definition list in
// lists. Values are the dd siblings that follow a dt inside the same list,
// up to the next dt. The document is not modified.
//
// When a key repeats, the later run replaces the earlier one unless it
// collected no values.
func WalkFields(lists *goquery.Selection) newgrounds.Fields {
	fields := newgrounds.Fields{}
	lists.Each(func(_ int, dl *goquery.Selection) {
		container := dl.Get(0)
		dl.FindMatcher(labelMatcher).Each(func(_ int, dt *goquery.Selection) {
			key := newgrounds.NormalizeKey(dt.Text())
			if key == "" {
				return
			}
			values := walkValues(dl, dt.Get(0), container)
			if key == tagsKey && len(values) > 0 {
				values = []string{strings.Join(values, ", ")}
			}
			if _, seen := fields[key]; seen && len(values) == 0 {
				return
			}
			fields[key] = newgrounds.FieldValue{Values: values}
		})
	})
	return fields
}

// walkValues advances from label through its element siblings and returns
// the values of every dd before the next dt. A label nested deeper than the
// container has no values.
func walkValues(dl *goquery.Selection, label, container *html.Node) []string {
	var values []string
	for n := label.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if n.Parent != container || n.DataAtom == atom.Dt {
			break
		}
		if n.DataAtom == atom.Dd {
			values = append(values, ddValues(dl.Children().FilterNodes(n))...)
		}
	}
	return values
}

// ddValues reads a value element from a detached copy. Nested list items
// become separate values, followed by the element's remaining text unless
// it is a tags container.
func ddValues(dd *goquery.Selection) []string {
	c := dd.Clone()
	c.FindMatcher(scriptMatch).Remove()
	c.FindMatcher(breakMatch).Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(textNode(" "))
	})
	c.FindMatcher(inlineMatch).Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(textNode(s.Text()))
	})

	var values []string
	c.FindMatcher(itemMatcher).Each(func(_ int, li *goquery.Selection) {
		if text := collapse(li.Text()); text != "" {
			values = append(values, text)
		}
	})
	c.FindMatcher(listMatcher).Remove()

	if text := collapse(c.Text()); text != "" && !c.HasClass("tags") {
		values = append(values, text)
	}
	return values
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Package goquery implements pagemeta extraction techniques on top of the
// github.com/PuerkitoBio/goquery HTML parsing library. Each technique is a
// stateless rule table applied to a freshly parsed document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html"
)

// parse builds a goquery document from raw HTML. The underlying parser
// recovers from malformed markup on its own; a hard parse failure is
// reported so the orchestrator can treat the technique as having produced
// nothing.
func parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// firstAttr returns the first present attribute among names, in order.
// Absence is a distinguishable outcome, not an error.
func firstAttr(sel *goquery.Selection, names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := sel.Attr(name); ok {
			return v, true
		}
	}
	return "", false
}

// joinedText returns the whitespace-normalized text of a selection: every
// descendant text node trimmed and joined with single spaces.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// relContains reports whether a rel attribute value contains the given link
// type, accepting both single-token and space-separated token-set forms.
func relContains(rel, token string) bool {
	for _, t := range strings.Fields(rel) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}

// normalizeKey strips a property namespace prefix and flattens the
// remaining structured name, e.g. "og:image:width" -> "image_width".
func normalizeKey(property, prefix string) string {
	return strings.ReplaceAll(strings.TrimPrefix(property, prefix), ":", "_")
}

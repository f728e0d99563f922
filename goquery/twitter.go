package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Ensure Twitter implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*Twitter)(nil)

// twitterPrefix is the Twitter card property namespace.
const twitterPrefix = "twitter:"

// Twitter extracts Twitter card meta tags into a single card mapping. At
// most one card per document is recognized. The name attribute is read
// before property because the card spec uses name=, though many sites emit
// property= instead.
type Twitter struct{}

// NewTwitter creates a new Twitter technique.
func NewTwitter() *Twitter {
	return &Twitter{}
}

// Name returns the technique's identifier.
func (t *Twitter) Name() string {
	return "twitter"
}

// Extract reads twitter: meta tags into one normalized card.
func (t *Twitter) Extract(rawHTML string) (*pagemeta.Result, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	result := &pagemeta.Result{}
	card := pagemeta.TwitterCard{}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		property, ok := firstAttr(sel, "name", "property")
		if !ok || !strings.HasPrefix(property, twitterPrefix) {
			return
		}
		content, ok := sel.Attr("content")
		if !ok {
			return
		}
		// Later tags overwrite earlier ones with the same normalized key.
		card[normalizeKey(property, twitterPrefix)] = content
	})

	if hasCardType(card) {
		result.TwitterCards = []pagemeta.TwitterCard{card}
	}
	return result, nil
}

// hasCardType reports whether a twitter:card property was present, the
// signal that a genuine card exists rather than stray twitter: tags.
func hasCardType(card pagemeta.TwitterCard) bool {
	_, ok := card["card"]
	return ok
}

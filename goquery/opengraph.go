package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Ensure OpenGraph implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*OpenGraph)(nil)

// ogPrefix is the Open Graph property namespace.
const ogPrefix = "og:"

// ogFields maps full Open Graph property names to destination fields.
// Unmapped og: properties still contribute to the og_tags mapping.
var ogFields = map[string]pagemeta.Field{
	"og:title":       pagemeta.FieldTitles,
	"og:url":         pagemeta.FieldURLs,
	"og:image":       pagemeta.FieldImages,
	"og:description": pagemeta.FieldDescriptions,
	"og:type":        pagemeta.FieldTypes,
}

// OpenGraph extracts Facebook Open Graph meta tags. Sites that set these at
// all tend to set them deliberately, so the values outrank semantic
// scraping; for images this is usually the best source available.
type OpenGraph struct{}

// NewOpenGraph creates a new OpenGraph technique.
func NewOpenGraph() *OpenGraph {
	return &OpenGraph{}
}

// Name returns the technique's identifier.
func (t *OpenGraph) Name() string {
	return "opengraph"
}

// Extract reads og: meta tags into mapped fields and the og_tags mapping.
func (t *OpenGraph) Extract(rawHTML string) (*pagemeta.Result, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	result := &pagemeta.Result{}
	tags := map[string]string{}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		property, ok := firstAttr(sel, "property", "name")
		if !ok || !strings.HasPrefix(property, ogPrefix) {
			return
		}
		content, ok := sel.Attr("content")
		if !ok {
			return
		}
		content = strings.TrimSpace(content)
		if content == "" {
			return
		}

		// Later tags overwrite earlier ones with the same normalized key.
		tags[normalizeKey(property, ogPrefix)] = content

		if field, ok := ogFields[property]; ok {
			result.Append(field, content)
		}
	})

	if hasObjectType(tags) {
		result.OGTags = tags
	}
	return result, nil
}

// hasObjectType reports whether the collected tags describe a deliberate
// Open Graph object: a page that sets og:type opted into the protocol,
// while a stray og: tag or two is usually template noise.
func hasObjectType(tags map[string]string) bool {
	_, ok := tags["type"]
	return ok
}

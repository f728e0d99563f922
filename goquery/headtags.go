package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Ensure HeadTags implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*HeadTags)(nil)

// metaNameFields maps meta tag names to their destination fields.
var metaNameFields = map[string]pagemeta.Field{
	"description": pagemeta.FieldDescriptions,
	"author":      pagemeta.FieldAuthors,
}

// HeadTags extracts standard document-head metadata: the title element,
// mapped meta tags, RSS feed links and canonical links. Head metadata is
// near-universal and reliable but carries no quality signal of its own.
type HeadTags struct{}

// NewHeadTags creates a new HeadTags technique.
func NewHeadTags() *HeadTags {
	return &HeadTags{}
}

// Name returns the technique's identifier.
func (t *HeadTags) Name() string {
	return "headtags"
}

// Extract reads metadata from title, meta and link tags.
func (t *HeadTags) Extract(rawHTML string) (*pagemeta.Result, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	result := &pagemeta.Result{}

	if title := doc.Find("title").First(); title.Length() > 0 {
		result.Titles = []string{strings.TrimSpace(title.Text())}
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok {
			return
		}
		content, ok := sel.Attr("content")
		if !ok {
			return
		}
		if field, ok := metaNameFields[name]; ok {
			result.Append(field, content)
		}
	})

	doc.Find("link").Each(func(_ int, sel *goquery.Selection) {
		rel, ok := sel.Attr("rel")
		if !ok {
			return
		}
		href, hasHref := sel.Attr("href")
		linkType, _ := sel.Attr("type")
		if relContains(rel, "alternate") && linkType == "application/rss+xml" && hasHref {
			result.Feeds = append(result.Feeds, href)
		} else if relContains(rel, "canonical") && hasHref {
			result.URLs = append(result.URLs, href)
		}
	})

	return result, nil
}

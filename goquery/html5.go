package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Ensure HTML5Semantic implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*HTML5Semantic)(nil)

// HTML5Semantic extracts from HTML5 semantic elements: article headings and
// lead paragraphs, and video sources.
//
// High precision, low recall: it produces good values on the minority of
// pages that use these elements and expects the generic Semantic technique
// to sweep behind it for the more abundant, lower quality hits. Pipelines
// should run it alongside Semantic, not instead of it.
type HTML5Semantic struct{}

// NewHTML5Semantic creates a new HTML5Semantic technique.
func NewHTML5Semantic() *HTML5Semantic {
	return &HTML5Semantic{}
}

// Name returns the technique's identifier.
func (t *HTML5Semantic) Name() string {
	return "html5semantic"
}

// Extract reads article and video elements.
func (t *HTML5Semantic) Extract(rawHTML string) (*pagemeta.Result, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	result := &pagemeta.Result{}

	doc.Find("article").Each(func(_ int, article *goquery.Selection) {
		if title := article.Find("h1").First(); title.Length() > 0 {
			result.Titles = append(result.Titles, joinedText(title))
		}
		if desc := article.Find("p").First(); desc.Length() > 0 {
			result.Descriptions = append(result.Descriptions, joinedText(desc))
		}
	})

	doc.Find("video").Each(func(_ int, video *goquery.Selection) {
		video.Find("source").Each(func(_ int, source *goquery.Selection) {
			if src, ok := source.Attr("src"); ok {
				result.Videos = append(result.Videos, src)
			}
		})
	})

	return result, nil
}

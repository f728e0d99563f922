// Package readability adapts go-readability's article metadata into a
// pagemeta technique.
package readability

import (
	"strings"

	"github.com/fwojciec/pagemeta"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Technique implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*Technique)(nil)

// Technique maps go-readability article metadata into a partial result.
type Technique struct{}

// NewTechnique creates a new Technique.
func NewTechnique() *Technique {
	return &Technique{}
}

// Name returns the technique's identifier.
func (t *Technique) Name() string {
	return "readability"
}

// Extract runs readability against rawHTML and maps its article fields.
func (t *Technique) Extract(rawHTML string) (*pagemeta.Result, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagemeta.Result{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	result := &pagemeta.Result{}
	if article.Title != "" {
		result.Titles = []string{article.Title}
	}
	if article.Excerpt != "" {
		result.Descriptions = []string{article.Excerpt}
	}
	if article.Image != "" {
		result.Images = []string{article.Image}
	}
	if article.Byline != "" {
		result.Authors = []string{article.Byline}
	}
	return result, nil
}

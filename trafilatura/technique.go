// Package trafilatura adapts go-trafilatura's document metadata into a
// pagemeta technique.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagemeta"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Technique implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*Technique)(nil)

// Technique maps go-trafilatura page metadata into a partial result.
// Trafilatura combines meta tags, JSON-LD and content heuristics, so it
// often fills fields the flat tag techniques miss.
type Technique struct{}

// NewTechnique creates a new Technique.
func NewTechnique() *Technique {
	return &Technique{}
}

// Name returns the technique's identifier.
func (t *Technique) Name() string {
	return "trafilatura"
}

// Extract runs trafilatura against rawHTML and maps its metadata fields.
func (t *Technique) Extract(rawHTML string) (*pagemeta.Result, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagemeta.Result{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	extract, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	result := &pagemeta.Result{}
	meta := extract.Metadata
	if meta.Title != "" {
		result.Titles = []string{meta.Title}
	}
	if meta.Description != "" {
		result.Descriptions = []string{meta.Description}
	}
	if meta.Image != "" {
		result.Images = []string{meta.Image}
	}
	if meta.URL != "" {
		result.URLs = []string{meta.URL}
	}
	if meta.Author != "" {
		result.Authors = []string{meta.Author}
	}
	if meta.PageType != "" {
		result.Types = []string{meta.PageType}
	}
	return result, nil
}

package pagemeta

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Field names a metadata field in a Result. Technique rule tables and the
// merge policy refer to fields by these constants.
type Field string

// Field vocabulary for string-valued metadata.
const (
	FieldTitles       Field = "titles"
	FieldDescriptions Field = "descriptions"
	FieldImages       Field = "images"
	FieldURLs         Field = "urls"
	FieldFeeds        Field = "feeds"
	FieldVideos       Field = "videos"
	FieldAuthors      Field = "authors"
	FieldTypes        Field = "types"
)

// StringFields lists every string-valued field in the vocabulary.
var StringFields = []Field{
	FieldTitles,
	FieldDescriptions,
	FieldImages,
	FieldURLs,
	FieldFeeds,
	FieldVideos,
	FieldAuthors,
	FieldTypes,
}

// TwitterCard holds the normalized properties of one Twitter card. Keys are
// twitter: property suffixes with ":" replaced by "_" (e.g. "app_id_iphone").
type TwitterCard map[string]string

// Result holds the metadata extracted from one HTML document. Each slice
// preserves insertion order: document order within a technique, technique
// rule-table order across rules. A nil slice means the field was absent;
// absent and empty are equivalent, and absent fields are omitted from JSON.
//
// A Result is created fresh per extraction and owned by the caller after
// return; nothing retains or mutates it afterwards.
type Result struct {
	Titles       []string `json:"titles,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
	Images       []string `json:"images,omitempty"`
	URLs         []string `json:"urls,omitempty"`
	Feeds        []string `json:"feeds,omitempty"`
	Videos       []string `json:"videos,omitempty"`
	Authors      []string `json:"authors,omitempty"`
	Types        []string `json:"types,omitempty"`

	// OGTags maps normalized Open Graph property suffixes to their content.
	// Only present when the document carried a qualifying og:type tag.
	OGTags map[string]string `json:"og_tags,omitempty"`

	// TwitterCards holds at most one card, present only when the document
	// carried a qualifying twitter:card tag.
	TwitterCards []TwitterCard `json:"twitter_cards,omitempty"`
}

// ref returns a pointer to the sequence backing a string-valued field.
func (r *Result) ref(f Field) *[]string {
	switch f {
	case FieldTitles:
		return &r.Titles
	case FieldDescriptions:
		return &r.Descriptions
	case FieldImages:
		return &r.Images
	case FieldURLs:
		return &r.URLs
	case FieldFeeds:
		return &r.Feeds
	case FieldVideos:
		return &r.Videos
	case FieldAuthors:
		return &r.Authors
	case FieldTypes:
		return &r.Types
	}
	return nil
}

// Strings returns the value sequence for a string-valued field.
// Unknown fields return nil.
func (r *Result) Strings(f Field) []string {
	if ref := r.ref(f); ref != nil {
		return *ref
	}
	return nil
}

// Append adds values to a string-valued field, preserving insertion order.
// Unknown fields are ignored.
func (r *Result) Append(f Field, values ...string) {
	if ref := r.ref(f); ref != nil {
		*ref = append(*ref, values...)
	}
}

// Empty reports whether the result carries no extracted data.
func (r *Result) Empty() bool {
	for _, f := range StringFields {
		if len(r.Strings(f)) > 0 {
			return false
		}
	}
	return len(r.OGTags) == 0 && len(r.TwitterCards) == 0
}

// Title returns the first extracted title, or "".
func (r *Result) Title() string { return first(r.Titles) }

// Description returns the first extracted description, or "".
func (r *Result) Description() string { return first(r.Descriptions) }

// Image returns the first extracted image URL, or "".
func (r *Result) Image() string { return first(r.Images) }

// URL returns the first extracted canonical URL, or "".
func (r *Result) URL() string { return first(r.URLs) }

// Feed returns the first extracted feed URL, or "".
func (r *Result) Feed() string { return first(r.Feeds) }

// Fingerprint returns a stable hex digest of the result, suitable for
// deduplication by downstream indexers. Equal results always produce equal
// fingerprints because JSON encoding of the result is deterministic.
func (r *Result) Fingerprint() string {
	b, err := json.Marshal(r)
	if err != nil {
		// Result contains only strings and string maps; Marshal cannot fail.
		panic(err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

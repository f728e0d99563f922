package goquery

import (
	"github.com/fwojciec/pagemeta"
)

// Ensure Semantic implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*Semantic)(nil)

// textRule maps a tag to a destination field. The cap bounds the
// destination sequence while the rule runs, so a later, lower-quality rule
// contributes nothing once earlier rules filled the field to its cap.
type textRule struct {
	tag   string
	field pagemeta.Field
	max   int
}

// attrRule reads an attribute from up to max matched elements. Elements
// missing the attribute are skipped but still consume the cap.
type attrRule struct {
	tag   string
	field pagemeta.Field
	attr  string
	max   int
}

// Rule order encodes quality: h1 text is a better title candidate than h2,
// and so on, so each rule's hits land before the next rule's.
var textRules = []textRule{
	{"h1", pagemeta.FieldTitles, 3},
	{"h2", pagemeta.FieldTitles, 3},
	{"h3", pagemeta.FieldTitles, 1},
	{"p", pagemeta.FieldDescriptions, 5},
}

var attrRules = []attrRule{
	{"img", pagemeta.FieldImages, "src", 10},
}

// Semantic scrapes basic tags directly: img tags carry images, h1-h3 text
// often works as a title, p text as a description. A true last resort.
type Semantic struct{}

// NewSemantic creates a new Semantic technique.
func NewSemantic() *Semantic {
	return &Semantic{}
}

// Name returns the technique's identifier.
func (t *Semantic) Name() string {
	return "semantic"
}

// Extract applies the static rule tables in order.
func (t *Semantic) Extract(rawHTML string) (*pagemeta.Result, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	result := &pagemeta.Result{}

	for _, rule := range textRules {
		found := doc.Find(rule.tag)
		for i := 0; i < found.Length() && len(result.Strings(rule.field)) < rule.max; i++ {
			result.Append(rule.field, joinedText(found.Eq(i)))
		}
	}

	for _, rule := range attrRules {
		found := doc.Find(rule.tag)
		for i := 0; i < found.Length() && i < rule.max; i++ {
			if v, ok := found.Eq(i).Attr(rule.attr); ok {
				result.Append(rule.field, v)
			}
		}
	}

	return result, nil
}

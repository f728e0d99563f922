package pagemeta

// Technique extracts a partial metadata Result from an HTML document.
//
// Implementations are stateless aside from static rule tables: Extract is a
// pure function of its input, so one instance is safe for concurrent use and
// successive calls share no state. Malformed or empty markup is not an
// error; a technique that finds nothing returns a Result with absent fields.
// Only a hard failure of the underlying parser surfaces as an error, and the
// Extractor demotes it to "this technique produced nothing".
type Technique interface {
	// Extract parses html and returns the metadata this technique found.
	Extract(html string) (*Result, error)

	// Name returns the technique's identifier (e.g. "headtags").
	Name() string
}

// BaseTechnique is the no-op Technique. It finds nothing for any input and
// exists to anchor the field vocabulary baseline in tests and pipelines.
type BaseTechnique struct{}

// Extract returns an empty Result for any input.
func (BaseTechnique) Extract(html string) (*Result, error) {
	return &Result{}, nil
}

// Name returns the technique's identifier.
func (BaseTechnique) Name() string { return "base" }

package pagemeta

import "golang.org/x/sync/errgroup"

// MergeStrategy selects how the Extractor reconciles one field across
// technique results.
type MergeStrategy int

// Merge strategies for the per-field policy table.
const (
	// MergeReplace keeps the first non-empty sequence in priority order.
	MergeReplace MergeStrategy = iota

	// MergeAccumulate concatenates sequences across techniques in priority
	// order, up to the policy's cap.
	MergeAccumulate
)

// MergePolicy declares the per-field merge strategy. Fields missing from
// Strategies default to MergeReplace.
type MergePolicy struct {
	Strategies map[Field]MergeStrategy

	// AccumulateCap bounds the length of accumulated fields. Zero means
	// unbounded.
	AccumulateCap int
}

// DefaultMergePolicy returns the policy used when none is configured:
// single-answer fields (titles, descriptions, urls, authors, types) take the
// highest-trust non-empty sequence, while media and feed fields accumulate
// across techniques up to a cap of 10.
func DefaultMergePolicy() MergePolicy {
	return MergePolicy{
		Strategies: map[Field]MergeStrategy{
			FieldTitles:       MergeReplace,
			FieldDescriptions: MergeReplace,
			FieldURLs:         MergeReplace,
			FieldAuthors:      MergeReplace,
			FieldTypes:        MergeReplace,
			FieldImages:       MergeAccumulate,
			FieldVideos:       MergeAccumulate,
			FieldFeeds:        MergeAccumulate,
		},
		AccumulateCap: 10,
	}
}

// Extractor runs an ordered sequence of techniques against one document and
// merges their partial results into a single Result. Techniques are ordered
// by decreasing trust: structured social-card data and head tags outrank
// HTML5 semantic heuristics, which outrank generic tag scraping.
type Extractor struct {
	techniques  []Technique
	policy      MergePolicy
	parallel    bool
	failOnEmpty bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMergePolicy overrides the default per-field merge policy.
func WithMergePolicy(policy MergePolicy) Option {
	return func(e *Extractor) { e.policy = policy }
}

// WithParallel runs techniques concurrently. Partial results are still
// merged in technique order, so the output is identical to a sequential run.
func WithParallel() Option {
	return func(e *Extractor) { e.parallel = true }
}

// WithFailOnEmpty makes Extract return ENOTFOUND when every technique
// produced nothing.
func WithFailOnEmpty() Option {
	return func(e *Extractor) { e.failOnEmpty = true }
}

// NewExtractor creates an Extractor that runs techniques in the given
// order, highest trust first.
func NewExtractor(techniques []Technique, opts ...Option) *Extractor {
	e := &Extractor{
		techniques: techniques,
		policy:     DefaultMergePolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Techniques returns the configured technique order.
func (e *Extractor) Techniques() []Technique {
	out := make([]Technique, len(e.techniques))
	copy(out, e.techniques)
	return out
}

// Extract runs every technique against html and merges their partial
// results. Every technique always runs, even when an earlier one already
// supplied a field, because auxiliary fields (og_tags, twitter_cards) are
// technique-specific and never supplied by others. A technique error counts
// as an empty partial result rather than failing the extraction.
func (e *Extractor) Extract(html string) (*Result, error) {
	partials := make([]*Result, len(e.techniques))

	if e.parallel {
		var g errgroup.Group
		for i, technique := range e.techniques {
			g.Go(func() error {
				partials[i] = runTechnique(technique, html)
				return nil
			})
		}
		// Workers never return errors; Wait is only a barrier.
		_ = g.Wait()
	} else {
		for i, technique := range e.techniques {
			partials[i] = runTechnique(technique, html)
		}
	}

	merged := e.merge(partials)
	if e.failOnEmpty && merged.Empty() {
		return nil, Errorf(ENOTFOUND, "no technique extracted any metadata")
	}
	return merged, nil
}

// runTechnique demotes technique failures to empty partial results.
func runTechnique(technique Technique, html string) *Result {
	result, err := technique.Extract(html)
	if err != nil || result == nil {
		return nil
	}
	return result
}

// merge composes partial results field by field according to the policy.
// It has no error paths: partials are already-successful results.
func (e *Extractor) merge(partials []*Result) *Result {
	merged := &Result{}

	for _, field := range StringFields {
		strategy := e.policy.Strategies[field]
		for _, partial := range partials {
			if partial == nil {
				continue
			}
			values := partial.Strings(field)
			if len(values) == 0 {
				continue
			}
			if strategy == MergeReplace {
				merged.Append(field, values...)
				break
			}
			if limit := e.policy.AccumulateCap; limit > 0 {
				room := limit - len(merged.Strings(field))
				if room <= 0 {
					break
				}
				if len(values) > room {
					values = values[:room]
				}
			}
			merged.Append(field, values...)
		}
	}

	// Auxiliary fields are produced by exactly one technique each; the
	// first partial carrying one wins.
	for _, partial := range partials {
		if partial == nil {
			continue
		}
		if merged.OGTags == nil && len(partial.OGTags) > 0 {
			merged.OGTags = partial.OGTags
		}
		if merged.TwitterCards == nil && len(partial.TwitterCards) > 0 {
			merged.TwitterCards = partial.TwitterCards
		}
	}

	return merged
}

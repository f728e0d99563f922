package pagemeta_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure BaseTechnique implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = pagemeta.BaseTechnique{}

func fixed(name string, result *pagemeta.Result) *mock.Technique {
	return &mock.Technique{
		ExtractFn: func(html string) (*pagemeta.Result, error) { return result, nil },
		NameFn:    func() string { return name },
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("replace keeps first non-empty sequence in priority order", func(t *testing.T) {
		t.Parallel()

		e := pagemeta.NewExtractor([]pagemeta.Technique{
			fixed("first", &pagemeta.Result{}),
			fixed("second", &pagemeta.Result{Titles: []string{"A"}}),
			fixed("third", &pagemeta.Result{Titles: []string{"B"}}),
		})

		result, err := e.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, result.Titles)
	})

	t.Run("accumulate concatenates across techniques up to the cap", func(t *testing.T) {
		t.Parallel()

		e := pagemeta.NewExtractor([]pagemeta.Technique{
			fixed("first", &pagemeta.Result{Images: []string{"1", "2"}}),
			fixed("second", &pagemeta.Result{Images: []string{"3", "4"}}),
		}, pagemeta.WithMergePolicy(pagemeta.MergePolicy{
			Strategies: map[pagemeta.Field]pagemeta.MergeStrategy{
				pagemeta.FieldImages: pagemeta.MergeAccumulate,
			},
			AccumulateCap: 3,
		}))

		result, err := e.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, result.Images)
	})

	t.Run("default policy accumulates images and replaces titles", func(t *testing.T) {
		t.Parallel()

		e := pagemeta.NewExtractor([]pagemeta.Technique{
			fixed("first", &pagemeta.Result{Titles: []string{"A"}, Images: []string{"1"}}),
			fixed("second", &pagemeta.Result{Titles: []string{"B"}, Images: []string{"2"}}),
		})

		result, err := e.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, result.Titles)
		assert.Equal(t, []string{"1", "2"}, result.Images)
	})

	t.Run("every technique runs even when fields are already supplied", func(t *testing.T) {
		t.Parallel()

		calls := 0
		counting := &mock.Technique{
			ExtractFn: func(html string) (*pagemeta.Result, error) {
				calls++
				return &pagemeta.Result{}, nil
			},
		}

		e := pagemeta.NewExtractor([]pagemeta.Technique{
			fixed("first", &pagemeta.Result{Titles: []string{"A"}}),
			counting,
			counting,
		})

		_, err := e.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("auxiliary fields survive the merge", func(t *testing.T) {
		t.Parallel()

		e := pagemeta.NewExtractor([]pagemeta.Technique{
			fixed("opengraph", &pagemeta.Result{OGTags: map[string]string{"type": "article"}}),
			fixed("twitter", &pagemeta.Result{TwitterCards: []pagemeta.TwitterCard{{"card": "summary"}}}),
		})

		result, err := e.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"type": "article"}, result.OGTags)
		require.Len(t, result.TwitterCards, 1)
		assert.Equal(t, "summary", result.TwitterCards[0]["card"])
	})

	t.Run("technique error counts as an empty partial result", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Technique{
			ExtractFn: func(html string) (*pagemeta.Result, error) {
				return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML")
			},
		}

		e := pagemeta.NewExtractor([]pagemeta.Technique{
			failing,
			fixed("fallback", &pagemeta.Result{Titles: []string{"A"}}),
		})

		result, err := e.Extract("not html at all")

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, result.Titles)
	})

	t.Run("fail on empty returns ENOTFOUND when nothing was extracted", func(t *testing.T) {
		t.Parallel()

		e := pagemeta.NewExtractor(
			[]pagemeta.Technique{pagemeta.BaseTechnique{}},
			pagemeta.WithFailOnEmpty(),
		)

		_, err := e.Extract("<html></html>")

		require.Error(t, err)
		assert.Equal(t, pagemeta.ENOTFOUND, pagemeta.ErrorCode(err))
	})

	t.Run("parallel run matches sequential run", func(t *testing.T) {
		t.Parallel()

		techniques := []pagemeta.Technique{
			fixed("first", &pagemeta.Result{Titles: []string{"A"}, Images: []string{"1"}}),
			fixed("second", &pagemeta.Result{Titles: []string{"B"}, Images: []string{"2"}}),
			fixed("third", &pagemeta.Result{Descriptions: []string{"D"}}),
		}

		sequential, err := pagemeta.NewExtractor(techniques).Extract("<html></html>")
		require.NoError(t, err)

		parallel, err := pagemeta.NewExtractor(techniques, pagemeta.WithParallel()).Extract("<html></html>")
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel)
	})
}

func TestExtractor_Techniques(t *testing.T) {
	t.Parallel()

	techniques := []pagemeta.Technique{pagemeta.BaseTechnique{}}
	e := pagemeta.NewExtractor(techniques)

	got := e.Techniques()
	require.Len(t, got, 1)

	// Mutating the returned slice must not affect the extractor.
	got[0] = nil
	assert.NotNil(t, e.Techniques()[0])
}

func TestBaseTechnique(t *testing.T) {
	t.Parallel()

	result, err := pagemeta.BaseTechnique{}.Extract("<html><head><title>T</title></head></html>")

	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Equal(t, "base", pagemeta.BaseTechnique{}.Name())
}

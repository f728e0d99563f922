package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Twitter implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*goquery.Twitter)(nil)

func TestTwitter_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "twitter", goquery.NewTwitter().Name())
}

func TestTwitter_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts one card when twitter:card is present", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="twitter:card" content="player">
<meta name="twitter:site" content="@youtube">
<meta name="twitter:title" content="The Big Bang Theory (bloopers)">
<meta name="twitter:app:id:iphone" content="544007664">
<meta name="twitter:player:width" content="960">
</head></html>`

		result, err := goquery.NewTwitter().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.TwitterCards, 1)

		card := result.TwitterCards[0]
		assert.Equal(t, "player", card["card"])
		assert.Equal(t, "@youtube", card["site"])
		assert.Equal(t, "The Big Bang Theory (bloopers)", card["title"])
		assert.Equal(t, "544007664", card["app_id_iphone"])
		assert.Equal(t, "960", card["player_width"])
	})

	t.Run("no card without a twitter:card property", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="twitter:site" content="@youtube">
<meta name="twitter:title" content="Stray tag">
</head></html>`

		result, err := goquery.NewTwitter().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, result.TwitterCards)
		assert.True(t, result.Empty())
	})

	t.Run("last value wins per normalized key", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="twitter:card" content="summary">
<meta name="twitter:title" content="First">
<meta name="twitter:title" content="Second">
</head></html>`

		result, err := goquery.NewTwitter().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.TwitterCards, 1)
		assert.Equal(t, "Second", result.TwitterCards[0]["title"])
	})

	t.Run("falls back from name to property attribute", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="twitter:card" content="summary">
<meta property="twitter:description" content="D">
</head></html>`

		result, err := goquery.NewTwitter().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.TwitterCards, 1)
		assert.Equal(t, "summary", result.TwitterCards[0]["card"])
		assert.Equal(t, "D", result.TwitterCards[0]["description"])
	})

	t.Run("skips tags without content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="twitter:card" content="summary">
<meta name="twitter:title">
</head></html>`

		result, err := goquery.NewTwitter().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.TwitterCards, 1)
		_, ok := result.TwitterCards[0]["title"]
		assert.False(t, ok)
	})
}

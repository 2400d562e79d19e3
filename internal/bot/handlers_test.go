package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"oraclebot/internal/quotes"
)

func TestMainKeyboardLayout(t *testing.T) {
	kb := mainKeyboard(&quotes.DefaultCatalog)

	// Three categories plus Random, two buttons per row.
	require.Len(t, kb.Keyboard, 2)
	require.Equal(t, "🎬 Movies", kb.Keyboard[0][0].Text)
	require.Equal(t, "🎵 Songs", kb.Keyboard[0][1].Text)
	require.Equal(t, "✨ Affirmations", kb.Keyboard[1][0].Text)
	require.Equal(t, randomButton, kb.Keyboard[1][1].Text)
	require.True(t, kb.ResizeKeyboard)
}

func TestMainKeyboardOmitsRandomWithoutPool(t *testing.T) {
	catalog := &quotes.Catalog{
		Categories: []quotes.Category{
			{Key: "movies", Button: "🎬 Movies", Subtags: []string{"Friends"}},
		},
	}

	kb := mainKeyboard(catalog)
	require.Len(t, kb.Keyboard, 1)
	require.Len(t, kb.Keyboard[0], 1)
	require.Equal(t, "🎬 Movies", kb.Keyboard[0][0].Text)
}

func TestSubKeyboardEndsWithBack(t *testing.T) {
	movies, ok := quotes.DefaultCatalog.ByButton("🎬 Movies")
	require.True(t, ok)

	kb := subKeyboard(movies)

	// Two subtags, then one, then the Back row.
	require.Len(t, kb.Keyboard, 3)
	require.Equal(t, "Supernatural", kb.Keyboard[0][0].Text)
	require.Equal(t, "Friends", kb.Keyboard[0][1].Text)
	require.Equal(t, "Rebelde Way", kb.Keyboard[1][0].Text)
	require.Equal(t, backButton, kb.Keyboard[2][0].Text)
}

func TestCaptionFor(t *testing.T) {
	require.Equal(t, "🎬 some quote", captionFor(quotes.Category{Button: "🎬 Movies"}, "some quote"))
	require.Equal(t, "bare quote", captionFor(quotes.Category{}, "bare quote"))
}

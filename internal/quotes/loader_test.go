package quotes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeQuotes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	require.Equal(t, []string{Placeholder}, Load(path))
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeQuotes(t, "\n   \n\t\n")

	require.Equal(t, []string{Placeholder}, Load(path))
}

func TestLoadTrimsAndKeepsOrder(t *testing.T) {
	path := writeQuotes(t, "  first \n\nsecond\n   \nthird  \n")

	require.Equal(t, []string{"first", "second", "third"}, Load(path))
}

func TestLoadTagged(t *testing.T) {
	path := writeQuotes(t, ""+
		"[friends] We were on a break!\n"+
		"[supernatural] Driver picks the music.\n"+
		"[friends]   How you doin'?\n"+
		"untagged line\n")

	require.Equal(t,
		[]string{"We were on a break!", "How you doin'?"},
		LoadTagged(path, "friends"),
	)
	require.Equal(t,
		[]string{"Driver picks the music."},
		LoadTagged(path, "supernatural"),
	)
}

func TestLoadTaggedNoMatch(t *testing.T) {
	path := writeQuotes(t, "[friends] We were on a break!\n")

	require.Equal(t, []string{Placeholder}, LoadTagged(path, "rebelde_way"))
}

func TestLoadTaggedMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	require.Equal(t, []string{Placeholder}, LoadTagged(path, "friends"))
}

func TestTagFor(t *testing.T) {
	require.Equal(t, "rebelde_way", TagFor("Rebelde Way"))
	require.Equal(t, "supernatural", TagFor("Supernatural"))
}

package state

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	// Truncated SHA-1 of the UTF-8 text, 16 lowercase hex chars.
	require.Equal(t, "86f7e437faa5a7fc", Fingerprint("a"))

	require.Equal(t, Fingerprint("same text"), Fingerprint("same text"))
	require.NotEqual(t, Fingerprint("one"), Fingerprint("two"))
	require.Len(t, Fingerprint("любой текст"), 16)
}

func TestRecentAbsent(t *testing.T) {
	root := Root{}

	require.Empty(t, root.Recent(1, "songs"))
	// Reading must not materialize the user entry.
	require.Empty(t, root)
}

func TestRememberTruncatesOldest(t *testing.T) {
	root := Root{}

	for i := 0; i < RecentN+5; i++ {
		root.Remember(1, "songs", fmt.Sprintf("fp%02d", i))
	}

	bucket := root.Recent(1, "songs")
	require.Len(t, bucket, RecentN)
	// The five oldest entries are gone, order is preserved.
	require.Equal(t, "fp05", bucket[0])
	require.Equal(t, fmt.Sprintf("fp%02d", RecentN+4), bucket[RecentN-1])
}

func TestResetBucket(t *testing.T) {
	root := Root{}
	root.Remember(1, "songs", "aaaa")
	root.Remember(1, "songs", "bbbb")

	root.ResetBucket(1, "songs")

	require.Empty(t, root.Recent(1, "songs"))
}

func TestBucketsAreIndependent(t *testing.T) {
	root := Root{}
	root.Remember(1, "songs", "aaaa")
	root.Remember(1, "movies:friends", "bbbb")
	root.Remember(2, "songs", "cccc")

	require.Equal(t, []string{"aaaa"}, root.Recent(1, "songs"))
	require.Equal(t, []string{"bbbb"}, root.Recent(1, "movies:friends"))
	require.Equal(t, []string{"cccc"}, root.Recent(2, "songs"))
}

func TestLastImage(t *testing.T) {
	root := Root{}

	_, ok := root.LastImage(1, "songs")
	require.False(t, ok)

	root.SetLastImage(1, "songs", "cover.jpg")

	name, ok := root.LastImage(1, "songs")
	require.True(t, ok)
	require.Equal(t, "cover.jpg", name)

	// The marker is a separate key from the recency bucket.
	require.Empty(t, root.Recent(1, "songs"))
}

func TestRecentAfterJSONRoundTrip(t *testing.T) {
	root := Root{}
	root.Remember(7, "affirmations", "aaaa")
	root.Remember(7, "affirmations", "bbbb")
	root.SetLastImage(7, "affirmations", "sun.png")

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var reloaded Root
	require.NoError(t, json.Unmarshal(data, &reloaded))

	require.Equal(t, []string{"aaaa", "bbbb"}, reloaded.Recent(7, "affirmations"))
	name, ok := reloaded.LastImage(7, "affirmations")
	require.True(t, ok)
	require.Equal(t, "sun.png", name)

	// And mutation still truncates correctly on the decoded representation.
	for i := 0; i < RecentN; i++ {
		reloaded.Remember(7, "affirmations", fmt.Sprintf("fp%02d", i))
	}
	require.Len(t, reloaded.Recent(7, "affirmations"), RecentN)
}

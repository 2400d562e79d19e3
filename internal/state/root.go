package state

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// RecentN is the anti-repeat depth: how many fingerprints are kept per
// (user, category) bucket.
const RecentN = 20

// lastImageSuffix marks the single-slot last-shown-image keys inside a
// user's category map.
const lastImageSuffix = "__last_image"

// Root is the entire persisted anti-repeat state: stringified user id ->
// category key -> either a fingerprint bucket ([]string, oldest first) or a
// last-image filename (string, for keys suffixed "__last_image").
//
// Values stay untyped so that keys written by other revisions of the bot
// round-trip through load/save untouched.
type Root map[string]map[string]any

// Fingerprint returns the recency digest of an item's text: truncated SHA-1
// over the UTF-8 bytes, 16 lowercase hex characters.
func Fingerprint(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])[:16]
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// toStrings coerces a stored bucket value. Buckets arrive as []any after a
// JSON round trip and as []string when set in-process.
func toStrings(v any) []string {
	switch b := v.(type) {
	case []string:
		return b
	case []any:
		out := make([]string, 0, len(b))
		for _, item := range b {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (r Root) user(userID int64) map[string]any {
	u, ok := r[userKey(userID)]
	if !ok {
		u = make(map[string]any)
		r[userKey(userID)] = u
	}
	return u
}

// Recent returns the fingerprint bucket for (user, category), oldest first.
// Absent buckets yield an empty slice; the root is not mutated.
func (r Root) Recent(userID int64, category string) []string {
	u, ok := r[userKey(userID)]
	if !ok {
		return nil
	}
	return toStrings(u[category])
}

// Remember appends a fingerprint to the (user, category) bucket, dropping
// the oldest entries so the bucket never exceeds RecentN. The caller is
// responsible for persisting the root afterwards.
func (r Root) Remember(userID int64, category, fingerprint string) {
	u := r.user(userID)
	bucket := append(toStrings(u[category]), fingerprint)
	if len(bucket) > RecentN {
		bucket = bucket[len(bucket)-RecentN:]
	}
	u[category] = bucket
}

// ResetBucket clears the (user, category) bucket. Used when every candidate
// has been shown within the last RecentN picks.
func (r Root) ResetBucket(userID int64, category string) {
	r.user(userID)[category] = []string{}
}

// LastImage returns the most recently shown image filename for
// (user, category), if any.
func (r Root) LastImage(userID int64, category string) (string, bool) {
	u, ok := r[userKey(userID)]
	if !ok {
		return "", false
	}
	name, ok := u[category+lastImageSuffix].(string)
	return name, ok && name != ""
}

// SetLastImage records the image filename just shown for (user, category).
func (r Root) SetLastImage(userID int64, category, name string) {
	r.user(userID)[category+lastImageSuffix] = name
}

package picker

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"oraclebot/internal/state"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Image is a picked image payload: raw bytes plus the display filename.
type Image struct {
	Name string
	Data []byte
}

// Picker selects quotes and images while avoiding recent repeats per
// (user, category). Every pick is a full load-mutate-save round trip on the
// state root; the mutex serializes those round trips so concurrent picks
// cannot overwrite each other's saves.
type Picker struct {
	store state.Store
	log   zerolog.Logger
	rnd   *rand.Rand
	mu    sync.Mutex
}

func New(store state.Store, log zerolog.Logger) *Picker {
	return &Picker{
		store: store,
		log:   log,
		rnd:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// PickQuote returns one of candidates chosen uniformly at random among those
// not shown to the user within the last state.RecentN picks for this
// category. When every candidate has been seen recently, the bucket is
// cleared and the full pool becomes eligible again.
//
// candidates must be non-empty; the quote loader guarantees that with its
// placeholder fallback.
func (p *Picker) PickQuote(userID int64, category string, candidates []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	root := p.store.Load()

	seen := make(map[string]bool, state.RecentN)
	for _, fp := range root.Recent(userID, category) {
		seen[fp] = true
	}

	eligible := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !seen[state.Fingerprint(c)] {
			eligible = append(eligible, c)
		}
	}

	if len(eligible) == 0 {
		// Exhausted: every candidate was shown recently. Reset and make
		// the whole pool eligible again.
		p.log.Debug().
			Int64("user_id", userID).
			Str("category", category).
			Msg("candidates exhausted, resetting bucket")
		root.ResetBucket(userID, category)
		p.store.Save(root)
		eligible = candidates
	}

	choice := eligible[p.rnd.IntN(len(eligible))]

	root.Remember(userID, category, state.Fingerprint(choice))
	p.store.Save(root)

	return choice
}

// PickImage returns a random image from dir, avoiding only the single image
// shown last for (user, category). Unlike quotes, image history is one deep:
// with two or more images the previous one is excluded, with exactly one it
// repeats. Returns nil when the directory has no usable images or the file
// cannot be read.
func (p *Picker) PickImage(userID int64, category, dir string) *Image {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.log.Warn().Err(err).Str("dir", dir).Msg("unable to list image directory")
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	root := p.store.Load()
	last, _ := root.LastImage(userID, category)

	choices := make([]string, 0, len(names))
	for _, n := range names {
		if n != last {
			choices = append(choices, n)
		}
	}
	if len(choices) == 0 {
		choices = names
	}

	name := choices[p.rnd.IntN(len(choices))]

	root.SetLastImage(userID, category, name)
	p.store.Save(root)

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		p.log.Warn().Err(err).Str("image", name).Msg("unable to read image file")
		return nil
	}

	return &Image{Name: name, Data: data}
}

package quotes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Category describes one quote bucket the bot serves.
type Category struct {
	Key     string   `toml:"key"`     // state/category key, e.g. "movies"
	Button  string   `toml:"button"`  // keyboard label, e.g. "🎬 Movies"
	File    string   `toml:"file"`    // quotes file under QUOTES_DIR
	Subtags []string `toml:"subtags"` // sub-menu labels; empty for flat categories
	Random  bool     `toml:"random"`  // participates in the Random button pool
}

// Catalog is the ordered list of categories, loaded from a TOML file with a
// built-in fallback when the file is absent.
type Catalog struct {
	Categories []Category `toml:"categories"`
}

// DefaultCatalog mirrors the original menu: movies with three franchise
// sub-menus, plus flat songs and affirmations that also feed Random.
var DefaultCatalog = Catalog{
	Categories: []Category{
		{
			Key:     "movies",
			Button:  "🎬 Movies",
			File:    "movies.txt",
			Subtags: []string{"Supernatural", "Friends", "Rebelde Way"},
		},
		{
			Key:    "songs",
			Button: "🎵 Songs",
			File:   "songs.txt",
			Random: true,
		},
		{
			Key:    "affirmations",
			Button: "✨ Affirmations",
			File:   "affirmations.txt",
			Random: true,
		},
	},
}

// NewCatalog loads the category catalog from path. A missing file yields the
// default catalog.
func NewCatalog(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c := DefaultCatalog
		return &c, nil
	}

	var catalog Catalog
	if _, err := toml.DecodeFile(path, &catalog); err != nil {
		return nil, err
	}
	if len(catalog.Categories) == 0 {
		catalog = DefaultCatalog
	}
	return &catalog, nil
}

// ByButton returns the category whose keyboard label matches button.
func (c *Catalog) ByButton(button string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Button == button {
			return cat, true
		}
	}
	return Category{}, false
}

// BySubtagButton returns the category owning the pressed sub-menu button,
// along with the derived tag.
func (c *Catalog) BySubtagButton(button string) (Category, string, bool) {
	for _, cat := range c.Categories {
		for _, sub := range cat.Subtags {
			if sub == button {
				return cat, TagFor(button), true
			}
		}
	}
	return Category{}, "", false
}

// RandomPool returns the flat categories eligible for the Random button.
func (c *Catalog) RandomPool() []Category {
	var pool []Category
	for _, cat := range c.Categories {
		if cat.Random && len(cat.Subtags) == 0 {
			pool = append(pool, cat)
		}
	}
	return pool
}

// TagFor maps a sub-menu button label to its bracket tag in the quotes
// file: lowercased, spaces to underscores ("Rebelde Way" -> "rebelde_way").
func TagFor(button string) string {
	return strings.ReplaceAll(strings.ToLower(button), " ", "_")
}

// StateKey returns the (user, category) key used for anti-repeat state:
// the bare category key for flat categories, "key:tag" for tagged picks.
func (cat Category) StateKey(tag string) string {
	if tag == "" {
		return cat.Key
	}
	return cat.Key + ":" + tag
}

// ImageDir resolves the image folder for this category under root, one
// level deeper for tagged picks.
func (cat Category) ImageDir(root, tag string) string {
	if tag == "" {
		return filepath.Join(root, cat.Key)
	}
	return filepath.Join(root, cat.Key, tag)
}

// Candidates loads this category's quote pool from quotesDir, filtered to
// tag when set. Never empty: missing or empty sources yield a placeholder.
func (cat Category) Candidates(quotesDir, tag string) []string {
	path := filepath.Join(quotesDir, cat.File)
	if tag == "" {
		return Load(path)
	}
	return LoadTagged(path, tag)
}

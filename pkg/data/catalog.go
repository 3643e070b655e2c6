package data

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Catalog owns every item and keeps a genre index into them. Items are
// never removed; only their availability changes.
type Catalog struct {
	items []*Item

	// folded genre -> indices into items, in insertion order
	genres     map[string][]int
	genreNames map[string]string
	genreOrder []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		items:      []*Item{},
		genres:     make(map[string][]int),
		genreNames: make(map[string]string),
	}
}

// foldKey builds genre index keys. Full folding is fine for grouping;
// titles are matched with simple folding in FindByTitle.
func foldKey(s string) string {
	return cases.Fold().String(s)
}

func (c *Catalog) AddItem(item *Item) {
	c.items = append(c.items, item)

	key := foldKey(item.Genre)
	if _, ok := c.genres[key]; !ok {
		c.genreNames[key] = item.Genre
		c.genreOrder = append(c.genreOrder, key)
	}
	c.genres[key] = append(c.genres[key], len(c.items)-1)
}

// GenreIterator returns an iterator over the available items of a genre.
// An unknown genre yields an empty iterator.
func (c *Catalog) GenreIterator(genre string) *AvailabilityIterator {
	return newAvailabilityIterator(c.items, c.genres[foldKey(genre)])
}

// FindByTitle returns the first item, in insertion order, whose title
// matches ignoring case. "STRASSE" does not match "Straße".
func (c *Catalog) FindByTitle(title string) (*Item, error) {
	for _, item := range c.items {
		if strings.EqualFold(item.Title, title) {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
}

func (c *Catalog) Checkout(title string) error {
	item, err := c.FindByTitle(title)
	if err != nil {
		return err
	}
	return item.Checkout()
}

func (c *Catalog) ReturnItem(title string) error {
	item, err := c.FindByTitle(title)
	if err != nil {
		return err
	}
	item.Return()
	return nil
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns all items in insertion order.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Genres returns genre names as first added, in first-seen order.
func (c *Catalog) Genres() []string {
	out := make([]string, 0, len(c.genreOrder))
	for _, key := range c.genreOrder {
		out = append(out, c.genreNames[key])
	}
	return out
}

// GenreCount returns how many items a genre holds and how many of them are
// on the shelf.
func (c *Catalog) GenreCount(genre string) (total, available int) {
	bucket := c.genres[foldKey(genre)]
	for _, idx := range bucket {
		if c.items[idx].IsAvailable() {
			available++
		}
	}
	return len(bucket), available
}

// CheckedOut returns the items currently lent out, in insertion order.
func (c *Catalog) CheckedOut() []*Item {
	var out []*Item
	for _, item := range c.items {
		if !item.IsAvailable() {
			out = append(out, item)
		}
	}
	return out
}

package data

import "fmt"

// Item is a single catalog entry. Title identifies it within a catalog.
type Item struct {
	Title  string
	Author string
	Genre  string

	available bool
}

func NewItem(title, author, genre string) *Item {
	return &Item{
		Title:     title,
		Author:    author,
		Genre:     genre,
		available: true,
	}
}

func (i *Item) IsAvailable() bool {
	return i.available
}

// Checkout marks the item as lent out. It fails if the item is already out.
func (i *Item) Checkout() error {
	if !i.available {
		return fmt.Errorf("%w: %q", ErrNotAvailable, i.Title)
	}
	i.available = false
	return nil
}

// Return puts the item back on the shelf. Returning an item that is
// already on the shelf does nothing.
func (i *Item) Return() {
	if !i.available {
		i.available = true
	}
}

func (i *Item) String() string {
	return fmt.Sprintf("%s by %s (%s)", i.Title, i.Author, i.Genre)
}

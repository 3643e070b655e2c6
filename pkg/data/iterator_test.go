package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIteratorSkipsItemsCheckedOutMidIteration(t *testing.T) {
	c := NewCatalog()
	c.AddItem(NewItem("A", "x", "G"))
	c.AddItem(NewItem("B", "x", "G"))
	c.AddItem(NewItem("C", "x", "G"))

	it := c.GenreIterator("G")

	require.True(t, it.HasMore())
	first, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", first.Title)

	// B goes out between probes
	require.True(t, it.HasMore())
	require.NoError(t, c.Checkout("B"))

	next, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "C", next.Title)

	assert.False(t, it.HasMore())
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
}

func TestIteratorSeesReturnsAheadOfCursor(t *testing.T) {
	c := NewCatalog()
	c.AddItem(NewItem("A", "x", "G"))
	c.AddItem(NewItem("B", "x", "G"))
	require.NoError(t, c.Checkout("B"))

	it := c.GenreIterator("G")
	_, err := it.Next()
	require.NoError(t, err)

	require.NoError(t, c.ReturnItem("B"))
	assert.Equal(t, []string{"B"}, titles(it))
}

func TestIteratorIsNotRestartable(t *testing.T) {
	c := newTestCatalog()
	it := c.GenreIterator("Science Fiction")

	assert.Len(t, titles(it), 2)
	assert.Empty(t, titles(it))
}

func TestIteratorAllStopsEarly(t *testing.T) {
	c := newTestCatalog()
	it := c.GenreIterator("Science Fiction")

	for range it.All() {
		break
	}
	assert.Equal(t, []string{"Brave New World"}, titles(it))
}

func TestIteratorNeverYieldsUnavailable(t *testing.T) {
	genres := []string{"Fantasy", "Gothic", "Science Fiction"}

	rapid.Check(t, func(t *rapid.T) {
		c := NewCatalog()
		n := rapid.IntRange(0, 12).Draw(t, "items")
		for i := 0; i < n; i++ {
			genre := rapid.SampledFrom(genres).Draw(t, "genre")
			item := NewItem(string(rune('a'+i)), "author", genre)
			if rapid.Bool().Draw(t, "out") {
				_ = item.Checkout()
			}
			c.AddItem(item)
		}

		genre := rapid.SampledFrom(genres).Draw(t, "iterate")
		it := c.GenreIterator(genre)
		lastIdx := -1

		for step := 0; step < 3*n+1; step++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				if !it.HasMore() {
					continue
				}
				item, err := it.Next()
				if err != nil {
					t.Fatalf("Next() after HasMore() = %v", err)
				}
				if !item.IsAvailable() {
					t.Fatalf("iterator yielded unavailable item %q", item.Title)
				}
				if foldKey(item.Genre) != foldKey(genre) {
					t.Fatalf("iterator yielded %q from genre %q", item.Title, item.Genre)
				}
				idx := int(item.Title[0] - 'a')
				if idx <= lastIdx {
					t.Fatalf("iterator went backwards: %d after %d", idx, lastIdx)
				}
				lastIdx = idx
			case 1:
				if n > 0 {
					_ = c.Checkout(string(rune('a' + rapid.IntRange(0, n-1).Draw(t, "checkout"))))
				}
			case 2:
				if n > 0 {
					_ = c.ReturnItem(string(rune('a' + rapid.IntRange(0, n-1).Draw(t, "return"))))
				}
			}
		}
	})
}

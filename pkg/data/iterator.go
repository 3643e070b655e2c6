package data

import "iter"

// AvailabilityIterator walks a genre bucket and yields only the items that
// are available at the moment they are reached. Availability is checked on
// every probe, so items checked out mid-iteration are skipped.
type AvailabilityIterator struct {
	items  []*Item
	bucket []int
	cursor int
}

func newAvailabilityIterator(items []*Item, bucket []int) *AvailabilityIterator {
	return &AvailabilityIterator{items: items, bucket: bucket}
}

// HasMore reports whether an available item remains. It moves the cursor
// past unavailable items as it looks.
func (it *AvailabilityIterator) HasMore() bool {
	for it.cursor < len(it.bucket) {
		if it.items[it.bucket[it.cursor]].IsAvailable() {
			return true
		}
		it.cursor++
	}
	return false
}

func (it *AvailabilityIterator) Next() (*Item, error) {
	if !it.HasMore() {
		return nil, ErrNoSuchElement
	}
	item := it.items[it.bucket[it.cursor]]
	it.cursor++
	return item, nil
}

// All adapts the iterator for range loops. It shares the iterator's cursor,
// so items consumed by an earlier loop are not seen again.
func (it *AvailabilityIterator) All() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for it.HasMore() {
			item, _ := it.Next()
			if !yield(item) {
				return
			}
		}
	}
}

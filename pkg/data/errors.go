package data

import "errors"

var (
	ErrNotFound     = errors.New("no book under that title was found")
	ErrNotAvailable = errors.New("this book is not available")

	// ErrNoSuchElement is returned by AvailabilityIterator.Next when the
	// iterator is exhausted.
	ErrNoSuchElement = errors.New("no more available items")
)

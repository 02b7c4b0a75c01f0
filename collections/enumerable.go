package collections

import "iter"

// Enumerable is the selection surface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// replayable source of elements without depending on *Collection.
type Enumerable[T any] interface {
	// Seq returns an iterator that yields the same elements in the same
	// order every time it is ranged over.
	Seq() iter.Seq[T]

	// Count returns the number of items.
	Count() int

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, error)

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, error)

	// Single returns the only item matching fns[0].
	Single(fns ...func(T) bool) (T, error)

	// ElementAt returns the item at index, counting matches of fns[0] only
	// when a predicate is given.
	ElementAt(index int, fns ...func(T) bool) (T, error)
}

var _ Enumerable[int] = (*Collection[int])(nil)

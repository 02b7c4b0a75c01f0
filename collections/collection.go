package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/fabianp19/Linq/selection"
)

// Collection is an immutable, ordered list of T that can be read as an
// [iter.Seq] and queried with the element operations of package selection.
//
// Transformation methods return a *new* Collection and leave the receiver
// unchanged, so the same Collection can be ranged over any number of times
// and always yields the same elements in the same order.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Element operations
//
//	first, err := c.First(func(n int) bool { return n > 2 })
//	last := c.LastOrDefault()
//	only, err := c.Where(func(n int) bool { return n == 3 }).Single()
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

// Collect drains seq into a new Collection. seq must be finite.
func Collect[T any](seq iter.Seq[T]) *Collection[T] {
	return &Collection[T]{items: slices.Collect(seq)}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T { return slices.Clone(c.items) }

// Seq returns an iterator over the items in order.
func (c *Collection[T]) Seq() iter.Seq[T] { return slices.Values(c.items) }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	item, err := c.ElementAt(index)
	return item, err == nil
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Shaping
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &Collection[T]{items: out}
}

// Where returns a new collection with only the items matching fn.
func (c *Collection[T]) Where(fn func(T) bool) *Collection[T] {
	return c.Filter(func(item T, _ int) bool { return fn(item) })
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	out := slices.Clone(c.items)
	slices.Reverse(out)
	return &Collection[T]{items: out}
}

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		return From(c.items[max(total+n, 0):])
	}
	return From(c.items[:min(n, total)])
}

// ─────────────────────────────────────────────────────────────────────────────
// Element operations
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0]. See [selection.First].
func (c *Collection[T]) First(fns ...func(T) bool) (T, error) {
	return selection.First(c.Seq(), fns...)
}

// FirstOrDefault returns the first item, optionally matching fns[0], or the
// zero value.
func (c *Collection[T]) FirstOrDefault(fns ...func(T) bool) T {
	return selection.FirstOrDefault(c.Seq(), fns...)
}

// FirstOr returns the first item, optionally matching fns[0], or fallback.
func (c *Collection[T]) FirstOr(fallback T, fns ...func(T) bool) T {
	return selection.FirstOr(c.Seq(), fallback, fns...)
}

// Last returns the last item, optionally matching fns[0]. See [selection.Last].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, error) {
	return selection.Last(c.Seq(), fns...)
}

// LastOrDefault returns the last item, optionally matching fns[0], or the
// zero value.
func (c *Collection[T]) LastOrDefault(fns ...func(T) bool) T {
	return selection.LastOrDefault(c.Seq(), fns...)
}

// LastOr returns the last item, optionally matching fns[0], or fallback.
func (c *Collection[T]) LastOr(fallback T, fns ...func(T) bool) T {
	return selection.LastOr(c.Seq(), fallback, fns...)
}

// Single returns the only item matching fns[0]. See [selection.Single].
func (c *Collection[T]) Single(fns ...func(T) bool) (T, error) {
	return selection.Single(c.Seq(), fns...)
}

// SingleOrDefault returns the only item matching fns[0], or the zero value
// when nothing matches. More than one match is still an error.
func (c *Collection[T]) SingleOrDefault(fns ...func(T) bool) (T, error) {
	return selection.SingleOrDefault(c.Seq(), fns...)
}

// SingleOr returns the only item matching fns[0], or fallback when nothing
// matches.
func (c *Collection[T]) SingleOr(fallback T, fns ...func(T) bool) (T, error) {
	return selection.SingleOr(c.Seq(), fallback, fns...)
}

// ElementAt returns the item at index, counting only items matching fns[0]
// when given. See [selection.ElementAt].
func (c *Collection[T]) ElementAt(index int, fns ...func(T) bool) (T, error) {
	return selection.ElementAt(c.Seq(), index, fns...)
}

// ElementAtOrDefault is [Collection.ElementAt] returning the zero value when
// index is out of range.
func (c *Collection[T]) ElementAtOrDefault(index int, fns ...func(T) bool) T {
	return selection.ElementAtOrDefault(c.Seq(), index, fns...)
}

// ElementAtOr is [Collection.ElementAt] returning fallback when index is out
// of range.
func (c *Collection[T]) ElementAtOr(index int, fallback T, fns ...func(T) bool) T {
	return selection.ElementAtOr(c.Seq(), index, fallback, fns...)
}

package arr

import (
	"slices"

	"github.com/fabianp19/Linq/selection"
)

// First returns the first element, optionally matching fns[0].
// See [selection.First].
func First[T any](items []T, fns ...func(T) bool) (T, error) {
	return selection.First(slices.Values(items), fns...)
}

// FirstOrDefault returns the first element, optionally matching fns[0], or
// the zero value.
func FirstOrDefault[T any](items []T, fns ...func(T) bool) T {
	return selection.FirstOrDefault(slices.Values(items), fns...)
}

// Last returns the last element, optionally matching fns[0].
//
// Elements are still visited front to back so that the predicate sees them
// in the same order as with [First].
func Last[T any](items []T, fns ...func(T) bool) (T, error) {
	return selection.Last(slices.Values(items), fns...)
}

// LastOrDefault returns the last element, optionally matching fns[0], or the
// zero value.
func LastOrDefault[T any](items []T, fns ...func(T) bool) T {
	return selection.LastOrDefault(slices.Values(items), fns...)
}

// Single returns the only element matching fns[0]. See [selection.Single].
func Single[T any](items []T, fns ...func(T) bool) (T, error) {
	return selection.Single(slices.Values(items), fns...)
}

// SingleOrDefault returns the only element matching fns[0], or the zero
// value when nothing matches. More than one match is still an error.
func SingleOrDefault[T any](items []T, fns ...func(T) bool) (T, error) {
	return selection.SingleOrDefault(slices.Values(items), fns...)
}

// ElementAt returns items[index] with the errors of [selection.ElementAt].
// With a predicate, index counts matching elements only.
func ElementAt[T any](items []T, index int, fns ...func(T) bool) (T, error) {
	if len(fns) == 0 || fns[0] == nil {
		if index >= 0 && index < len(items) {
			return items[index], nil
		}
	}
	return selection.ElementAt(slices.Values(items), index, fns...)
}

// ElementAtOrDefault is [ElementAt] returning the zero value when index is
// out of range.
func ElementAtOrDefault[T any](items []T, index int, fns ...func(T) bool) T {
	v, err := ElementAt(items, index, fns...)
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// Where returns a new slice holding the elements matching fn.
func Where[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

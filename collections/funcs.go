package collections

import "iter"

// This file contains package-level helpers over iter.Seq. They produce the
// lazy sequences that the element operations consume:
//
//	second, err := selection.ElementAt(
//	    collections.Where(collections.From(numbers).Seq(), func(n int) bool { return n > 5 }),
//	    1,
//	)

// Where lazily yields the elements of seq for which fn returns true.
// Nothing is read from seq until the result is ranged over.
func Where[T any](seq iter.Seq[T], fn func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			if fn(item) && !yield(item) {
				return
			}
		}
	}
}

// Map lazily applies fn to every element of seq.
//
//	lengths := collections.Map(words, func(s string) int { return len(s) })
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for item := range seq {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// Generate returns an unbounded sequence of next(0), next(1), next(2), …
//
// Only operations that stop early (First, ElementAt and their variants, or
// Single when there are at least two matches) terminate on it.
func Generate[T any](next func(i int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			if !yield(next(i)) {
				return
			}
		}
	}
}

// Range yields the count integers start, start+1, …, start+count-1.
// A count of zero or less yields nothing.
func Range(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range max(count, 0) {
			if !yield(start + i) {
				return
			}
		}
	}
}

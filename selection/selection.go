package selection

import (
	"errors"
	"fmt"
	"iter"
)

// match returns the predicate to apply, treating a missing or nil one as
// "every element".
func match[T any](preds []func(T) bool) func(T) bool {
	if len(preds) == 0 || preds[0] == nil {
		return nil
	}
	return preds[0]
}

// ─────────────────────────────────────────────────────────────────────────────
// First
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of seq, optionally matching preds[0].
//
// Returns [ErrEmptySequence] if seq yields nothing and [ErrNoMatch] if no
// element satisfies the predicate. Iteration stops at the first match.
func First[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	fn := match(preds)
	var zero T
	seen := false
	for item := range seq {
		seen = true
		if fn == nil || fn(item) {
			return item, nil
		}
	}
	if !seen {
		return zero, ErrEmptySequence
	}
	return zero, ErrNoMatch
}

// FirstOrDefault is like [First] but returns the zero value of T instead of
// failing.
func FirstOrDefault[T any](seq iter.Seq[T], preds ...func(T) bool) T {
	var zero T
	return FirstOr(seq, zero, preds...)
}

// FirstOr is like [First] but returns fallback instead of failing.
func FirstOr[T any](seq iter.Seq[T], fallback T, preds ...func(T) bool) T {
	item, err := First(seq, preds...)
	if err != nil {
		return fallback
	}
	return item
}

// ─────────────────────────────────────────────────────────────────────────────
// Last
// ─────────────────────────────────────────────────────────────────────────────

// Last returns the last element of seq, optionally matching preds[0].
//
// The sequence is scanned front to back keeping the most recent match, so it
// must be finite. Errors are the same as for [First].
func Last[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	fn := match(preds)
	var found T
	seen, matched := false, false
	for item := range seq {
		seen = true
		if fn == nil || fn(item) {
			found = item
			matched = true
		}
	}
	switch {
	case !seen:
		return found, ErrEmptySequence
	case !matched:
		return found, ErrNoMatch
	}
	return found, nil
}

// LastOrDefault is like [Last] but returns the zero value of T instead of
// failing.
func LastOrDefault[T any](seq iter.Seq[T], preds ...func(T) bool) T {
	var zero T
	return LastOr(seq, zero, preds...)
}

// LastOr is like [Last] but returns fallback instead of failing.
func LastOr[T any](seq iter.Seq[T], fallback T, preds ...func(T) bool) T {
	item, err := Last(seq, preds...)
	if err != nil {
		return fallback
	}
	return item
}

// ─────────────────────────────────────────────────────────────────────────────
// Single
// ─────────────────────────────────────────────────────────────────────────────

// Single returns the only element of seq matching preds[0] (or the only
// element at all when no predicate is given).
//
// Returns [ErrNoMatch] when nothing matches, including for an empty sequence,
// and [ErrMultipleMatch] as soon as a second match is seen. A sequence with a
// single match must be finite: the scan has to reach its end to rule out a
// second one.
func Single[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	fn := match(preds)
	var found T
	matched := false
	for item := range seq {
		if fn != nil && !fn(item) {
			continue
		}
		if matched {
			var zero T
			return zero, ErrMultipleMatch
		}
		found = item
		matched = true
	}
	if !matched {
		return found, ErrNoMatch
	}
	return found, nil
}

// SingleOrDefault is like [Single] but returns the zero value of T when
// nothing matches. Two or more matches still fail with [ErrMultipleMatch].
func SingleOrDefault[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	var zero T
	return SingleOr(seq, zero, preds...)
}

// SingleOr is like [Single] but returns fallback when nothing matches.
// Two or more matches still fail with [ErrMultipleMatch].
func SingleOr[T any](seq iter.Seq[T], fallback T, preds ...func(T) bool) (T, error) {
	item, err := Single(seq, preds...)
	if errors.Is(err, ErrNoMatch) {
		return fallback, nil
	}
	return item, err
}

// ─────────────────────────────────────────────────────────────────────────────
// ElementAt
// ─────────────────────────────────────────────────────────────────────────────

// ElementAt returns the element at the 0-based position. With a predicate the
// position counts only matching elements.
//
// A negative position fails immediately without reading seq. Otherwise
// iteration stops once the element is reached; running out of elements first
// returns an error wrapping [ErrIndexOutOfRange].
func ElementAt[T any](seq iter.Seq[T], position int, preds ...func(T) bool) (T, error) {
	var zero T
	if position < 0 {
		return zero, fmt.Errorf("%w: position %d is negative", ErrIndexOutOfRange, position)
	}
	fn := match(preds)
	n := 0
	for item := range seq {
		if fn != nil && !fn(item) {
			continue
		}
		if n == position {
			return item, nil
		}
		n++
	}
	return zero, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, position, n)
}

// ElementAtOrDefault is like [ElementAt] but returns the zero value of T for
// an out-of-range position.
func ElementAtOrDefault[T any](seq iter.Seq[T], position int, preds ...func(T) bool) T {
	var zero T
	return ElementAtOr(seq, position, zero, preds...)
}

// ElementAtOr is like [ElementAt] but returns fallback for an out-of-range
// position.
func ElementAtOr[T any](seq iter.Seq[T], position int, fallback T, preds ...func(T) bool) T {
	item, err := ElementAt(seq, position, preds...)
	if err != nil {
		return fallback
	}
	return item
}

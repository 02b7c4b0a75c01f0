// Package selection extracts a single element from an ordered sequence.
//
// Every operation reads an [iter.Seq] front to back and either returns one
// element or reports why it could not:
//
//	word, err := selection.First(slices.Values(words), func(s string) bool {
//	    return strings.HasPrefix(s, "o")
//	})
//
// # Families
//
//   - First, FirstOrDefault, FirstOr: the earliest match. Stops as soon as it
//     is found, so unbounded sequences are fine.
//   - Last, LastOrDefault, LastOr: the latest match. Consumes the whole
//     sequence, which therefore must be finite.
//   - Single, SingleOrDefault, SingleOr: the only match. Fails with
//     [ErrMultipleMatch] once a second match shows up.
//   - ElementAt, ElementAtOrDefault, ElementAtOr: the element at a 0-based
//     position, counted among matches when a predicate is given.
//
// # Predicates
//
// The predicate is an optional trailing argument. Only the first one is
// consulted and a nil predicate matches everything:
//
//	selection.Last(seq)                          // last element
//	selection.Last(seq, func(n int) bool { ... }) // last match
//
// # Errors
//
// Strict operations return one of [ErrEmptySequence], [ErrNoMatch],
// [ErrMultipleMatch] or [ErrIndexOutOfRange]. The OrDefault variants return
// the zero value of T instead of the first, second and fourth of those; the
// Or variants return a caller supplied fallback. Neither ever hides
// [ErrMultipleMatch].
package selection

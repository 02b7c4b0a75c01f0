package selection

import "errors"

// Sentinel errors returned by selection operations.
//
// Use [errors.Is] for comparisons:
//
//	v, err := selection.Single(seq, pred)
//	if errors.Is(err, selection.ErrMultipleMatch) {
//	    // more than one element qualified
//	}
var (
	// ErrEmptySequence is returned by First and Last when the sequence has
	// no elements at all.
	ErrEmptySequence = errors.New("selection: sequence contains no elements")

	// ErrNoMatch is returned when the sequence is non-empty but no element
	// satisfies the predicate. Single also returns it for an empty sequence.
	ErrNoMatch = errors.New("selection: no element satisfies the condition")

	// ErrMultipleMatch is returned by the Single family when two or more
	// elements satisfy the predicate.
	ErrMultipleMatch = errors.New("selection: more than one element satisfies the condition")

	// ErrIndexOutOfRange is returned by ElementAt when the position is
	// negative or not less than the number of candidate elements.
	ErrIndexOutOfRange = errors.New("selection: index out of range")
)

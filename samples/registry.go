package samples

import "strings"

// Sample is a named query that can be run on demand.
type Sample struct {
	Name        string
	Description string
	Run         func() (any, error)
}

func value[T any](fn func() T) func() (any, error) {
	return func() (any, error) { return fn(), nil }
}

func result[T any](fn func() (T, error)) func() (any, error) {
	return func() (any, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var registry = []Sample{
	{"first-element", "First product in the Produce category", result(FirstElement)},
	{"first-matching-element", "First word starting with 'o'", result(FirstMatchingElement)},
	{"maybe-first-element", "First element of an empty sequence, or 0", value(MaybeFirstElement)},
	{"maybe-first-matching-element", "Product with ID 789, or nil", value(MaybeFirstMatchingElement)},
	{"element-at-position", "Second number greater than 5", result(ElementAtPosition)},
	{"last-matching-element", "Last word containing 'o'", result(LastMatchingElement)},
	{"maybe-last-element", "Last element of an empty sequence, or 0", value(MaybeLastElement)},
	{"single-more-than-one-matching-element", "Only word containing 'o' (fails)", result(SingleMoreThanOneMatchingElement)},
	{"single-no-matching-element", "Only word containing 'o', or default (fails)", result(SingleNoMatchingElement)},
	{"maybe-single-matching-element", "Only word containing 'o', or \"\"", value(MaybeSingleMatchingElement)},
}

// All returns every sample in declaration order.
func All() []Sample { return append([]Sample(nil), registry...) }

// Lookup finds a sample by name, ignoring case.
func Lookup(name string) (Sample, bool) {
	for _, s := range registry {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Sample{}, false
}

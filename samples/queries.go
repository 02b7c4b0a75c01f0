package samples

import (
	"slices"
	"strings"

	"github.com/fabianp19/Linq/arr"
	"github.com/fabianp19/Linq/collections"
	"github.com/fabianp19/Linq/selection"
)

// FirstElement finds the first product in the "Produce" category.
func FirstElement() (Product, error) {
	return collections.From(products).First(func(p Product) bool {
		return strings.Contains(p.Category, "Produce")
	})
}

// FirstMatchingElement finds the first word starting with 'o'.
func FirstMatchingElement() (string, error) {
	return arr.First(words, func(s string) bool { return s[0] == 'o' })
}

// MaybeFirstElement takes the first element of an empty sequence, which is 0.
func MaybeFirstElement() int {
	return selection.FirstOrDefault(collections.Empty[int]().Seq())
}

// MaybeFirstMatchingElement looks for product 789, which does not exist, and
// so returns nil.
func MaybeFirstMatchingElement() *Product {
	refs := collections.Map(slices.Values(products), func(p Product) *Product { return &p })
	return selection.FirstOrDefault(refs, func(p *Product) bool { return p.ProductID == 789 })
}

// ElementAtPosition finds the second number greater than 5 in source order.
func ElementAtPosition() (int, error) {
	return selection.ElementAt(collections.Where(slices.Values(numbers), func(n int) bool { return n > 5 }), 1)
}

// LastMatchingElement finds the last word containing 'o'.
func LastMatchingElement() (string, error) {
	return selection.Last(slices.Values(words), func(s string) bool { return strings.Contains(s, "o") })
}

// MaybeLastElement takes the last element of an empty sequence, which is 0.
func MaybeLastElement() int {
	return selection.LastOrDefault(collections.Empty[int]().Seq())
}

// SingleMoreThanOneMatchingElement asks for the only word containing 'o'.
// Four words qualify, so it fails with [selection.ErrMultipleMatch].
func SingleMoreThanOneMatchingElement() (string, error) {
	return selection.Single(slices.Values(words), func(s string) bool { return strings.Contains(s, "o") })
}

// SingleNoMatchingElement is the SingleOrDefault form of the query above.
// The default only covers the zero-match case, so it fails with
// [selection.ErrMultipleMatch] as well.
func SingleNoMatchingElement() (string, error) {
	return selection.SingleOrDefault(slices.Values(words), func(s string) bool { return strings.Contains(s, "o") })
}

// MaybeSingleMatchingElement returns the only word containing 'o', or "" when
// the number of such words is not exactly one.
func MaybeSingleMatchingElement() string {
	w, err := selection.SingleOrDefault(slices.Values(words), func(s string) bool { return strings.Contains(s, "o") })
	if err != nil {
		return ""
	}
	return w
}

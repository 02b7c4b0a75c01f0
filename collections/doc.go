// Package collections provides the ordered, replayable sequences that the
// element operations in package selection read from.
//
// # Overview
//
// [Collection][T] is an immutable wrapper around a slice of T. It exposes its
// items as an [iter.Seq] through [Collection.Seq] and offers every element
// operation as a method:
//
//	c := collections.New("zero", "one", "two", "three")
//	w, err := c.First(func(s string) bool { return strings.HasPrefix(s, "t") }) // "two"
//	n := c.ElementAtOrDefault(10)                                               // ""
//
// # Lazy sequences
//
// [Where], [Map], [Generate] and [Range] build sequences that are only
// evaluated when ranged over. Combined with the early exit of First and
// ElementAt they work on unbounded inputs:
//
//	squares := collections.Generate(func(i int) int { return i * i })
//	n, _ := selection.First(squares, func(n int) bool { return n > 50 }) // 64
//
// Last and Single on an unbounded sequence never return.
package collections

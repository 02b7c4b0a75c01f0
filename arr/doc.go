// Package arr runs the element operations of package selection directly on
// plain Go slices, with no wrapper type:
//
//	w, err := arr.First(words, func(s string) bool { return s[0] == 'o' })
//	n := arr.ElementAtOrDefault([]int{1, 2, 3}, 10) // 0
//	_, err = arr.Single([]int{1, 2}, nil)           // selection.ErrMultipleMatch
//
// Errors are the sentinels of package selection.
package arr

package selection_test

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/fabianp19/Linq/selection"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

var words = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func ints(ns ...int) iter.Seq[int] { return slices.Values(ns) }

func even(n int) bool { return n%2 == 0 }

func containsO(s string) bool { return strings.Contains(s, "o") }

// naturals yields 0, 1, 2, … forever.
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// counted wraps seq and records how many elements were pulled from it.
func counted[T any](seq iter.Seq[T], pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func assertErr(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("err = %v; want %v", err, want)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// First
// ─────────────────────────────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
		want  int
		err   error
	}{
		{"no predicate", []int{3, 4, 5}, nil, 3, nil},
		{"first match", []int{1, 3, 4, 6}, even, 4, nil},
		{"empty", nil, nil, 0, selection.ErrEmptySequence},
		{"empty with predicate", nil, even, 0, selection.ErrEmptySequence},
		{"no match", []int{1, 3, 5}, even, 0, selection.ErrNoMatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := selection.First(ints(tc.items...), tc.pred)
			if tc.err != nil {
				assertErr(t, err, tc.err)
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("First = %v, %v; want %v, nil", got, err, tc.want)
			}
		})
	}
}

func TestFirstStopsAtMatch(t *testing.T) {
	pulled := 0
	got, err := selection.First(counted(naturals(), &pulled), func(n int) bool { return n > 2 })
	if err != nil || got != 3 {
		t.Fatalf("First = %v, %v; want 3, nil", got, err)
	}
	if pulled != 4 {
		t.Fatalf("pulled %d elements; want 4", pulled)
	}
}

func TestFirstOrDefault(t *testing.T) {
	if got := selection.FirstOrDefault(ints()); got != 0 {
		t.Fatalf("FirstOrDefault(empty) = %d; want 0", got)
	}
	if got := selection.FirstOrDefault(ints(1, 3), even); got != 0 {
		t.Fatalf("FirstOrDefault(no match) = %d; want 0", got)
	}
	if got := selection.FirstOrDefault(ints(1, 2, 4), even); got != 2 {
		t.Fatalf("FirstOrDefault = %d; want 2", got)
	}
	if got := selection.FirstOrDefault(slices.Values([]*int(nil))); got != nil {
		t.Fatalf("FirstOrDefault(empty pointers) = %v; want nil", got)
	}
}

func TestFirstOr(t *testing.T) {
	if got := selection.FirstOr(ints(1, 3), -1, even); got != -1 {
		t.Fatalf("FirstOr = %d; want -1", got)
	}
	if got := selection.FirstOr(naturals(), -1, func(n int) bool { return n == 7 }); got != 7 {
		t.Fatalf("FirstOr = %d; want 7", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Last
// ─────────────────────────────────────────────────────────────────────────────

func TestLast(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
		want  int
		err   error
	}{
		{"no predicate", []int{3, 4, 5}, nil, 5, nil},
		{"last match", []int{2, 3, 4, 5}, even, 4, nil},
		{"single element", []int{9}, nil, 9, nil},
		{"empty", nil, nil, 0, selection.ErrEmptySequence},
		{"empty with predicate", nil, even, 0, selection.ErrEmptySequence},
		{"no match", []int{1, 3, 5}, even, 0, selection.ErrNoMatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := selection.Last(ints(tc.items...), tc.pred)
			if tc.err != nil {
				assertErr(t, err, tc.err)
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("Last = %v, %v; want %v, nil", got, err, tc.want)
			}
		})
	}
}

func TestLastConsumesAll(t *testing.T) {
	pulled := 0
	if _, err := selection.Last(counted(ints(2, 4, 5, 7), &pulled), even); err != nil {
		t.Fatal(err)
	}
	if pulled != 4 {
		t.Fatalf("pulled %d elements; want 4", pulled)
	}
}

func TestLastOrDefault(t *testing.T) {
	if got := selection.LastOrDefault(ints()); got != 0 {
		t.Fatalf("LastOrDefault(empty) = %d; want 0", got)
	}
	if got := selection.LastOrDefault(slices.Values(words), containsO); got != "four" {
		t.Fatalf("LastOrDefault = %q; want four", got)
	}
	if got := selection.LastOr(ints(1, 3), 42, even); got != 42 {
		t.Fatalf("LastOr = %d; want 42", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Single
// ─────────────────────────────────────────────────────────────────────────────

func TestSingle(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
		want  int
		err   error
	}{
		{"one element", []int{7}, nil, 7, nil},
		{"one match", []int{1, 4, 5}, even, 4, nil},
		{"empty", nil, nil, 0, selection.ErrNoMatch},
		{"no match", []int{1, 3}, even, 0, selection.ErrNoMatch},
		{"two elements", []int{1, 2}, nil, 0, selection.ErrMultipleMatch},
		{"two matches", []int{2, 3, 4}, even, 0, selection.ErrMultipleMatch},
		// length 1 is not automatically unique: the predicate decides.
		{"one element no match", []int{3}, even, 0, selection.ErrNoMatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := selection.Single(ints(tc.items...), tc.pred)
			if tc.err != nil {
				assertErr(t, err, tc.err)
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("Single = %v, %v; want %v, nil", got, err, tc.want)
			}
		})
	}
}

func TestSingleScansPastFirstMatch(t *testing.T) {
	pulled := 0
	got, err := selection.Single(counted(ints(1, 4, 5, 7, 9), &pulled), even)
	if err != nil || got != 4 {
		t.Fatalf("Single = %v, %v; want 4, nil", got, err)
	}
	if pulled != 5 {
		t.Fatalf("pulled %d elements; want 5", pulled)
	}
}

func TestSingleStopsAtSecondMatch(t *testing.T) {
	_, err := selection.Single(naturals(), even)
	assertErr(t, err, selection.ErrMultipleMatch)
}

func TestSingleOrDefault(t *testing.T) {
	got, err := selection.SingleOrDefault(ints())
	if err != nil || got != 0 {
		t.Fatalf("SingleOrDefault(empty) = %v, %v; want 0, nil", got, err)
	}
	got, err = selection.SingleOrDefault(ints(1, 3), even)
	if err != nil || got != 0 {
		t.Fatalf("SingleOrDefault(no match) = %v, %v; want 0, nil", got, err)
	}
	got, err = selection.SingleOrDefault(ints(1, 2, 3), even)
	if err != nil || got != 2 {
		t.Fatalf("SingleOrDefault = %v, %v; want 2, nil", got, err)
	}
	_, err = selection.SingleOrDefault(ints(2, 4), even)
	assertErr(t, err, selection.ErrMultipleMatch)
}

func TestSingleOr(t *testing.T) {
	got, err := selection.SingleOr(ints(1, 3), -1, even)
	if err != nil || got != -1 {
		t.Fatalf("SingleOr = %v, %v; want -1, nil", got, err)
	}
	_, err = selection.SingleOr(ints(2, 4), -1, even)
	assertErr(t, err, selection.ErrMultipleMatch)
}

// ─────────────────────────────────────────────────────────────────────────────
// ElementAt
// ─────────────────────────────────────────────────────────────────────────────

func TestElementAt(t *testing.T) {
	items := []int{10, 20, 30}
	for i, want := range items {
		got, err := selection.ElementAt(ints(items...), i)
		if err != nil || got != want {
			t.Fatalf("ElementAt(%d) = %v, %v; want %v, nil", i, got, err, want)
		}
	}
	for _, i := range []int{-1, 3, 100} {
		_, err := selection.ElementAt(ints(items...), i)
		assertErr(t, err, selection.ErrIndexOutOfRange)
	}
}

func TestElementAtWithPredicate(t *testing.T) {
	got, err := selection.ElementAt(ints(1, 2, 3, 4, 5, 6), 2, even)
	if err != nil || got != 6 {
		t.Fatalf("ElementAt = %v, %v; want 6, nil", got, err)
	}
	_, err = selection.ElementAt(ints(1, 2, 3, 4), 2, even)
	assertErr(t, err, selection.ErrIndexOutOfRange)
}

func TestElementAtNegativeDoesNotRead(t *testing.T) {
	pulled := 0
	_, err := selection.ElementAt(counted(naturals(), &pulled), -3)
	assertErr(t, err, selection.ErrIndexOutOfRange)
	if pulled != 0 {
		t.Fatalf("pulled %d elements; want 0", pulled)
	}
}

func TestElementAtStopsEarly(t *testing.T) {
	pulled := 0
	got, err := selection.ElementAt(counted(naturals(), &pulled), 5)
	if err != nil || got != 5 {
		t.Fatalf("ElementAt = %v, %v; want 5, nil", got, err)
	}
	if pulled != 6 {
		t.Fatalf("pulled %d elements; want 6", pulled)
	}
}

func TestElementAtErrorMessage(t *testing.T) {
	_, err := selection.ElementAt(ints(1, 2), 4)
	want := "selection: index out of range: position 4, length 2"
	if err == nil || err.Error() != want {
		t.Fatalf("err = %v; want %q", err, want)
	}
}

func TestElementAtOrDefault(t *testing.T) {
	if got := selection.ElementAtOrDefault(ints(1, 2), 5); got != 0 {
		t.Fatalf("ElementAtOrDefault = %d; want 0", got)
	}
	if got := selection.ElementAtOrDefault(ints(1, 2), -1); got != 0 {
		t.Fatalf("ElementAtOrDefault(-1) = %d; want 0", got)
	}
	if got := selection.ElementAtOrDefault(ints(1, 2), 1); got != 2 {
		t.Fatalf("ElementAtOrDefault = %d; want 2", got)
	}
	if got := selection.ElementAtOr(ints(1, 2), 2, 99); got != 99 {
		t.Fatalf("ElementAtOr = %d; want 99", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Scenarios
// ─────────────────────────────────────────────────────────────────────────────

func TestScenarios(t *testing.T) {
	strs := slices.Values(words)

	t.Run("first word starting with o", func(t *testing.T) {
		got, err := selection.First(strs, func(s string) bool { return s[0] == 'o' })
		if err != nil || got != "one" {
			t.Fatalf("First = %q, %v; want one, nil", got, err)
		}
	})

	t.Run("first of empty ints", func(t *testing.T) {
		if got := selection.FirstOrDefault(ints()); got != 0 {
			t.Fatalf("FirstOrDefault = %d; want 0", got)
		}
	})

	t.Run("second number above five", func(t *testing.T) {
		// matches in source order: 9, 8, 6, 7
		var above5 iter.Seq[int] = func(yield func(int) bool) {
			for n := range ints(5, 4, 1, 3, 9, 8, 6, 7, 2, 0) {
				if n > 5 && !yield(n) {
					return
				}
			}
		}
		got, err := selection.ElementAt(above5, 1)
		if err != nil || got != 8 {
			t.Fatalf("ElementAt = %v, %v; want 8, nil", got, err)
		}
	})

	t.Run("single word containing o", func(t *testing.T) {
		_, err := selection.Single(strs, containsO)
		assertErr(t, err, selection.ErrMultipleMatch)
	})

	t.Run("single missing word", func(t *testing.T) {
		got, err := selection.SingleOrDefault(strs, func(s string) bool { return s == "missing" })
		if err != nil || got != "" {
			t.Fatalf("SingleOrDefault = %q, %v; want \"\", nil", got, err)
		}
	})
}

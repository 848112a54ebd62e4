package sort

import (
	"fmt"
	"strings"
)

// An Algorithm selects one of the sorting algorithms an Engine can run.
type Algorithm int

const (
	// SelectionSort performs n(n-1)/2 comparisons and n-1 swaps for
	// every input of length n.
	SelectionSort Algorithm = iota

	// QuickSort is a recursive quicksort that partitions around the
	// leftmost element of each subrange (Lomuto's scheme).
	QuickSort

	// MedianOfThreeQuickSort is the same recursion as QuickSort, but
	// partitions with Hoare's two-pointer scheme around the median of
	// the first, middle, and last elements of each subrange.
	MedianOfThreeQuickSort

	nofAlgorithms
)

var algorithmNames = [nofAlgorithms]struct {
	key, name string
}{
	SelectionSort:          {"selection", "Selection Sort"},
	QuickSort:              {"quick", "Standard QuickSort"},
	MedianOfThreeQuickSort: {"m3quick", "Hoare's QuickSort with Median-of-Three"},
}

// Algorithms returns all algorithms in their canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{SelectionSort, QuickSort, MedianOfThreeQuickSort}
}

func (a Algorithm) valid() bool {
	return a >= 0 && a < nofAlgorithms
}

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a].name
}

// Key returns the short name of the algorithm, as accepted by
// ParseAlgorithm.
func (a Algorithm) Key() string {
	if !a.valid() {
		return ""
	}
	return algorithmNames[a].key
}

/*
ParseAlgorithm returns the algorithm with the given short name (for
example "m3quick") or display name (for example "Selection Sort"). The
match is case-insensitive.
*/
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)
	for a, n := range algorithmNames {
		if strings.EqualFold(s, n.key) || strings.EqualFold(s, n.name) {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText encodes the algorithm as its short name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.Key()), nil
}

// UnmarshalText decodes a short name or display name.
func (a *Algorithm) UnmarshalText(text []byte) (err error) {
	*a, err = ParseAlgorithm(string(text))
	return
}

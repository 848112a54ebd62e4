/*
Package compare runs several sorting algorithms over independent copies
of the same data and reports how many comparisons and swaps each one
made.

Every algorithm gets its own copy of the input and its own sort.Engine,
so engines never share a sequence and can run in parallel.
*/
package compare

import (
	"context"
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/exascience/sortmeter/parallel"
	"github.com/exascience/sortmeter/sequential"
	"github.com/exascience/sortmeter/sort"
)

var (
	// ErrUnsorted reports an engine whose result is not in ascending
	// order.
	ErrUnsorted = errors.New("result not sorted")

	// ErrMismatch reports an engine whose result is not a permutation
	// of the input, or does not agree with the other engines.
	ErrMismatch = errors.New("results do not match")

	// ErrNoAlgorithms is returned when an empty algorithm set is
	// requested.
	ErrNoAlgorithms = errors.New("no algorithms selected")
)

// Result holds the final counters of one engine.
type Result struct {
	Algorithm   sort.Algorithm `json:"algorithm"`
	Name        string         `json:"name"`
	Comparisons int            `json:"comparisons"`
	Swaps       int            `json:"swaps"`
}

// Run is the outcome of sorting one input with several algorithms.
type Run[T sort.Element] struct {
	Input    []T      `json:"input"`
	Sorted   []T      `json:"sorted"`
	Rendered string   `json:"rendered"`
	Results  []Result `json:"results"`
}

type options struct {
	algorithms []sort.Algorithm
	sequential bool
}

// An Option configures Compare.
type Option func(*options)

// WithAlgorithms selects the algorithms to run, in the given order.
// Repeated algorithms run once. The default is sort.Algorithms().
func WithAlgorithms(algorithms ...sort.Algorithm) Option {
	return func(o *options) {
		o.algorithms = algorithms
	}
}

// WithSequential runs the engines one after the other instead of in
// parallel.
func WithSequential(sequential bool) Option {
	return func(o *options) {
		o.sequential = sequential
	}
}

// dedupe removes repeated algorithms, keeping the first occurrence.
func dedupe(algorithms []sort.Algorithm) []sort.Algorithm {
	seen := mapset.NewThreadUnsafeSet[sort.Algorithm]()
	result := make([]sort.Algorithm, 0, len(algorithms))
	for _, a := range algorithms {
		if seen.Add(a) {
			result = append(result, a)
		}
	}
	return result
}

/*
Compare sorts a copy of data with each selected algorithm and returns
the sorted sequence together with every engine's counters. data itself is
not modified.

Compare checks every result: it returns ErrUnsorted if a result is out of
order, and ErrMismatch if a result is not a permutation of data or is not
equivalent to the other results. An empty data slice yields
sort.ErrInvalidSize.
*/
func Compare[T sort.Element](ctx context.Context, data []T, opts ...Option) (*Run[T], error) {
	o := options{algorithms: sort.Algorithms()}
	for _, opt := range opts {
		opt(&o)
	}
	algorithms := dedupe(o.algorithms)
	if len(algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: %d", sort.ErrInvalidSize, len(data))
	}

	engines := make([]*sort.Engine[T], len(algorithms))
	thunks := make([]func() error, len(algorithms))
	for i, a := range algorithms {
		s := slices.Clone(data)
		e, err := sort.New(a, &s)
		if err != nil {
			return nil, err
		}
		engines[i] = e
		thunks[i] = func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.Sort()
			return nil
		}
	}
	do := parallel.Do
	if o.sequential {
		do = sequential.Do
	}
	if err := do(thunks...); err != nil {
		return nil, err
	}

	run := &Run[T]{Input: slices.Clone(data)}
	want := slices.Clone(data)
	slices.Sort(want)
	for _, e := range engines {
		sorted := e.Values()
		if !sort.IsSorted(sorted) {
			return nil, fmt.Errorf("%w: %s", ErrUnsorted, e.Name())
		}
		got := slices.Clone(sorted)
		slices.Sort(got)
		if !slices.Equal(got, want) {
			return nil, fmt.Errorf("%w: %s lost or invented elements", ErrMismatch, e.Name())
		}
		if run.Sorted == nil {
			run.Sorted = sorted
		} else if !equivalent(run.Sorted, sorted) {
			return nil, fmt.Errorf("%w: %s disagrees with %s", ErrMismatch, e.Name(), engines[0].Name())
		}
		run.Results = append(run.Results, Result{
			Algorithm:   e.Algorithm(),
			Name:        e.Name(),
			Comparisons: e.Comparisons(),
			Swaps:       e.Swaps(),
		})
	}
	run.Rendered = sort.Render(run.Sorted)
	return run, nil
}

// equivalent reports whether a and b hold elements that are pairwise
// equal under the sort order. Text that differs only in case is
// equivalent, and unstable algorithms may order it differently.
func equivalent[T sort.Element](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if sort.Less(a[i], b[i]) || sort.Less(b[i], a[i]) {
			return false
		}
	}
	return true
}

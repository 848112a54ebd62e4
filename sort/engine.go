package sort

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned by New for an empty or missing
	// sequence. Callers are expected to validate the size before
	// constructing an Engine.
	ErrInvalidSize = errors.New("invalid size")

	// ErrUnknownAlgorithm is returned for algorithm values and names
	// that do not denote one of the known algorithms.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Counts is a snapshot of the operation counters of an Engine.
type Counts struct {
	Comparisons int
	Swaps       int
}

// counter is the counting context that every algorithm routine
// receives. The sequence may only be read through data and reordered
// through swap.
type counter[T Element] struct {
	data   []T
	less   func(a, b T) bool
	counts Counts
}

// compare counts once per call, including when a and b come from the
// same position.
func (c *counter[T]) compare(a, b T) bool {
	c.counts.Comparisons++
	return c.less(a, b)
}

// swap counts once per call, including when i == j.
func (c *counter[T]) swap(i, j int) {
	c.data[i], c.data[j] = c.data[j], c.data[i]
	c.counts.Swaps++
}

/*
An Engine owns a sequence of elements and sorts it with one algorithm,
counting every comparison and swap.

An Engine is not safe for concurrent use. Engines that sort independent
sequences can run in parallel.
*/
type Engine[T Element] struct {
	algorithm Algorithm
	c         counter[T]
}

/*
New returns an Engine that sorts *data with the given algorithm.

New takes ownership of the backing storage of *data and sets *data to
nil, so that the caller's handle cannot be used to observe or modify the
sequence while it is being sorted. The caller must not retain other
slices that share the same backing array.

New returns ErrInvalidSize if data is nil or *data is empty.
*/
func New[T Element](algorithm Algorithm, data *[]T) (*Engine[T], error) {
	if !algorithm.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algorithm))
	}
	if data == nil {
		return nil, fmt.Errorf("%w: nil sequence", ErrInvalidSize)
	}
	if n := len(*data); n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	e := &Engine[T]{algorithm: algorithm}
	e.c.data, *data = *data, nil
	e.c.less = lessFunc[T](newCaser())
	return e, nil
}

/*
Sort sorts the whole sequence in ascending order.

Calling Sort again on a sorted sequence leaves the order unchanged, but
the comparisons and swaps it performs are added to the counters.
*/
func (e *Engine[T]) Sort() {
	c := &e.c
	end := len(c.data) - 1
	switch e.algorithm {
	case SelectionSort:
		selectionSort(c)
	case QuickSort:
		quickSort(c, 0, end, lomutoPartition[T])
	case MedianOfThreeQuickSort:
		quickSort(c, 0, end, hoarePartition[T])
	}
}

// Algorithm returns the algorithm the engine runs.
func (e *Engine[T]) Algorithm() Algorithm {
	return e.algorithm
}

// Name returns the display name of the engine's algorithm.
func (e *Engine[T]) Name() string {
	return e.algorithm.String()
}

// Len returns the length of the sequence, which never changes.
func (e *Engine[T]) Len() int {
	return len(e.c.data)
}

// Comparisons returns the number of comparisons performed so far.
func (e *Engine[T]) Comparisons() int {
	return e.c.counts.Comparisons
}

// Swaps returns the number of swaps performed so far.
func (e *Engine[T]) Swaps() int {
	return e.c.counts.Swaps
}

// Counts returns both counters.
func (e *Engine[T]) Counts() Counts {
	return e.c.counts
}

// Values returns a copy of the sequence in its current order.
func (e *Engine[T]) Values() []T {
	return append([]T(nil), e.c.data...)
}

// Render formats the sequence in its current order. See the package
// level Render function.
func (e *Engine[T]) Render() string {
	return Render(e.c.data)
}

func (e *Engine[T]) String() string {
	return e.Render()
}

/*
Render formats s for display: the first element is unprefixed, interior
elements are prefixed with ", ", and the last element of a sequence with
more than one element is prefixed with " and ", as in "1, 3, 5 and 8".
*/
func Render[T Element](s []T) string {
	var b strings.Builder
	last := len(s) - 1
	for i, v := range s {
		switch i {
		case 0:
		case last:
			b.WriteString(" and ")
		default:
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

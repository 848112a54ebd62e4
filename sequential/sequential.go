// Package sequential provides sequential implementations of the
// functions in the parallel package, with the same signatures. Runs that
// use it are deterministic in their ordering, which helps with
// debugging and with reproducible log output.
package sequential

import (
	"context"

	"github.com/exascience/sortmeter/internal"
)

// Do receives zero or more thunks and executes them one after the
// other, returning the left-most error value that is different from
// nil. All thunks run even if an earlier one fails.
func Do(thunks ...func() error) (err error) {
	for _, thunk := range thunks {
		if nerr := thunk(); err == nil {
			err = nerr
		}
	}
	return
}

// Range divides [low, high) into n batches exactly like parallel.Range
// and invokes f on them in ascending order. Batches after ctx is done
// are skipped.
func Range(ctx context.Context, low, high, n int, f func(low, high int) error) error {
	var recur func(int, int, int) error
	recur = func(low, high, n int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		batchSize := ((high - low - 1) / n) + 1
		half := n / 2
		mid := low + batchSize*half
		if n == 1 || mid >= high {
			return f(low, high)
		}
		return Do(
			func() error { return recur(low, mid, half) },
			func() error { return recur(mid, high, n-half) },
		)
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

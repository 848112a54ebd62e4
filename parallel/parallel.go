// Package parallel runs independent units of work in separate
// goroutines. It is used to run several engines, each owning its own
// sequence, side by side; a single sort is never split across
// goroutines.
package parallel

import (
	"context"
	"sync"

	"github.com/exascience/sortmeter/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Do returns only when all thunks have terminated, returning the
// left-most error value that is different from nil.
//
// If one or more thunks panic, the corresponding goroutines recover
// the panics, and Do eventually panics with the left-most recovered
// panic value, with the original stack trace attached.
func Do(thunks ...func() error) error {
	switch len(thunks) {
	case 0:
		return nil
	case 1:
		return thunks[0]()
	}
	half := len(thunks) / 2
	var err0, err1 error
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		err1 = Do(thunks[half:]...)
	}()
	err0 = Do(thunks[:half]...)
	wg.Wait()
	if p != nil {
		panic(p)
	}
	if err0 != nil {
		return err0
	}
	return err1
}

// Range receives a range [low, high), divides it into n batches (see
// internal.ComputeNofBatches), and invokes f on each batch in parallel.
//
// Batches that have not started yet are skipped once ctx is done, and
// Range then returns ctx.Err() unless an earlier batch failed. Error and
// panic propagation are the same as for Do.
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

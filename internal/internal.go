// Package internal holds helpers shared by the parallel and sequential
// packages.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches returns the number of batches into which the range
// [low, high) is split for a requested batch count n. An n of 0 selects
// twice runtime.GOMAXPROCS(0). The result never exceeds the size of the
// range, and an empty range yields a single batch.
func ComputeNofBatches(low, high, n int) int {
	size := high - low
	if size < 0 {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if size == 0 {
		return 1
	}
	var batches int
	switch {
	case n == 0:
		batches = 2 * runtime.GOMAXPROCS(0)
	case n > 0:
		batches = n
	default:
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	if batches > size {
		batches = size
	}
	return batches
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic attaches the stack of the panicking goroutine to a value
// obtained from recover, so that it survives being re-raised in another
// goroutine. Errors stay errors, and runtime errors stay runtime errors.
// WrapPanic(nil) is nil.
func WrapPanic(p interface{}) interface{} {
	if p == nil {
		return nil
	}
	s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	if _, isError := p.(error); !isError {
		return s
	}
	err := errors.New(s)
	if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
		return runtimeError{err}
	}
	return err
}

package parallel_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/exascience/sortmeter/parallel"
	"github.com/exascience/sortmeter/sequential"
)

func ExampleDo() {
	var a, b int
	err := parallel.Do(
		func() error { a = 6 * 7; return nil },
		func() error { b = 2 * 3; return nil },
	)
	fmt.Println(a, b, err)

	// Output:
	// 42 6 <nil>
}

func TestDoLeftmostError(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	for name, do := range map[string]func(...func() error) error{
		"parallel":   parallel.Do,
		"sequential": sequential.Do,
	} {
		var ran int32
		err := do(
			func() error { atomic.AddInt32(&ran, 1); return nil },
			func() error { atomic.AddInt32(&ran, 1); return errA },
			func() error { atomic.AddInt32(&ran, 1); return errB },
		)
		if err != errA {
			t.Errorf("%s: Do error = %v, want %v", name, err, errA)
		}
		if ran != 3 {
			t.Errorf("%s: %d of 3 thunks ran", name, ran)
		}
	}
}

func TestDoPanic(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Errorf("panic was not propagated")
		}
	}()
	_ = parallel.Do(
		func() error { return nil },
		func() error { panic("boom") },
	)
}

func TestRange(t *testing.T) {
	for name, rng := range map[string]func(context.Context, int, int, int, func(int, int) error) error{
		"parallel":   parallel.Range,
		"sequential": sequential.Range,
	} {
		for _, n := range []int{0, 1, 3, 8, 100} {
			covered := make([]int32, 50)
			err := rng(context.Background(), 0, len(covered), n, func(low, high int) error {
				for i := low; i < high; i++ {
					atomic.AddInt32(&covered[i], 1)
				}
				return nil
			})
			if err != nil {
				t.Errorf("%s n=%d: %v", name, n, err)
			}
			for i, c := range covered {
				if c != 1 {
					t.Errorf("%s n=%d: index %d covered %d times", name, n, i, c)
				}
			}
		}
	}
}

func TestRangeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := sequential.Range(ctx, 0, 10, 2, func(int, int) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) || called {
		t.Errorf("Range on canceled context = %v, called = %v", err, called)
	}
	if err := parallel.Range(ctx, 0, 10, 2, func(int, int) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("parallel Range on canceled context = %v", err)
	}
}

package internal

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestComputeNofBatches(t *testing.T) {
	for _, tc := range []struct {
		low, high, n, want int
	}{
		{0, 0, 4, 1},
		{0, 10, 4, 4},
		{0, 3, 4, 3},
		{5, 6, 1, 1},
	} {
		if got := ComputeNofBatches(tc.low, tc.high, tc.n); got != tc.want {
			t.Errorf("ComputeNofBatches(%v, %v, %v) = %v, want %v", tc.low, tc.high, tc.n, got, tc.want)
		}
	}
	if got, limit := ComputeNofBatches(0, 1000, 0), 2*runtime.GOMAXPROCS(0); got != limit && got != 1000 {
		t.Errorf("ComputeNofBatches(0, 1000, 0) = %v", got)
	}
	for _, args := range [][3]int{{3, 1, 1}, {0, 5, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ComputeNofBatches%v did not panic", args)
				}
			}()
			ComputeNofBatches(args[0], args[1], args[2])
		}()
	}
}

func TestWrapPanic(t *testing.T) {
	if WrapPanic(nil) != nil {
		t.Errorf("WrapPanic(nil) != nil")
	}
	if s, ok := WrapPanic("boom").(string); !ok || !strings.HasPrefix(s, "boom\n") {
		t.Errorf("WrapPanic(string) = %v", s)
	}
	if err, ok := WrapPanic(errors.New("bad")).(error); !ok || !strings.HasPrefix(err.Error(), "bad\n") {
		t.Errorf("WrapPanic(error) = %v", err)
	}
	var r interface{}
	func() {
		defer func() { r = WrapPanic(recover()) }()
		var s []int
		_ = s[1]
	}()
	if _, ok := r.(runtime.Error); !ok {
		t.Errorf("WrapPanic lost the runtime.Error type: %T", r)
	}
}

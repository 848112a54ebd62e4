package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/sortmeter/parallel"
	"github.com/exascience/sortmeter/sequential"
	"github.com/exascience/sortmeter/sort"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes a series of random trials.
type Config struct {
	// Size is the number of elements per trial.
	Size int `json:"size"`

	// Trials is the number of independent random inputs.
	Trials int `json:"trials"`

	// MaxValue bounds the random elements, which lie in 1..MaxValue.
	MaxValue int `json:"max_value"`

	// Seed makes the trials reproducible. Trial i uses Seed+i.
	Seed int64 `json:"seed"`

	// Sequential runs trials one after the other.
	Sequential bool `json:"sequential"`

	// Algorithms restricts the algorithms to run. Empty means all.
	Algorithms []sort.Algorithm `json:"algorithms,omitempty"`
}

// DefaultConfig returns one trial over 50 random integers in 1..100.
func DefaultConfig() Config {
	return Config{
		Size:     50,
		Trials:   1,
		MaxValue: 100,
		Seed:     1,
	}
}

// Validate checks that c describes at least one trial over non-empty
// inputs.
func (c Config) Validate() error {
	switch {
	case c.Size < 1:
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, sort.ErrInvalidSize, c.Size)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	case c.MaxValue < 1:
		return fmt.Errorf("%w: max value must be positive, got %d", ErrInvalidConfig, c.MaxValue)
	}
	return nil
}

func (c Config) algorithms() []sort.Algorithm {
	if len(c.Algorithms) == 0 {
		return sort.Algorithms()
	}
	return dedupe(c.Algorithms)
}

// RandomValues returns size values drawn uniformly from 1..max.
func RandomValues[T constraints.Signed](rng *rand.Rand, size int, max T) []T {
	result := make([]T, size)
	for i := range result {
		result[i] = T(rng.Int63n(int64(max))) + 1
	}
	return result
}

// Stats summarizes one counter over a series of trials.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

func toFloats[T constraints.Integer](s []T) []float64 {
	result := make([]float64, len(s))
	for i, x := range s {
		result[i] = float64(x)
	}
	return result
}

// describe requires len(x) > 0. The standard deviation of a single
// sample is reported as 0.
func describe(x []float64) (s Stats) {
	if len(x) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	} else {
		s.Mean = x[0]
	}
	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	return
}

// Summary aggregates the counters of one algorithm over all trials.
type Summary struct {
	Algorithm   sort.Algorithm `json:"algorithm"`
	Name        string         `json:"name"`
	Trials      int            `json:"trials"`
	Comparisons Stats          `json:"comparisons"`
	Swaps       Stats          `json:"swaps"`
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

/*
Trials runs cfg.Trials comparisons, each over fresh random integers, and
summarizes the counters per algorithm in the order the algorithms were
requested.

Trials are independent and run in parallel unless cfg.Sequential is
set. Trials that have not started when ctx is done are skipped and ctx's
error is returned. Each finished trial is logged at debug level to log,
which may be nil.
*/
func Trials(ctx context.Context, cfg Config, log logrus.FieldLogger) ([]Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = discardLogger()
	}
	algorithms := cfg.algorithms()
	results := make([][]Result, cfg.Trials)

	rangeFn := parallel.Range
	if cfg.Sequential {
		rangeFn = sequential.Range
	}
	err := rangeFn(ctx, 0, cfg.Trials, 0, func(low, high int) error {
		for trial := low; trial < high; trial++ {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(trial)))
			data := RandomValues(rng, cfg.Size, cfg.MaxValue)
			run, err := Compare(ctx, data, WithAlgorithms(algorithms...), WithSequential(true))
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}
			results[trial] = run.Results
			for _, r := range run.Results {
				log.WithFields(logrus.Fields{
					"trial":       trial,
					"algorithm":   r.Algorithm.Key(),
					"comparisons": r.Comparisons,
					"swaps":       r.Swaps,
				}).Debug("trial finished")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(algorithms))
	comparisons := make([]int, cfg.Trials)
	swaps := make([]int, cfg.Trials)
	for i, a := range algorithms {
		for trial, rs := range results {
			comparisons[trial] = rs[i].Comparisons
			swaps[trial] = rs[i].Swaps
		}
		summaries[i] = Summary{
			Algorithm:   a,
			Name:        a.String(),
			Trials:      cfg.Trials,
			Comparisons: describe(toFloats(comparisons)),
			Swaps:       describe(toFloats(swaps)),
		}
	}
	log.WithFields(logrus.Fields{
		"trials": cfg.Trials,
		"size":   cfg.Size,
		"seed":   cfg.Seed,
	}).Info("trials finished")
	return summaries, nil
}

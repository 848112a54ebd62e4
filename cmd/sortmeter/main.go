// Command sortmeter sorts values with instrumented sorting algorithms and
// reports how many comparisons and swaps each algorithm made.
//
// Usage:
//
//	sortmeter sort 5 3 8 1
//	sortmeter sort --text --algorithm selection banana Apple cherry
//	sortmeter compare --size 50 --trials 100 --format markdown
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log := logrus.New()
	if err := newRootCommand(log).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("sortmeter failed")
		stop()
		os.Exit(1)
	}
}

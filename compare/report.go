package compare

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/exascience/sortmeter/sort"
)

// WriteText writes run in the plain format used by the command line
// tool: the unsorted and sorted sets, then one line per algorithm.
func WriteText[T sort.Element](w io.Writer, run *Run[T]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "The unsorted set: %s\n\n", sort.Render(run.Input))
	fmt.Fprintf(bw, "The sorted set: %s\n", run.Rendered)
	for _, r := range run.Results {
		fmt.Fprintf(bw, "\n%s made %d comparisons and %d swaps.\n", r.Name, r.Comparisons, r.Swaps)
	}
	return bw.Flush()
}

// WriteSummaries writes one line per summary with the mean counters.
func WriteSummaries(w io.Writer, summaries []Summary) error {
	bw := bufio.NewWriter(w)
	for _, s := range summaries {
		fmt.Fprintf(bw, "%s made %.2f comparisons and %.2f swaps on average over %d trial(s).\n",
			s.Name, s.Comparisons.Mean, s.Swaps.Mean, s.Trials)
	}
	return bw.Flush()
}

// WriteMarkdown writes summaries as a Markdown table, preceded by the
// trial configuration.
func WriteMarkdown(w io.Writer, cfg Config, summaries []Summary) error {
	var b strings.Builder
	b.WriteString("# Sort operation counts\n\n")
	fmt.Fprintf(&b, "%d trial(s) of %d random integers in 1..%d, seed %d.\n\n",
		cfg.Trials, cfg.Size, cfg.MaxValue, cfg.Seed)
	b.WriteString("| Algorithm | Mean comparisons | Std dev | Min | Max | Mean swaps | Std dev | Min | Max |\n")
	b.WriteString("|-----------|------------------|---------|-----|-----|------------|---------|-----|-----|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.0f | %.0f | %.2f | %.2f | %.0f | %.0f |\n",
			s.Name,
			s.Comparisons.Mean, s.Comparisons.StdDev, s.Comparisons.Min, s.Comparisons.Max,
			s.Swaps.Mean, s.Swaps.StdDev, s.Swaps.Min, s.Swaps.Max)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

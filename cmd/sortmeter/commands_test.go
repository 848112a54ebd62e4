package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/exascience/sortmeter/compare"
	"github.com/exascience/sortmeter/sort"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(logrus.New())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSortCommand(t *testing.T) {
	out, _, err := execute(t, "sort", "-a", "selection", "5", "3", "8", "1")
	if err != nil {
		t.Fatal(err)
	}
	want := "The unsorted set: 5, 3, 8 and 1\n\n" +
		"The sorted set: 1, 3, 5 and 8\n" +
		"\nSelection Sort made 6 comparisons and 3 swaps.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestSortCommandText(t *testing.T) {
	out, _, err := execute(t, "sort", "--sequential", "--text", "banana", "Apple", "cherry")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "The sorted set: Apple, banana and cherry\n") {
		t.Errorf("unexpected output %q", out)
	}
	if got := strings.Count(out, " made "); got != 3 {
		t.Errorf("%d result lines, want 3", got)
	}
}

func TestSortCommandErrors(t *testing.T) {
	if _, _, err := execute(t, "sort", "1", "two"); !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("sort 1 two: error = %v", err)
	}
	if _, _, err := execute(t, "sort", "-a", "bubble", "1"); !errors.Is(err, sort.ErrUnknownAlgorithm) {
		t.Errorf("sort -a bubble: error = %v", err)
	}
	if _, _, err := execute(t, "sort"); err == nil {
		t.Errorf("sort without values succeeded")
	}
	if _, _, err := execute(t, "--log-level", "loud", "sort", "1"); err == nil {
		t.Errorf("invalid log level accepted")
	}
}

func TestCompareCommand(t *testing.T) {
	out, _, err := execute(t, "compare", "--size", "10", "--trials", "4", "--format", "json", "-a", "m3quick,selection")
	if err != nil {
		t.Fatal(err)
	}
	var summaries []compare.Summary
	if err := json.Unmarshal([]byte(out), &summaries); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(summaries) != 2 || summaries[0].Algorithm != sort.MedianOfThreeQuickSort || summaries[1].Algorithm != sort.SelectionSort {
		t.Fatalf("unexpected summaries %+v", summaries)
	}
	if got := summaries[1].Comparisons.Mean; got != 45 {
		t.Errorf("selection sort mean comparisons = %v, want 45", got)
	}
	if summaries[0].Trials != 4 {
		t.Errorf("trials = %d, want 4", summaries[0].Trials)
	}
}

func TestCompareCommandFormats(t *testing.T) {
	out, _, err := execute(t, "compare", "--format", "markdown")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "# Sort operation counts\n") {
		t.Errorf("unexpected markdown %q", out)
	}
	out, _, err = execute(t, "compare", "--trials", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Selection Sort made 1225.00 comparisons and 49.00 swaps on average over 2 trial(s).\n") {
		t.Errorf("unexpected text %q", out)
	}
	if _, _, err := execute(t, "compare", "--format", "xml"); err == nil {
		t.Errorf("unknown format accepted")
	}
	if _, _, err := execute(t, "compare", "--size", "0"); !errors.Is(err, sort.ErrInvalidSize) {
		t.Errorf("compare --size 0: error = %v", err)
	}
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--sequential", "compare", "--trials", "2", "-a", "quick")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(stderr, "trial finished"); got != 2 {
		t.Errorf("%d trial log entries, want 2:\n%s", got, stderr)
	}
}

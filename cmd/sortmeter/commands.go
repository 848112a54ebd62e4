package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/exascience/sortmeter/compare"
	"github.com/exascience/sortmeter/sort"
)

type rootOptions struct {
	logLevel   string
	sequential bool
	log        *logrus.Logger
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	opts := &rootOptions{log: log}
	cmd := &cobra.Command{
		Use:           "sortmeter",
		Short:         "Count the comparisons and swaps made by sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.log.SetLevel(level)
			opts.log.SetOutput(cmd.ErrOrStderr())
			opts.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warning", "log level: debug, info, warning, or error")
	flags.BoolVar(&opts.sequential, "sequential", false, "run algorithms and trials one after the other")
	cmd.AddCommand(newSortCommand(opts), newCompareCommand(opts))
	return cmd
}

func addAlgorithmFlag(flags *pflag.FlagSet, names *[]string) {
	flags.StringSliceVarP(names, "algorithm", "a", nil, "algorithms to run: selection, quick, m3quick (default all)")
}

func parseAlgorithms(names []string) ([]sort.Algorithm, error) {
	if len(names) == 0 {
		return sort.Algorithms(), nil
	}
	algorithms := make([]sort.Algorithm, len(names))
	for i, name := range names {
		a, err := sort.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algorithms[i] = a
	}
	return algorithms, nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}

func sortValues[T sort.Element](cmd *cobra.Command, values []T, opts ...compare.Option) error {
	run, err := compare.Compare(cmd.Context(), values, opts...)
	if err != nil {
		return err
	}
	return compare.WriteText(cmd.OutOrStdout(), run)
}

func newSortCommand(root *rootOptions) *cobra.Command {
	var (
		names []string
		text  bool
	)
	cmd := &cobra.Command{
		Use:   "sort VALUE...",
		Short: "Sort the given values with each algorithm and print the counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithms, err := parseAlgorithms(names)
			if err != nil {
				return err
			}
			opts := []compare.Option{
				compare.WithAlgorithms(algorithms...),
				compare.WithSequential(root.sequential),
			}
			root.log.WithFields(logrus.Fields{
				"size": len(args),
				"text": text,
			}).Debug("sorting")
			if text {
				return sortValues(cmd, args, opts...)
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			return sortValues(cmd, values, opts...)
		},
	}
	addAlgorithmFlag(cmd.Flags(), &names)
	cmd.Flags().BoolVarP(&text, "text", "t", false, "sort the values as case-insensitive text instead of integers")
	return cmd
}

func newCompareCommand(root *rootOptions) *cobra.Command {
	var (
		names  []string
		format string
	)
	cfg := compare.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over the same random integers and summarize the counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			algorithms, err := parseAlgorithms(names)
			if err != nil {
				return err
			}
			cfg.Algorithms = algorithms
			cfg.Sequential = root.sequential
			switch format {
			case "text", "markdown", "json":
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			summaries, err := compare.Trials(cmd.Context(), cfg, root.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "markdown":
				return compare.WriteMarkdown(out, cfg, summaries)
			case "json":
				return compare.WriteJSON(out, summaries)
			default:
				return compare.WriteSummaries(out, summaries)
			}
		},
	}
	flags := cmd.Flags()
	addAlgorithmFlag(flags, &names)
	flags.IntVar(&cfg.Size, "size", cfg.Size, "number of random integers per trial")
	flags.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of trials")
	flags.IntVar(&cfg.MaxValue, "max", cfg.MaxValue, "largest random integer")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; trial i uses seed+i")
	flags.StringVarP(&format, "format", "f", "text", "output format: text, markdown, or json")
	return cmd
}

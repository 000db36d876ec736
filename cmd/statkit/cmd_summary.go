package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/reporting"
	"golang.org/x/sync/errgroup"
)

func newSummaryCommand(a *app) *cobra.Command {
	var (
		sf      sampleFlags
		rf      reportFlags
		workers int
	)

	cmd := &cobra.Command{
		Use:   "summary [file...]",
		Short: "Print a full statistical summary of one or more samples",
		Long: `Print a full statistical summary of each sample.

The report lists the sorted sample, its size, extremes, mean, variance,
standard deviation, median, mode, frequency table, PDF, CDF, quartiles, a
histogram and a confidence interval for the mean. Several files are summarized
concurrently and printed in the order given. Use "-" to read standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := sf.load(cmd, a, args)
			if err != nil {
				return err
			}
			opts := rf.options(cmd, a.cfg)
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			return summarize(cmd, a, samples, opts, workers)
		},
	}

	sf.register(cmd)
	rf.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 4, "Samples summarized concurrently")

	return cmd
}

// summarizeOne renders a single sample.
func summarizeOne(cmd *cobra.Command, a *app, s sample, opts reporting.Options) error {
	return summarize(cmd, a, []sample{s}, opts, 1)
}

// summarize renders every sample concurrently, then writes the reports in
// input order. The first failure cancels the rest.
func summarize(cmd *cobra.Command, a *app, samples []sample, opts reporting.Options, workers int) error {
	outputs := make([][]byte, len(samples))

	g, ctx := errgroup.WithContext(cmd.Context())
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, s := range samples {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := a.newEngine(s.Values, nil)
			if err != nil {
				return err
			}
			summary, err := reporting.Build(d, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			if len(samples) > 1 || s.Title != "" {
				summary.Title = sampleLabel(s)
			}

			var buf bytes.Buffer
			if err := reporting.Render(&buf, summary, opts); err != nil {
				return err
			}
			outputs[i] = buf.Bytes()
			slog.Debug("summary rendered", "sample", s.Name, "n", len(s.Values))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, out := range outputs {
		if i > 0 {
			fmt.Fprintln(w) //nolint:errcheck
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/statkit-dev/statkit/internal/statistics"
)

// statistic is one line of describe output. Value is nil when the statistic
// is undefined for the sample.
type statistic struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

func newDescribeCommand(a *app) *cobra.Command {
	var (
		sf      sampleFlags
		asJSON  bool
		precise bool
	)

	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "List every statistic of a sample, one per line",
		Long: `List the scalar statistics of a sample, one per line: size, sum, sum of
squares, mean, both variance formulations, standard deviation, median, mode,
extremes, skewness and coefficient of variation. Statistics that are undefined
for the sample are shown as "undefined".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.loadOne(cmd, a, args)
			if err != nil {
				return err
			}
			d, err := a.newEngine(s.Values, nil)
			if err != nil {
				return err
			}
			stats, err := describe(d)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}
			precision := a.cfg.Report.Precision
			if precise {
				precision = -1
			}
			return printStatistics(cmd.OutOrStdout(), stats, precision)
		},
	}

	sf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&precise, "precise", false, "Print full precision instead of report.precision decimals")

	return cmd
}

func describe(d *statistics.Descriptive) ([]statistic, error) {
	steps := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"n", func() (float64, error) { return float64(d.Len()), nil }},
		{"sum", d.Sum},
		{"sum of squares", d.SumOfSquares},
		{"mean", d.Mean},
		{"variance", d.SampleVariance},
		{"variance (shortcut)", d.SampleVarianceShortcut},
		{"std deviation", d.StdDev},
		{"median", d.Median},
		{"mode", d.Mode},
		{"min", d.Min},
		{"max", d.Max},
		{"skewness", d.SkewnessCoefficient},
		{"variation %", d.Pearson},
	}

	stats := make([]statistic, 0, len(steps))
	for _, step := range steps {
		v, err := step.fn()
		switch {
		case err == nil:
			stats = append(stats, statistic{Name: step.name, Value: &v})
		case errors.Is(err, errs.ErrUndefinedComputation):
			stats = append(stats, statistic{Name: step.name})
		default:
			return nil, err
		}
	}
	return stats, nil
}

func printStatistics(w io.Writer, stats []statistic, precision int) error {
	width := 0
	for _, s := range stats {
		width = max(width, runewidth.StringWidth(s.Name))
	}

	var b strings.Builder
	for _, s := range stats {
		value := "undefined"
		if s.Value != nil {
			prec := precision
			if s.Name == "n" {
				prec = 0
			}
			value = strconv.FormatFloat(*s.Value, 'f', prec, 64)
		}
		fmt.Fprintf(&b, "%s  %s\n", runewidth.FillRight(s.Name, width), value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

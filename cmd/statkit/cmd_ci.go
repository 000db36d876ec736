package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/statistics"
)

func newCICommand(a *app) *cobra.Command {
	var (
		sf         sampleFlags
		confidence float64
		bootstrap  int
		seed       int64
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "ci [file]",
		Short: "Print a confidence interval for the sample mean",
		Long: `Print a confidence interval for the mean of a sample.

By default the interval is mean ± c·s/√n with c read from the critical-value
table: Student's t with n-1 degrees of freedom for samples of up to 30
observations. Larger samples need a normal table, which is not available.
--bootstrap N computes a percentile bootstrap interval from N resamples
instead and works for any sample size.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("confidence") {
				confidence = a.cfg.Report.Confidence
			}
			s, err := sf.loadOne(cmd, a, args)
			if err != nil {
				return err
			}

			var d *statistics.Descriptive
			var iv statistics.Interval
			if cmd.Flags().Changed("bootstrap") {
				if d, err = a.newEngine(s.Values, a.rand(cmd, seed)); err != nil {
					return err
				}
				iv, err = d.BootstrapInterval(confidence, bootstrap)
			} else {
				if d, err = a.newEngine(s.Values, nil); err != nil {
					return err
				}
				iv, err = d.ConfidenceInterval(confidence)
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(iv)
			}
			p := a.cfg.Report.Precision
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "IC(%s)=[%s, %s]\n%s\n",
				formatPercent(iv.ConfidenceLevel), formatFixed(iv.Lower, p), formatFixed(iv.Upper, p), describeInterval(iv, p))
			return err
		},
	}

	sf.register(cmd)
	cmd.Flags().Float64Var(&confidence, "confidence", 0.90, "Confidence level, between 0 and 1")
	cmd.Flags().IntVar(&bootstrap, "bootstrap", statistics.DefaultBootstrapIterations, "Use a bootstrap interval with this many resamples")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for bootstrap resampling (default simulation.seed or the clock)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func describeInterval(iv statistics.Interval, precision int) string {
	if iv.NumBootstraps > 0 {
		return fmt.Sprintf("mean %s, bootstrap over %d resamples", formatFixed(iv.Mean, precision), iv.NumBootstraps)
	}
	return fmt.Sprintf("mean %s ± %s (%s, df=%d, critical=%s)",
		formatFixed(iv.Mean, precision), formatFixed(iv.Margin, precision), iv.Distribution, iv.DF, formatNumber(iv.Critical))
}

func formatFixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatPercent(level float64) string {
	return formatNumber(math.Round(level*10000)/100) + "%"
}

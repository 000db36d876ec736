package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/dataset"
)

func newSimulateCommand(a *app) *cobra.Command {
	var (
		sf        sampleFlags
		rf        reportFlags
		size      int
		seed      int64
		summarize bool
	)

	cmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Draw a new sample from the empirical CDF of a sample",
		Long: `Draw values from the empirical distribution of a sample by inverse-CDF
sampling: for each draw a uniform u in [0, 1) picks the first distinct value
whose cumulative probability reaches u.

The simulated values are printed one line, space separated. With --summary the
simulated sample is summarized instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.loadOne(cmd, a, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = len(s.Values)
			}
			d, err := a.newEngine(s.Values, a.rand(cmd, seed))
			if err != nil {
				return err
			}
			simulated, err := d.SimulateFromCDF(size)
			if err != nil {
				return err
			}

			if summarize {
				sim := sample{Name: "simulated", Title: "Simulated from " + sampleLabel(s), Values: simulated}
				return summarizeOne(cmd, a, sim, rf.options(cmd, a.cfg))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinNumbers(simulated))
			return err
		},
	}

	sf.register(cmd)
	rf.register(cmd)
	cmd.Flags().IntVarP(&size, "size", "n", 0, "Number of values to draw (default: size of the input sample)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default simulation.seed or the clock)")
	cmd.Flags().BoolVar(&summarize, "summary", false, "Summarize the simulated sample")

	return cmd
}

func newGenerateCommand(a *app) *cobra.Command {
	var (
		size int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random sample of whole numbers",
		Long: `Print --size random whole numbers drawn uniformly from [0, size), one line,
space separated. Pipe the output into another command to try statkit out:

  statkit generate -n 25 | statkit summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				size = a.cfg.Simulation.Size
			}
			values, err := dataset.Generate(size, a.rand(cmd, seed))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinNumbers(values))
			return err
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "Number of values (default simulation.size)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default simulation.seed or the clock)")

	return cmd
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, " ")
}

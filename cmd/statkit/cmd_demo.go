package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// demoSample is the 30-observation sample summarized by the demo command.
var demoSample = []float64{10, 16, 47, 48, 74, 30, 81, 42, 57, 67, 7, 13, 56, 44, 54, 17, 60, 32, 45, 28, 33, 60, 36, 59, 73, 46, 10, 40, 35, 65}

func newDemoCommand(a *app) *cobra.Command {
	var (
		rf   reportFlags
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Summarize a built-in sample and a sample simulated from it",
		Long: `Summarize a built-in sample of 30 observations, then draw 30 new values from
its empirical CDF and summarize those too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := rf.options(cmd, a.cfg)
			demo := sample{Name: "demo", Values: demoSample}
			if err := summarizeOne(cmd, a, demo, opts); err != nil {
				return err
			}

			d, err := a.newEngine(demoSample, a.rand(cmd, seed))
			if err != nil {
				return err
			}
			simulated, err := d.SimulateFromCDF(len(demoSample))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nSimulated from the empirical CDF of the sample above") //nolint:errcheck
			return summarizeOne(cmd, a, sample{Name: "simulated", Values: simulated}, opts)
		},
	}

	rf.register(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the simulated sample (default simulation.seed or the clock)")

	return cmd
}

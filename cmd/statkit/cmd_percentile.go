package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/errs"
)

func newPercentileCommand(a *app) *cobra.Command {
	var (
		sf        sampleFlags
		all       bool
		quartiles bool
	)

	cmd := &cobra.Command{
		Use:   "percentile <p>... [--values ...|--column ... file]",
		Short: "Print percentiles of a sample",
		Long: `Print the p-th percentile of a sample for each integer p in [0, 100].

A percentile is the element at position floor(p*n/100) of the sorted sample,
with p=100 giving the largest value. No interpolation is done. --quartiles
prints P25, P50, P75 and P100; --all prints P0 through P99.

Percentile arguments come first; a trailing argument that is not an integer is
read as the sample file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, files := splitPercentileArgs(args)
			if len(ps) == 0 && !all && !quartiles {
				return errs.New("percentile", errs.ErrInvalidArgument, "p", "none")
			}
			s, err := sf.loadOne(cmd, a, files)
			if err != nil {
				return err
			}
			d, err := a.newEngine(s.Values, nil)
			if err != nil {
				return err
			}

			var b strings.Builder
			for _, arg := range ps {
				p, _ := strconv.Atoi(arg)
				v, err := d.Percentile(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(&b, "P%d = %s\n", p, formatNumber(v))
			}
			if quartiles {
				q, err := d.Quartiles()
				if err != nil {
					return err
				}
				for i, v := range q {
					fmt.Fprintf(&b, "Q%d = %s\n", i+1, formatNumber(v))
				}
			}
			if all {
				values, err := d.Percentiles()
				if err != nil {
					return err
				}
				for p, v := range values {
					fmt.Fprintf(&b, "P%d = %s\n", p, formatNumber(v))
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	sf.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Print P0 through P99")
	cmd.Flags().BoolVar(&quartiles, "quartiles", false, "Print the quartiles")

	return cmd
}

// splitPercentileArgs separates leading integer arguments from file names.
func splitPercentileArgs(args []string) (ps, files []string) {
	for i, arg := range args {
		if _, err := strconv.Atoi(arg); err != nil {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

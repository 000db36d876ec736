package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/dataset"
	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/statkit-dev/statkit/internal/statistics"
)

func newSearchCommand(a *app) *cobra.Command {
	var sf sampleFlags

	cmd := &cobra.Command{
		Use:   "search <value> [file]",
		Short: "Sort a sample and binary-search it for a value",
		Long: `Sort a sample and binary-search it for a value.

Prints the index of the value in the sorted sample, or the index at which it
would be inserted when absent. With repeated values any matching index may be
reported.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errs.Wrap("search", errs.ErrInvalidArgument, err, "value", args[0])
			}
			s, err := sf.loadOne(cmd, a, args[1:])
			if err != nil {
				return err
			}
			d, err := a.newEngine(s.Values, nil)
			if err != nil {
				return err
			}

			d.Sort()
			idx := d.BinarySearch(target)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "sorted: %s\n", joinNumbers(d.Sample())) //nolint:errcheck
			_, err = fmt.Fprintln(w, searchResult(target, idx))
			return err
		},
	}

	sf.register(cmd)
	return cmd
}

func searchResult(target float64, idx int) string {
	if idx >= 0 {
		return fmt.Sprintf("%s found at index %d", formatNumber(target), idx)
	}
	return fmt.Sprintf("%s not found, insertion point %d", formatNumber(target), -idx-1)
}

func newSubtractCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtract <minuend-file> <subtrahend-file>",
		Short: "Print the element-wise difference of two equal-length samples",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := dataset.LoadFile(args[0], "", a.in)
			if err != nil {
				return err
			}
			y, err := dataset.LoadFile(args[1], "", a.in)
			if err != nil {
				return err
			}
			diff, err := statistics.Subtract(x, y)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinNumbers(diff))
			return err
		},
	}
	return cmd
}

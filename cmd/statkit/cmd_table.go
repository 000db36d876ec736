package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/cache"
	"github.com/statkit-dev/statkit/internal/critical"
)

func newTableCommand(a *app) *cobra.Command {
	var (
		df    int
		alpha string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the critical-value table",
		Long: `Load the configured critical-value table and print it.

Columns are two-tailed significance levels, rows are degrees of freedom. With
--df only that row is printed; with --df and --alpha only that cell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.criticalService()
			if err != nil {
				return err
			}
			if err := svc.Load(cmd.Context()); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if alpha != "" {
				v, err := svc.Lookup(critical.StudentT, df, alpha)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, formatNumber(v))
				return err
			}

			tbl, err := svc.Table(cmd.Context())
			if err != nil {
				return err
			}
			if df != 0 && (df < 1 || df > tbl.MaxDF()) {
				_, err := tbl.Value(df, tbl.Labels()[0])
				return err
			}
			_, err = fmt.Fprint(w, formatTable(tbl, df))
			return err
		},
	}

	cmd.Flags().IntVar(&df, "df", 0, "Only print this degrees-of-freedom row")
	cmd.Flags().StringVar(&alpha, "alpha", "", `Only print the cell for this significance level, e.g. "0.050" (needs --df)`)
	cmd.MarkFlagsRequiredTogether("alpha", "df")

	return cmd
}

// formatTable lays the table out in right-aligned columns. A non-zero df
// limits the output to that row.
func formatTable(tbl *critical.Table, df int) string {
	labels := tbl.Labels()
	header := append([]string{"df"}, labels...)

	var rows [][]string
	for r := 1; r <= tbl.MaxDF(); r++ {
		if df != 0 && r != df {
			continue
		}
		row := []string{strconv.Itoa(r)}
		for _, v := range tbl.Row(r) {
			row = append(row, strconv.FormatFloat(v, 'f', 4, 64))
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range append([][]string{header}, rows...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteByte('\n')
	}
	return b.String()
}

func newCacheCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the downloaded table cache",
		Long: `Manage the cache of critical-value tables downloaded from Azure Blob Storage.

Cached tables are keyed by their location, so a changed blob is only picked up
after the cache is cleared.`,
	}

	cmd.AddCommand(newCacheClearCommand(a))

	return cmd
}

func newCacheClearCommand(a *app) *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the downloaded table cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cacheDir == "" {
				cacheDir = a.cfg.Cache.Dir
			}
			// Resolve to absolute path
			absDir, err := filepath.Abs(cacheDir)
			if err != nil {
				return fmt.Errorf("resolving cache directory: %w", err)
			}

			c := cache.New(absDir)
			if err := c.Clear(); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cache cleared: %s\n", absDir)
			return err
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Cache directory to clear (default cache.dir)")

	return cmd
}

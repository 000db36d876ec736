package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/dataset"
	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/statkit-dev/statkit/internal/wizard"
)

// sample is one named set of observations.
type sample struct {
	Name   string
	Title  string
	Values []float64
}

// sampleFlags select where samples come from.
type sampleFlags struct {
	column      string
	rows        string
	values      string
	interactive bool
	pgDSN       string
	query       string
}

func (f *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.column, "column", "", "Read files as CSV and use this column (header name or 1-based number)")
	cmd.Flags().StringVar(&f.rows, "rows", "", "With --column, only use data rows START:END (1-based, inclusive)")
	cmd.Flags().StringVar(&f.values, "values", "", `Sample given inline, e.g. "10,16,47"`)
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Enter the sample in an interactive form")
	cmd.Flags().StringVar(&f.pgDSN, "pg-dsn", "", "Postgres connection string (default $STATKIT_PG_DSN or $DATABASE_URL)")
	cmd.Flags().StringVar(&f.query, "query", "", "SQL query whose first column is the sample")
}

// load collects samples from the first source that was given: --values,
// --interactive, --query, file arguments, then standard input.
func (f *sampleFlags) load(cmd *cobra.Command, a *app, args []string) ([]sample, error) {
	switch {
	case f.values != "":
		values, err := dataset.ParseValues(f.values)
		if err != nil {
			return nil, err
		}
		return []sample{{Name: "values", Values: values}}, nil

	case f.interactive:
		spec, err := wizard.RunSampleWizard(a.in, cmd.ErrOrStderr(), wizard.SampleSpec{
			Confidence: a.cfg.Report.Confidence,
			Format:     a.cfg.Report.Format,
		})
		if err != nil {
			return nil, err
		}
		a.cfg.Report.Confidence = spec.Confidence
		a.cfg.Report.Format = spec.Format
		return []sample{{Name: "interactive", Title: spec.Title, Values: spec.Values}}, nil

	case f.query != "":
		dsn := f.pgDSN
		if dsn == "" {
			var err error
			if dsn, err = dataset.DSNFromEnv(); err != nil {
				return nil, err
			}
		}
		values, err := dataset.QueryValues(cmd.Context(), dsn, f.query)
		if err != nil {
			return nil, err
		}
		slog.Debug("sample loaded from postgres", "rows", len(values))
		return []sample{{Name: "query", Values: values}}, nil
	}

	if len(args) == 0 {
		args = []string{dataset.Stdin}
	}
	samples := make([]sample, 0, len(args))
	for _, path := range args {
		values, err := f.loadFile(a, path)
		if err != nil {
			return nil, err
		}
		slog.Debug("sample loaded", "path", path, "n", len(values))
		samples = append(samples, sample{Name: path, Values: values})
	}
	return samples, nil
}

func (f *sampleFlags) loadFile(a *app, path string) ([]float64, error) {
	if f.rows == "" || f.column == "" {
		return dataset.LoadFile(path, f.column, a.in)
	}
	start, end, err := parseRows(f.rows)
	if err != nil {
		return nil, err
	}
	return dataset.LoadColumnRange(path, f.column, start, end)
}

// loadOne is load for commands that work on a single sample.
func (f *sampleFlags) loadOne(cmd *cobra.Command, a *app, args []string) (sample, error) {
	samples, err := f.load(cmd, a, args)
	if err != nil {
		return sample{}, err
	}
	if len(samples) != 1 {
		return sample{}, errs.New("load sample", errs.ErrInvalidArgument, "samples", len(samples))
	}
	return samples[0], nil
}

// parseRows parses START:END; either side may be empty.
func parseRows(s string) (start, end int, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errs.New("rows", errs.ErrInvalidArgument, "rows", s)
	}
	start, end = 1, 0
	if lo != "" {
		if start, err = strconv.Atoi(lo); err != nil {
			return 0, 0, errs.Wrap("rows", errs.ErrInvalidArgument, err, "rows", s)
		}
	}
	if hi != "" {
		if end, err = strconv.Atoi(hi); err != nil {
			return 0, 0, errs.Wrap("rows", errs.ErrInvalidArgument, err, "rows", s)
		}
	}
	return start, end, nil
}

func sampleLabel(s sample) string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("%s (n=%d)", s.Name, len(s.Values))
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/statkit-dev/statkit/internal/cache"
	"github.com/statkit-dev/statkit/internal/critical"
	"github.com/statkit-dev/statkit/internal/projectconfig"
	"github.com/statkit-dev/statkit/internal/reporting"
	"github.com/statkit-dev/statkit/internal/spinner"
	"github.com/statkit-dev/statkit/internal/statistics"
	"github.com/statkit-dev/statkit/internal/tablesource"
)

// app is the state shared by every subcommand of one root command.
type app struct {
	debug     bool
	configDir string
	tableFlag string

	ctx    context.Context
	in     io.Reader
	errOut io.Writer
	cfg    *projectconfig.ProjectConfig

	svcOnce sync.Once
	svc     *critical.Service
	svcErr  error
}

// loadConfig resolves configuration: .statkit.yaml over defaults, then
// STATKIT_* variables, then flags. Relative paths in the file are taken
// relative to the directory holding it.
func (a *app) loadConfig() error {
	cfg, err := projectconfig.Load(a.configDir)
	if err != nil {
		return err
	}
	if cfg.Dir != "" {
		cfg.Table.Source = tablesource.ResolveLocation(cfg.Table.Source, cfg.Dir)
		cfg.Cache.Dir = tablesource.ResolveLocation(cfg.Cache.Dir, cfg.Dir)
	}
	cfg.ApplyEnv(os.Getenv)
	if a.tableFlag != "" {
		cfg.Table.Source = a.tableFlag
	}
	if cfg.Log.Debug != nil && *cfg.Log.Debug {
		a.debug = true
	}
	a.cfg = cfg
	return nil
}

// criticalService returns the table lookup shared by every engine this
// command creates.
func (a *app) criticalService() (*critical.Service, error) {
	a.svcOnce.Do(func() {
		tc := a.cfg.Table

		var c *cache.Cache
		if a.cfg.Cache.Enabled != nil && *a.cfg.Cache.Enabled {
			c = cache.New(a.cfg.Cache.Dir)
		}
		src, err := tablesource.Parse(tc.Source, tablesource.Options{
			MaxDF:     tc.MaxDF,
			Anonymous: tc.Anonymous != nil && *tc.Anonymous,
			Cache:     c,
		})
		if err != nil {
			a.svcErr = fmt.Errorf("table source %q: %w", tc.Source, err)
			return
		}

		delim, _ := utf8.DecodeRuneInString(tc.Delimiter)
		switch src.(type) {
		case tablesource.Embedded, tablesource.Generated:
			delim = critical.DefaultDelimiter
		}
		a.svc = critical.NewService(src, critical.WithDelimiter(delim), critical.WithLogger(slog.Default()))
		slog.Debug("critical-value table configured", "source", src.String())

		if _, remote := src.(*tablesource.Blob); remote {
			a.svcErr = spinner.Run(a.ctx, a.errOut, "Downloading "+src.String(), a.svc.Load)
		}
	})
	return a.svc, a.svcErr
}

// newEngine builds a statistics engine over values wired to the shared table
// and the given random source.
func (a *app) newEngine(values []float64, rng *rand.Rand) (*statistics.Descriptive, error) {
	svc, err := a.criticalService()
	if err != nil {
		return nil, err
	}
	opts := []statistics.Option{
		statistics.WithLookup(svc),
		statistics.WithLogger(slog.Default()),
	}
	if rng != nil {
		opts = append(opts, statistics.WithRand(rng))
	}
	return statistics.New(values, opts...), nil
}

// rand returns a random source seeded from --seed when given, then from
// simulation.seed, then from the clock.
func (a *app) rand(cmd *cobra.Command, seed int64) *rand.Rand {
	switch {
	case cmd.Flags().Changed("seed"):
	case a.cfg.Simulation.Seed != nil:
		seed = *a.cfg.Simulation.Seed
	default:
		seed = time.Now().UnixNano()
	}
	slog.Debug("random source", "seed", seed)
	return rand.New(rand.NewSource(seed))
}

// reportFlags are the report settings a command can override.
type reportFlags struct {
	format     string
	confidence float64
	precision  int
	glyph      string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", reporting.FormatText, "Output format: text, markdown, html or json")
	cmd.Flags().Float64Var(&f.confidence, "confidence", reporting.DefaultConfidence, "Confidence level of the interval, between 0 and 1")
	cmd.Flags().IntVar(&f.precision, "precision", reporting.DefaultPrecision, "Decimal places for computed values")
	cmd.Flags().StringVar(&f.glyph, "glyph", reporting.DefaultGlyph, "Histogram bar character")
}

// options merges the flags the user set over the configured report section.
func (f *reportFlags) options(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) reporting.Options {
	opts := reporting.Options{
		Format:     cfg.Report.Format,
		Precision:  cfg.Report.Precision,
		Glyph:      cfg.Report.Glyph,
		Confidence: cfg.Report.Confidence,
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Format = f.format
	}
	if flags.Changed("confidence") {
		opts.Confidence = f.confidence
	}
	if flags.Changed("precision") {
		opts.Precision = f.precision
	}
	if flags.Changed("glyph") {
		opts.Glyph = f.glyph
	}
	return opts
}

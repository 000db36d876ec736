// Package reporting turns a sample's statistics into a Summary and renders
// it as text, markdown, HTML or JSON.
package reporting

import (
	"errors"

	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/statkit-dev/statkit/internal/statistics"
)

// Output formats accepted by Render.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Formats lists every format Render understands.
var Formats = []string{FormatText, FormatMarkdown, FormatHTML, FormatJSON}

const (
	DefaultPrecision  = 2
	DefaultGlyph      = "="
	DefaultConfidence = 0.90
)

// Options control how a Summary is built and rendered. Zero fields take the
// package defaults.
type Options struct {
	Format     string
	Precision  int
	Glyph      string
	Confidence float64
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.Glyph == "" {
		o.Glyph = DefaultGlyph
	}
	if o.Confidence == 0 {
		o.Confidence = DefaultConfidence
	}
	return o
}

// Summary is a snapshot of everything the reports show for one sample.
type Summary struct {
	Title     string                     `json:"title,omitempty"`
	Sample    []float64                  `json:"sample"`
	N         int                        `json:"n"`
	Min       float64                    `json:"min"`
	Mean      float64                    `json:"mean"`
	Variance  float64                    `json:"variance"`
	StdDev    float64                    `json:"std_dev"`
	Median    float64                    `json:"median"`
	Max       float64                    `json:"max"`
	Mode      float64                    `json:"mode"`
	Frequency []statistics.FrequencyItem `json:"frequency"`
	PDF       []float64                  `json:"pdf"`
	CDF       []float64                  `json:"cdf"`
	Quartiles []float64                  `json:"quartiles"`
	// Skewness is nil for a constant sample.
	Skewness *float64 `json:"skewness,omitempty"`
	// Variation is the coefficient of variation in percent. Nil when the
	// mean is zero.
	Variation *float64 `json:"variation,omitempty"`

	Confidence float64              `json:"confidence"`
	Interval   *statistics.Interval `json:"interval,omitempty"`
	// IntervalUnavailable explains why Interval is nil.
	IntervalUnavailable string `json:"interval_unavailable,omitempty"`
}

// Build sorts the sample and collects its statistics. The first failing
// computation aborts the build, except a confidence interval the lookup has no
// implementation for, which is recorded in IntervalUnavailable.
func Build(d *statistics.Descriptive, opts Options) (*Summary, error) {
	opts = opts.withDefaults()
	d.Sort()

	s := &Summary{
		Sample:     d.Sample(),
		N:          d.Len(),
		Confidence: opts.Confidence,
	}

	steps := []struct {
		dst *float64
		fn  func() (float64, error)
	}{
		{&s.Min, d.Min},
		{&s.Mean, d.Mean},
		{&s.Variance, d.SampleVariance},
		{&s.StdDev, d.StdDev},
		{&s.Median, d.Median},
		{&s.Max, d.Max},
		{&s.Mode, d.Mode},
	}
	for _, step := range steps {
		v, err := step.fn()
		if err != nil {
			return nil, err
		}
		*step.dst = v
	}

	s.Frequency = d.Frequency()
	s.PDF = d.PDF()
	s.CDF = d.CDF()

	q, err := d.Quartiles()
	if err != nil {
		return nil, err
	}
	s.Quartiles = q

	if sk, err := d.SkewnessCoefficient(); err == nil {
		s.Skewness = &sk
	} else if !errors.Is(err, errs.ErrUndefinedComputation) {
		return nil, err
	}
	if cv, err := d.Pearson(); err == nil {
		s.Variation = &cv
	} else if !errors.Is(err, errs.ErrUndefinedComputation) {
		return nil, err
	}

	iv, err := d.ConfidenceInterval(opts.Confidence)
	switch {
	case err == nil:
		s.Interval = &iv
	case errors.Is(err, errs.ErrNotImplemented):
		s.IntervalUnavailable = err.Error()
	default:
		return nil, err
	}
	return s, nil
}

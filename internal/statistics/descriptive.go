// Package statistics computes descriptive statistics over a single sample.
//
// A Descriptive owns its sample. Operations that need ordered data (Median,
// Percentile and friends) sort the sample in place, and later calls observe
// the sorted order. Mode always scans the sample in the order it was supplied.
package statistics

import (
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/statkit-dev/statkit/internal/errs"
)

// Descriptive is the statistics engine for one sample. It is not safe for
// concurrent use; give each goroutine its own instance.
type Descriptive struct {
	sample []float64
	input  []float64 // sample in the order it was supplied, for Mode

	lookup CriticalValueLookup
	rng    *rand.Rand
	logger *slog.Logger

	min, max     float64
	minOK, maxOK bool
}

// Option configures a Descriptive.
type Option func(*Descriptive)

// WithLookup sets the critical-value source used by ConfidenceInterval.
func WithLookup(l CriticalValueLookup) Option {
	return func(d *Descriptive) {
		d.lookup = l
	}
}

// WithRand sets the random source used by SimulateFromCDF and BootstrapInterval.
func WithRand(r *rand.Rand) Option {
	return func(d *Descriptive) {
		d.rng = r
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Descriptive) {
		d.logger = logger
	}
}

// New creates an engine over a copy of sample.
func New(sample []float64, opts ...Option) *Descriptive {
	d := &Descriptive{logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.SetSample(sample)
	return d
}

// SetSample replaces the sample with a copy of sample and drops cached extremes.
func (d *Descriptive) SetSample(sample []float64) {
	d.sample = slices.Clone(sample)
	d.input = slices.Clone(sample)
	d.minOK, d.maxOK = false, false
}

// Sample returns a copy of the sample in its current order.
func (d *Descriptive) Sample() []float64 {
	return slices.Clone(d.sample)
}

// Len is the sample size.
func (d *Descriptive) Len() int {
	return len(d.sample)
}

// Sum of all observations.
func (d *Descriptive) Sum() (float64, error) {
	if len(d.sample) == 0 {
		return 0, errs.New("sum", errs.ErrUndefinedComputation, "n", 0)
	}
	return d.sum(), nil
}

// SumOfSquares is the sum of each observation squared.
func (d *Descriptive) SumOfSquares() (float64, error) {
	if len(d.sample) == 0 {
		return 0, errs.New("sum of squares", errs.ErrUndefinedComputation, "n", 0)
	}
	total := 0.0
	for _, v := range d.sample {
		total += v * v
	}
	return total, nil
}

// Mean is the arithmetic mean.
func (d *Descriptive) Mean() (float64, error) {
	if len(d.sample) == 0 {
		return 0, errs.New("mean", errs.ErrUndefinedComputation, "n", 0)
	}
	return d.mean(), nil
}

func (d *Descriptive) sum() float64 {
	total := 0.0
	for _, v := range d.sample {
		total += v
	}
	return total
}

func (d *Descriptive) mean() float64 {
	return d.sum() / float64(len(d.sample))
}

// Sort orders the sample ascending in place.
func (d *Descriptive) Sort() {
	slices.Sort(d.sample)
}

// BinarySearch looks value up in the sample as it is currently ordered. It
// returns the index of value, or -(insertion point)-1 when value is absent.
// The sample must be sorted and free of duplicates for the result to be
// meaningful.
func (d *Descriptive) BinarySearch(value float64) int {
	i, found := slices.BinarySearch(d.sample, value)
	if !found {
		return -i - 1
	}
	return i
}

// SampleVariance is Σ(x-mean)²/(n-1).
func (d *Descriptive) SampleVariance() (float64, error) {
	n := len(d.sample)
	if n < 2 {
		return 0, errs.New("sample variance", errs.ErrUndefinedComputation, "n", n)
	}
	m := d.mean()
	sumSq := 0.0
	for _, v := range d.sample {
		diff := v - m
		sumSq += diff * diff
	}
	return sumSq / float64(n-1), nil
}

// SampleVarianceShortcut is (Σx² - (Σx)²/n)/(n-1). It agrees with
// SampleVariance up to rounding.
func (d *Descriptive) SampleVarianceShortcut() (float64, error) {
	n := len(d.sample)
	if n < 2 {
		return 0, errs.New("sample variance", errs.ErrUndefinedComputation, "n", n)
	}
	sumSq, _ := d.SumOfSquares()
	s := d.sum()
	return (sumSq - s*s/float64(n)) / float64(n-1), nil
}

// StdDev is the sample standard deviation.
func (d *Descriptive) StdDev() (float64, error) {
	if n := len(d.sample); n < 2 {
		return 0, errs.New("standard deviation", errs.ErrUndefinedComputation, "n", n)
	}
	v, _ := d.SampleVariance()
	return math.Sqrt(v), nil
}

// Median sorts the sample and returns its middle value, or the average of the
// two middle values when n is even.
func (d *Descriptive) Median() (float64, error) {
	n := len(d.sample)
	if n == 0 {
		return 0, errs.New("median", errs.ErrUndefinedComputation, "n", 0)
	}
	d.Sort()
	if n%2 == 1 {
		return d.sample[(n+1)/2-1], nil
	}
	m := n / 2
	return (d.sample[m-1] + d.sample[m]) / 2, nil
}

// Mode returns the most frequent value. Scanning the sample in the order it
// was supplied, the mode changes only when a value's running count strictly
// exceeds the best count so far, so ties go to the value that reached the
// winning count first. With no repeated values that is the first observation.
func (d *Descriptive) Mode() (float64, error) {
	if len(d.input) == 0 {
		return 0, errs.New("mode", errs.ErrUndefinedComputation, "n", 0)
	}
	counts := make(map[float64]int, len(d.input))
	best := 0
	mode := 0.0
	for _, v := range d.input {
		counts[v]++
		if c := counts[v]; c > best {
			best = c
			mode = v
		}
	}
	return mode, nil
}

// SkewnessCoefficient is Pearson's first skewness coefficient, (mean-mode)/stdDev.
// It is undefined for a constant sample.
func (d *Descriptive) SkewnessCoefficient() (float64, error) {
	sd, err := d.StdDev()
	if err != nil {
		return 0, err
	}
	if sd == 0 {
		return 0, errs.New("skewness", errs.ErrUndefinedComputation, "stdDev", sd)
	}
	mode, err := d.Mode()
	if err != nil {
		return 0, err
	}
	return (d.mean() - mode) / sd, nil
}

// Pearson is the coefficient of variation in percent, stdDev/mean*100.
func (d *Descriptive) Pearson() (float64, error) {
	sd, err := d.StdDev()
	if err != nil {
		return 0, err
	}
	m := d.mean()
	if m == 0 {
		return 0, errs.New("coefficient of variation", errs.ErrUndefinedComputation, "mean", m)
	}
	return sd / m * 100, nil
}

// Percentile sorts the sample and returns the element at floor(p*n/100),
// with p=100 mapped to the last element. No interpolation is done.
func (d *Descriptive) Percentile(p int) (float64, error) {
	if p < 0 || p > 100 {
		return 0, errs.New("percentile", errs.ErrInvalidArgument, "p", p)
	}
	n := len(d.sample)
	if n == 0 {
		return 0, errs.New("percentile", errs.ErrUndefinedComputation, "p", p, "n", 0)
	}
	d.Sort()
	return d.sample[percentileIndex(p, n)], nil
}

func percentileIndex(p, n int) int {
	pos := p * n / 100
	if pos == n {
		pos--
	}
	return pos
}

// Percentiles returns percentile 0 through 99.
func (d *Descriptive) Percentiles() ([]float64, error) {
	out := make([]float64, 100)
	for p := range out {
		v, err := d.Percentile(p)
		if err != nil {
			return nil, err
		}
		out[p] = v
	}
	return out, nil
}

// Quartiles returns percentiles 25, 50, 75 and 100.
func (d *Descriptive) Quartiles() ([]float64, error) {
	out := make([]float64, 0, 4)
	for _, p := range []int{25, 50, 75, 100} {
		v, err := d.Percentile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Min returns the smallest observation. The result is cached until SetSample.
func (d *Descriptive) Min() (float64, error) {
	if d.minOK {
		return d.min, nil
	}
	if len(d.sample) == 0 {
		return 0, errs.New("min", errs.ErrUndefinedComputation, "n", 0)
	}
	d.min, d.minOK = slices.Min(d.sample), true
	return d.min, nil
}

// Max returns the largest observation. The result is cached until SetSample.
func (d *Descriptive) Max() (float64, error) {
	if d.maxOK {
		return d.max, nil
	}
	if len(d.sample) == 0 {
		return 0, errs.New("max", errs.ErrUndefinedComputation, "n", 0)
	}
	d.max, d.maxOK = slices.Max(d.sample), true
	return d.max, nil
}

// CachedMin reports the last value observed by Min and whether it still
// describes the current sample.
func (d *Descriptive) CachedMin() (float64, bool) {
	return d.min, d.minOK
}

// CachedMax reports the last value observed by Max and whether it still
// describes the current sample.
func (d *Descriptive) CachedMax() (float64, bool) {
	return d.max, d.maxOK
}

// Subtract returns a-b element by element.
func Subtract(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, errs.New("subtract", errs.ErrInvalidArgument, "len(a)", len(a), "len(b)", len(b))
	}
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	return diff, nil
}

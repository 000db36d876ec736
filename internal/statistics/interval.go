package statistics

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/statkit-dev/statkit/internal/critical"
	"github.com/statkit-dev/statkit/internal/errs"
)

// SmallSampleLimit is the largest sample size for which ConfidenceInterval
// uses Student's t distribution. Larger samples use the normal distribution.
const SmallSampleLimit = 30

// DefaultBootstrapIterations is the number of bootstrap resamples.
const DefaultBootstrapIterations = 10000

// Interval holds a confidence interval around the sample mean.
type Interval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Mean            float64 `json:"mean"`
	Margin          float64 `json:"margin"`
	Critical        float64 `json:"critical,omitempty"`
	ConfidenceLevel float64 `json:"confidence_level"`
	DF              int     `json:"df,omitempty"`
	Distribution    string  `json:"distribution"`
	NumBootstraps   int     `json:"num_bootstraps,omitempty"`
}

// ConfidenceInterval returns mean ± c·stdDev/√n, where c is the critical value
// for alpha = 1-confidenceLevel at n-1 degrees of freedom. Samples of up to
// SmallSampleLimit observations use the t table; larger samples ask the lookup
// for a normal critical value.
func (d *Descriptive) ConfidenceInterval(confidenceLevel float64) (Interval, error) {
	if !(confidenceLevel > 0 && confidenceLevel < 1) {
		return Interval{}, errs.New("confidence interval", errs.ErrInvalidArgument, "level", confidenceLevel)
	}
	n := len(d.sample)
	if n < 2 {
		return Interval{}, errs.New("confidence interval", errs.ErrUndefinedComputation, "level", confidenceLevel, "n", n)
	}
	if d.lookup == nil {
		return Interval{}, errs.New("confidence interval", errs.ErrResourceUnavailable, "lookup", "none")
	}

	alpha := critical.FormatAlpha(1 - confidenceLevel)
	dist := critical.StudentT
	if n > SmallSampleLimit {
		dist = critical.Normal
	}
	d.logger.Debug("confidence interval", "n", n, "level", confidenceLevel, "alpha", alpha, "distribution", dist.String())

	c, err := d.lookup.Lookup(dist, n-1, alpha)
	if err != nil {
		return Interval{}, fmt.Errorf("confidence interval(level=%v, n=%d): %w", confidenceLevel, n, err)
	}

	m := d.mean()
	sd, _ := d.StdDev()
	margin := c * sd / math.Sqrt(float64(n))
	return Interval{
		Lower:           m - margin,
		Upper:           m + margin,
		Mean:            m,
		Margin:          margin,
		Critical:        c,
		ConfidenceLevel: confidenceLevel,
		DF:              n - 1,
		Distribution:    dist.String(),
	}, nil
}

// BootstrapInterval computes a percentile-method bootstrap interval for the
// mean using the engine's random source.
func (d *Descriptive) BootstrapInterval(confidenceLevel float64, iterations int) (Interval, error) {
	if !(confidenceLevel > 0 && confidenceLevel < 1) {
		return Interval{}, errs.New("bootstrap interval", errs.ErrInvalidArgument, "level", confidenceLevel)
	}
	if iterations < 1 {
		return Interval{}, errs.New("bootstrap interval", errs.ErrInvalidArgument, "iterations", iterations)
	}
	if len(d.sample) == 0 {
		return Interval{}, errs.New("bootstrap interval", errs.ErrUndefinedComputation, "n", 0)
	}
	return bootstrap(d.sample, confidenceLevel, iterations, d.rng), nil
}

// BootstrapCI computes a bootstrap confidence interval over values using the
// percentile method. confidenceLevel should be in (0, 1), e.g. 0.95.
// Returns a degenerate interval at the mean when fewer than 2 values exist.
func BootstrapCI(values []float64, confidenceLevel float64) Interval {
	return BootstrapCIWithSeed(values, confidenceLevel, -1)
}

// BootstrapCIWithSeed is like BootstrapCI but accepts a seed for reproducibility.
// A negative seed uses a non-deterministic source.
func BootstrapCIWithSeed(values []float64, confidenceLevel float64, seed int64) Interval {
	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return bootstrap(values, confidenceLevel, DefaultBootstrapIterations, rng)
}

func bootstrap(values []float64, confidenceLevel float64, iters int, rng *rand.Rand) Interval {
	n := len(values)
	m := meanOf(values)
	if n < 2 {
		return Interval{
			Lower:           m,
			Upper:           m,
			Mean:            m,
			ConfidenceLevel: confidenceLevel,
			Distribution:    "bootstrap",
		}
	}

	// Resample with replacement, keep the mean of each resample
	bootMeans := make([]float64, iters)
	resample := make([]float64, n)
	for i := 0; i < iters; i++ {
		for j := 0; j < n; j++ {
			resample[j] = values[rng.Intn(n)]
		}
		bootMeans[i] = meanOf(resample)
	}

	sort.Float64s(bootMeans)

	alpha := 1.0 - confidenceLevel
	loIdx := int(math.Floor(alpha / 2.0 * float64(iters)))
	hiIdx := int(math.Floor((1.0 - alpha/2.0) * float64(iters)))
	if hiIdx >= iters {
		hiIdx = iters - 1
	}

	return Interval{
		Lower:           bootMeans[loIdx],
		Upper:           bootMeans[hiIdx],
		Mean:            m,
		Margin:          (bootMeans[hiIdx] - bootMeans[loIdx]) / 2,
		ConfidenceLevel: confidenceLevel,
		Distribution:    "bootstrap",
		NumBootstraps:   iters,
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

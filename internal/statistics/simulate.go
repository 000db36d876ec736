package statistics

import (
	"github.com/statkit-dev/statkit/internal/errs"
)

// SimulateFromCDF draws n values by inverse-CDF sampling of the empirical
// distribution: each uniform draw in [0,1) maps to the first distinct value
// whose cumulative probability exceeds it.
func (d *Descriptive) SimulateFromCDF(n int) ([]float64, error) {
	if n < 0 {
		return nil, errs.New("simulate from cdf", errs.ErrInvalidArgument, "n", n)
	}
	if len(d.sample) == 0 {
		return nil, errs.New("simulate from cdf", errs.ErrUndefinedComputation, "n", n, "sample size", 0)
	}

	freq := d.Frequency()
	cdf := d.CDF()
	last := freq[len(freq)-1].Value

	sim := make([]float64, n)
	for i := range sim {
		g := d.rng.Float64()
		sim[i] = last // cdf[last] may round to just under 1
		for j, c := range cdf {
			if g < c {
				sim[i] = freq[j].Value
				break
			}
		}
	}

	d.logger.Debug("simulated sample from empirical cdf", "draws", n, "distinct", len(freq))
	return sim, nil
}

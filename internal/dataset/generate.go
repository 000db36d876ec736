package dataset

import (
	"math/rand"

	"github.com/statkit-dev/statkit/internal/errs"
)

// Generate draws n integers uniformly from [0, n) as a sample.
func Generate(n int, rng *rand.Rand) ([]float64, error) {
	if n < 0 {
		return nil, errs.New("generate", errs.ErrInvalidArgument, "n", n)
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(rng.Intn(n))
	}
	return values, nil
}

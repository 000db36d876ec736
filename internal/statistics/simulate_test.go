package statistics

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func TestSimulateFromCDFDrawsObservedValues(t *testing.T) {
	d := New(demoSample, seeded(1))

	sim, err := d.SimulateFromCDF(500)
	require.NoError(t, err)
	require.Len(t, sim, 500)

	observed := make(map[float64]bool)
	for _, v := range demoSample {
		observed[v] = true
	}
	for _, v := range sim {
		assert.True(t, observed[v], "simulated value %v never occurs in the sample", v)
	}
}

func TestSimulateFromCDFIsDeterministicForASeed(t *testing.T) {
	a, err := New(demoSample, seeded(42)).SimulateFromCDF(50)
	require.NoError(t, err)
	b, err := New(demoSample, seeded(42)).SimulateFromCDF(50)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulateFromCDFFollowsTheEmpiricalDistribution(t *testing.T) {
	d := New([]float64{1, 2, 2, 2}, seeded(3))

	sim, err := d.SimulateFromCDF(20000)
	require.NoError(t, err)

	ones := 0
	for _, v := range sim {
		if v == 1 {
			ones++
		}
	}
	share := float64(ones) / float64(len(sim))
	assert.InDelta(t, 0.25, share, 0.02)
}

func TestSimulateFromCDFEdgeCases(t *testing.T) {
	sim, err := New([]float64{7}, seeded(1)).SimulateFromCDF(10)
	require.NoError(t, err)
	for _, v := range sim {
		assert.Equal(t, 7.0, v)
	}

	sim, err = New(demoSample, seeded(1)).SimulateFromCDF(0)
	require.NoError(t, err)
	assert.Empty(t, sim)

	_, err = New(demoSample).SimulateFromCDF(-1)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, err = New(nil).SimulateFromCDF(3)
	assert.True(t, errors.Is(err, errs.ErrUndefinedComputation))
}

package statistics

import (
	"errors"
	"math"
	"testing"

	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// demoSample is the 30-observation sample used throughout the package tests.
var demoSample = []float64{10, 16, 47, 48, 74, 30, 81, 42, 57, 67, 7, 13, 56, 44, 54, 17, 60, 32, 45, 28, 33, 60, 36, 59, 73, 46, 10, 40, 35, 65}

var propertySamples = map[string][]float64{
	"demo":       demoSample,
	"two values": {1, 2},
	"negatives":  {-3.5, 2.25, -1, 0, 8.125, -3.5},
	"offset":     {101, 102, 103, 104},
	"fractions":  {0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	"odd":        {5, 3, 9, 1, 7},
}

func TestMeanIsSumOverN(t *testing.T) {
	for name, sample := range propertySamples {
		t.Run(name, func(t *testing.T) {
			d := New(sample)
			sum, err := d.Sum()
			require.NoError(t, err)
			mean, err := d.Mean()
			require.NoError(t, err)
			assert.Equal(t, sum/float64(len(sample)), mean)
			assert.InDelta(t, stat.Mean(sample, nil), mean, 1e-9)
		})
	}
}

func TestVarianceFormulationsAgree(t *testing.T) {
	for name, sample := range propertySamples {
		t.Run(name, func(t *testing.T) {
			d := New(sample)
			direct, err := d.SampleVariance()
			require.NoError(t, err)
			shortcut, err := d.SampleVarianceShortcut()
			require.NoError(t, err)

			assert.InEpsilon(t, direct, shortcut, 1e-9)
			assert.InEpsilon(t, stat.Variance(sample, nil), direct, 1e-9)
		})
	}
}

func TestDemoSampleStatistics(t *testing.T) {
	d := New(demoSample)

	mean, err := d.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 42.833333333, mean, 1e-9)

	variance, err := d.SampleVariance()
	require.NoError(t, err)
	assert.InDelta(t, 422.626436781, variance, 1e-9)

	sd, err := d.StdDev()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(variance), sd, 1e-12)

	median, err := d.Median()
	require.NoError(t, err)
	assert.Equal(t, 44.5, median)

	mode, err := d.Mode()
	require.NoError(t, err)
	assert.Equal(t, 60.0, mode)

	skew, err := d.SkewnessCoefficient()
	require.NoError(t, err)
	assert.InDelta(t, (mean-60)/sd, skew, 1e-12)

	quartiles, err := d.Quartiles()
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 45, 59, 81}, quartiles)

	lo, err := d.Min()
	require.NoError(t, err)
	hi, err := d.Max()
	require.NoError(t, err)
	assert.Equal(t, 7.0, lo)
	assert.Equal(t, 81.0, hi)
}

func TestSumOfSquares(t *testing.T) {
	d := New([]float64{1, 2, 3})
	got, err := d.SumOfSquares()
	require.NoError(t, err)
	assert.Equal(t, 14.0, got)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
		want   float64
	}{
		{"odd", []float64{1, 2, 3, 4, 5}, 3},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"unsorted odd", []float64{9, 1, 5}, 5},
		{"unsorted even", []float64{40, 10, 30, 20}, 25},
		{"single", []float64{7}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.sample).Median()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMedianSortsInPlace(t *testing.T) {
	input := []float64{3, 1, 2}
	d := New(input)

	_, err := d.Median()
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, d.Sample())
	assert.Equal(t, []float64{3, 1, 2}, input, "caller's slice must not be touched")
}

func TestModeTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
		want   float64
	}{
		{"tie goes to first to reach the count", []float64{1, 1, 2, 2}, 1},
		{"tie in reverse order", []float64{2, 2, 1, 1}, 2},
		{"interleaved tie", []float64{2, 1, 1, 2}, 1},
		{"later value overtakes", []float64{1, 1, 2, 2, 2}, 2},
		{"all distinct", []float64{5, 4, 3}, 5},
		{"single", []float64{42}, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.sample).Mode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeIgnoresSorting(t *testing.T) {
	d := New([]float64{2, 2, 1, 1})
	d.Sort()

	got, err := d.Mode()
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestSortIsIdempotent(t *testing.T) {
	d := New([]float64{4, 2, 8, 6})
	d.Sort()
	first := d.Sample()
	d.Sort()
	assert.Equal(t, first, d.Sample())
	assert.Equal(t, []float64{2, 4, 6, 8}, first)
}

func TestPercentileEdges(t *testing.T) {
	for name, sample := range propertySamples {
		t.Run(name, func(t *testing.T) {
			d := New(sample)
			lo, err := d.Min()
			require.NoError(t, err)
			hi, err := d.Max()
			require.NoError(t, err)

			p0, err := d.Percentile(0)
			require.NoError(t, err)
			p100, err := d.Percentile(100)
			require.NoError(t, err)

			assert.Equal(t, lo, p0)
			assert.Equal(t, hi, p100)
		})
	}
}

func TestPercentileIndexSelection(t *testing.T) {
	d := New([]float64{50, 10, 40, 20, 30})

	tests := []struct {
		p    int
		want float64
	}{
		{0, 10},
		{19, 10}, // 19*5/100 = 0
		{20, 20}, // 20*5/100 = 1
		{50, 30},
		{99, 50},
		{100, 50},
	}
	for _, tt := range tests {
		got, err := d.Percentile(tt.p)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "p=%d", tt.p)
	}
}

func TestPercentileRejectsOutOfRange(t *testing.T) {
	for _, p := range []int{-1, 101, 1000} {
		d := New([]float64{3, 1, 2})

		_, err := d.Percentile(p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "p=")
		assert.Equal(t, []float64{3, 1, 2}, d.Sample(), "rejected percentile must not sort")
	}
}

func TestPercentilesAndQuartiles(t *testing.T) {
	d := New(demoSample)

	all, err := d.Percentiles()
	require.NoError(t, err)
	require.Len(t, all, 100)
	for p, v := range all {
		want, err := d.Percentile(p)
		require.NoError(t, err)
		assert.Equal(t, want, v, "p=%d", p)
	}

	q, err := d.Quartiles()
	require.NoError(t, err)
	var want []float64
	for _, p := range []int{25, 50, 75, 100} {
		v, err := d.Percentile(p)
		require.NoError(t, err)
		want = append(want, v)
	}
	assert.Equal(t, want, q)
}

func TestBinarySearch(t *testing.T) {
	d := New([]float64{9, 1, 7, 3, 5})
	d.Sort()

	for i, v := range []float64{1, 3, 5, 7, 9} {
		assert.Equal(t, i, d.BinarySearch(v), "value %v", v)
	}

	tests := []struct {
		value float64
		want  int
	}{
		{0, -1},
		{2, -2},
		{4, -3},
		{8, -5},
		{10, -6},
	}
	for _, tt := range tests {
		got := d.BinarySearch(tt.value)
		assert.Equal(t, tt.want, got, "value %v", tt.value)
		assert.Less(t, got, 0)
	}
}

func TestExtremesCache(t *testing.T) {
	d := New([]float64{3, 1, 2})

	_, ok := d.CachedMin()
	assert.False(t, ok, "nothing observed yet")

	lo, err := d.Min()
	require.NoError(t, err)
	hi, err := d.Max()
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)

	cached, ok := d.CachedMin()
	assert.True(t, ok)
	assert.Equal(t, 1.0, cached)
	cached, ok = d.CachedMax()
	assert.True(t, ok)
	assert.Equal(t, 3.0, cached)

	t.Run("sorting keeps the cache", func(t *testing.T) {
		d.Sort()
		_, ok := d.CachedMin()
		assert.True(t, ok)
	})

	t.Run("replacing the sample invalidates the cache", func(t *testing.T) {
		d.SetSample([]float64{20, 10, 30})

		_, ok := d.CachedMin()
		assert.False(t, ok)
		_, ok = d.CachedMax()
		assert.False(t, ok)

		lo, err := d.Min()
		require.NoError(t, err)
		hi, err := d.Max()
		require.NoError(t, err)
		assert.Equal(t, 10.0, lo)
		assert.Equal(t, 30.0, hi)
	})
}

func TestEngineOwnsItsSample(t *testing.T) {
	input := []float64{5, 6, 7}
	d := New(input)
	input[0] = 100

	lo, err := d.Min()
	require.NoError(t, err)
	assert.Equal(t, 5.0, lo)

	out := d.Sample()
	out[0] = -1
	assert.Equal(t, []float64{5, 6, 7}, d.Sample())
}

func TestUndefinedOnSmallSamples(t *testing.T) {
	empty := New(nil)
	single := New([]float64{4})

	tests := []struct {
		name string
		call func() error
	}{
		{"mean", func() error { _, err := empty.Mean(); return err }},
		{"sum", func() error { _, err := empty.Sum(); return err }},
		{"sum of squares", func() error { _, err := empty.SumOfSquares(); return err }},
		{"median", func() error { _, err := empty.Median(); return err }},
		{"mode", func() error { _, err := empty.Mode(); return err }},
		{"min", func() error { _, err := empty.Min(); return err }},
		{"max", func() error { _, err := empty.Max(); return err }},
		{"percentile", func() error { _, err := empty.Percentile(50); return err }},
		{"variance n=1", func() error { _, err := single.SampleVariance(); return err }},
		{"shortcut variance n=1", func() error { _, err := single.SampleVarianceShortcut(); return err }},
		{"stddev n=1", func() error { _, err := single.StdDev(); return err }},
		{"skewness n=1", func() error { _, err := single.SkewnessCoefficient(); return err }},
		{"skewness constant", func() error { _, err := New([]float64{3, 3, 3}).SkewnessCoefficient(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrUndefinedComputation), "got %v", err)
		})
	}
}

func TestPearson(t *testing.T) {
	d := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	mean, _ := d.Mean()
	sd, _ := d.StdDev()

	got, err := d.Pearson()
	require.NoError(t, err)
	assert.InDelta(t, sd/mean*100, got, 1e-12)

	_, err = New([]float64{-1, 1}).Pearson()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUndefinedComputation))
}

func TestSubtract(t *testing.T) {
	diff, err := Subtract([]float64{1, 2, 3}, []float64{0, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -2}, diff)

	_, err = Subtract([]float64{1}, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

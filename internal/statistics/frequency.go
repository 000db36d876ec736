package statistics

import (
	"cmp"
	"slices"
	"strconv"
)

// FrequencyItem is a distinct sample value and how many times it occurs.
type FrequencyItem struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Compare orders items by Value.
func (f FrequencyItem) Compare(other FrequencyItem) int {
	return cmp.Compare(f.Value, other.Value)
}

func (f FrequencyItem) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64) + "=" + strconv.Itoa(f.Count)
}

// Frequency counts each distinct value, ascending by value. It is rebuilt on
// every call.
func (d *Descriptive) Frequency() []FrequencyItem {
	if len(d.sample) == 0 {
		return nil
	}
	counts := make(map[float64]int, len(d.sample))
	for _, v := range d.sample {
		counts[v]++
	}
	items := make([]FrequencyItem, 0, len(counts))
	for v, c := range counts {
		items = append(items, FrequencyItem{Value: v, Count: c})
	}
	slices.SortFunc(items, FrequencyItem.Compare)
	return items
}

// PDF is the empirical probability of each value, aligned with Frequency.
func (d *Descriptive) PDF() []float64 {
	items := d.Frequency()
	n := float64(len(d.sample))
	pdf := make([]float64, len(items))
	for i, item := range items {
		pdf[i] = float64(item.Count) / n
	}
	return pdf
}

// CDF is the running sum of PDF, aligned with Frequency. Its last element is
// 1 up to rounding.
func (d *Descriptive) CDF() []float64 {
	return cumulative(d.PDF())
}

func cumulative(pdf []float64) []float64 {
	cdf := make([]float64, len(pdf))
	running := 0.0
	for i, p := range pdf {
		running += p
		cdf[i] = running
	}
	return cdf
}

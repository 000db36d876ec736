package reporting

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/statkit-dev/statkit/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	freq := []statistics.FrequencyItem{{Value: 1, Count: 2}, {Value: 10, Count: 1}, {Value: 2.5, Count: 3}}

	got := Histogram(freq, "*")
	assert.Equal(t, "    1  **\n   10  *\n  2.5  ***\n", got)
	assert.Equal(t, Histogram(freq, ""), strings.ReplaceAll(got, "*", "="))
}

func TestHistogramOneGlyphPerObservation(t *testing.T) {
	d := statistics.New(demoSample)
	hist := Histogram(d.Frequency(), "#")
	assert.Equal(t, len(demoSample), strings.Count(hist, "#"))
	assert.Equal(t, len(d.Frequency()), strings.Count(hist, "\n"))
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, demoSummary(t), Options{}))
	out := buf.String()

	for _, want := range []string{
		textHeader + "\n",
		"N                   30\n",
		"Min                 7\n",
		"Mean                42.83\n",
		"Variance            422.63\n",
		"Std deviation       20.56\n",
		"Median              44.5\n",
		"Max                 81\n",
		"Mode                60\n",
		"Quartiles           [30, 45, 59, 81]\n",
		"Frequency           [7=1, 10=2, 13=1,",
		"Histogram\n    7  =\n   10  ==\n",
		"IC(90%)=[36.46, 49.21]\n",
		textFooter + "\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasPrefix(out, textHeader))
}

func TestRenderTextPrecisionAndGlyph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, demoSummary(t), Options{Precision: 4, Glyph: "#"}))
	out := buf.String()

	assert.Contains(t, out, "Mean                42.8333\n")
	assert.Contains(t, out, "   10  ##\n")
	assert.NotContains(t, out, "  ==")
}

func TestRenderTextUnavailableInterval(t *testing.T) {
	s := &Summary{N: 1, Confidence: 0.95, IntervalUnavailable: "confidence interval(n=31): not implemented"}
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, s, Options{}))
	assert.Contains(t, buf.String(), "IC(95%)=unavailable: confidence interval(n=31): not implemented\n")
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, demoSummary(t), Options{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Summary\n"))
	assert.Contains(t, out, "| Mean | 42.83 |\n")
	assert.Contains(t, out, "| 10 | 2 | 0.07 | 0.10 |\n")
	assert.Contains(t, out, "## Histogram\n\n```\n    7  =\n")
	assert.Contains(t, out, "IC(90%)=[36.46, 49.21]")
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, demoSummary(t), Options{}))
	out := buf.String()

	assert.Contains(t, out, "<h1>Summary</h1>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "42.83")
	assert.Contains(t, out, "<pre><code>")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, demoSummary(t), Options{Format: FormatJSON}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 30.0, got["n"])
	assert.Equal(t, 60.0, got["mode"])
	interval, ok := got["interval"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "student-t", interval["distribution"])
	assert.NotContains(t, got, "interval_unavailable")
}

func TestRenderDispatch(t *testing.T) {
	s := demoSummary(t)
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, s, Options{Format: format}))
			assert.NotEmpty(t, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), textHeader), "empty format renders text")
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, demoSummary(t), Options{Format: "pdf"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "format=pdf")
	assert.Empty(t, buf.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "12,345", formatCount(12345))
	assert.Equal(t, "7", formatCount(7))
	assert.Equal(t, "2.5", formatValue(2.5))
	assert.Equal(t, "0.07", formatFixed(2.0/30, 2))
	assert.Equal(t, "[1, 2.25]", formatValues([]float64{1, 2.25}))
	assert.Equal(t, "90%", formatConfidence(0.9))
	assert.Equal(t, "95%", formatConfidence(0.95))
	assert.Equal(t, "99.9%", formatConfidence(0.999))
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}

func TestInterpretSkewness(t *testing.T) {
	tests := []struct {
		coef float64
		want string
	}{
		{0, "symmetric"},
		{0.1, "symmetric"},
		{-0.1, "symmetric"},
		{0.5, "moderately right-skewed"},
		{1.2, "strongly right-skewed"},
		{-0.5, "moderately left-skewed"},
		{-1, "strongly left-skewed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InterpretSkewness(tt.coef), "coef=%v", tt.coef)
	}
}

func TestInterpretVariation(t *testing.T) {
	assert.Equal(t, "low dispersion (10% <= 15%)", InterpretVariation(10))
	assert.Equal(t, "medium dispersion (15-30%, 20%)", InterpretVariation(20))
	assert.Equal(t, "high dispersion (48% > 30%)", InterpretVariation(48))
	assert.Equal(t, "high dispersion (48% > 30%)", InterpretVariation(-48))
}

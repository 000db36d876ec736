package reporting

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/statkit-dev/statkit/internal/statistics"
)

const (
	labelWidth = 20
	textHeader = "========================= Summary ======================"
	textFooter = "========================================================"
)

// RenderText writes the fixed-width summary block.
func RenderText(w io.Writer, s *Summary, opts Options) error {
	opts = opts.withDefaults()
	p := opts.Precision

	var b strings.Builder
	b.WriteString(textHeader + "\n")
	if s.Title != "" {
		b.WriteString(s.Title + "\n")
	}
	line := func(label, value string) {
		b.WriteString(padRight(label, labelWidth) + value + "\n")
	}

	line("Sample", formatValues(s.Sample))
	line("N", formatCount(s.N))
	line("Min", formatValue(s.Min))
	line("Mean", formatFixed(s.Mean, p))
	line("Variance", formatFixed(s.Variance, p))
	line("Std deviation", formatFixed(s.StdDev, p))
	line("Median", formatValue(s.Median))
	line("Max", formatValue(s.Max))
	line("Mode", formatValue(s.Mode))
	if s.Skewness != nil {
		line("Skewness", fmt.Sprintf("%s (%s)", formatFixed(*s.Skewness, p), InterpretSkewness(*s.Skewness)))
	}
	if s.Variation != nil {
		line("Variation", fmt.Sprintf("%s%% (%s)", formatFixed(*s.Variation, p), InterpretVariation(*s.Variation)))
	}
	line("Frequency", formatList(s.Frequency, statistics.FrequencyItem.String))
	line("PDF", formatFixedValues(s.PDF, p))
	line("CDF", formatFixedValues(s.CDF, p))
	line("Quartiles", formatValues(s.Quartiles))

	b.WriteString("Histogram\n")
	b.WriteString(Histogram(s.Frequency, opts.Glyph))
	b.WriteString(intervalLine(s, p) + "\n")
	b.WriteString(textFooter + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func intervalLine(s *Summary, precision int) string {
	if s.Interval == nil {
		return fmt.Sprintf("IC(%s)=unavailable: %s", formatConfidence(s.Confidence), s.IntervalUnavailable)
	}
	return fmt.Sprintf("IC(%s)=[%s, %s]", formatConfidence(s.Confidence),
		formatFixed(s.Interval.Lower, precision), formatFixed(s.Interval.Upper, precision))
}

func formatConfidence(level float64) string {
	return formatValue(math.Round(level*10000)/100) + "%"
}

package reporting

import (
	"fmt"
	"strings"

	"github.com/statkit-dev/statkit/internal/statistics"
)

// Histogram draws one line per distinct value: the value right-aligned in five
// columns, then one glyph per observation.
func Histogram(freq []statistics.FrequencyItem, glyph string) string {
	if glyph == "" {
		glyph = DefaultGlyph
	}
	var b strings.Builder
	for _, item := range freq {
		fmt.Fprintf(&b, "%5s  %s\n", formatValue(item.Value), strings.Repeat(glyph, item.Count))
	}
	return b.String()
}

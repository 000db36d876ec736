package reporting

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatList[T any](items []T, format func(T) string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = format(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValues(values []float64) string {
	return formatList(values, formatValue)
}

func formatFixedValues(values []float64, precision int) string {
	return formatList(values, func(v float64) string { return formatFixed(v, precision) })
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

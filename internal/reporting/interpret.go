package reporting

import (
	"fmt"
	"math"
)

// InterpretSkewness returns a plain-language label for Pearson's first
// skewness coefficient.
func InterpretSkewness(coef float64) string {
	switch {
	case math.Abs(coef) < 0.15:
		return "symmetric"
	case coef >= 1:
		return "strongly right-skewed"
	case coef > 0:
		return "moderately right-skewed"
	case coef <= -1:
		return "strongly left-skewed"
	default:
		return "moderately left-skewed"
	}
}

// InterpretVariation labels a coefficient of variation given in percent.
func InterpretVariation(cv float64) string {
	pct := math.Abs(cv)
	switch {
	case pct <= 15:
		return fmt.Sprintf("low dispersion (%.0f%% <= 15%%)", pct)
	case pct <= 30:
		return fmt.Sprintf("medium dispersion (15-30%%, %.0f%%)", pct)
	default:
		return fmt.Sprintf("high dispersion (%.0f%% > 30%%)", pct)
	}
}

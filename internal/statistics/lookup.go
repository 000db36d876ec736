package statistics

import "github.com/statkit-dev/statkit/internal/critical"

//go:generate go tool mockgen -source=lookup.go -destination=lookup_mock_test.go -package=statistics

// CriticalValueLookup supplies critical values for ConfidenceInterval.
// *critical.Service implements it.
type CriticalValueLookup interface {
	// Lookup returns the critical value for dist at df degrees of freedom and
	// the 3-decimal alpha label produced by critical.FormatAlpha.
	Lookup(dist critical.Distribution, df int, alpha string) (float64, error)
}

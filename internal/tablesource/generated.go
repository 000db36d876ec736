package tablesource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/statkit-dev/statkit/internal/critical"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultMaxDF is the row count of a generated table when none is configured.
const DefaultMaxDF = 30

// DefaultLabels are the two-tailed significance levels of the bundled table.
var DefaultLabels = []string{"0.500", "0.400", "0.300", "0.250", "0.200", "0.150", "0.100", "0.050", "0.025", "0.020", "0.010", "0.005", "0.001"}

// Generated renders a two-tailed Student-t table from the distribution's
// quantile function instead of reading one.
type Generated struct {
	MaxDF  int
	Labels []string
}

func (g Generated) Open(context.Context) (io.ReadCloser, error) {
	maxDF := g.MaxDF
	if maxDF <= 0 {
		maxDF = DefaultMaxDF
	}
	labels := g.Labels
	if len(labels) == 0 {
		labels = DefaultLabels
	}

	alphas := make([]float64, len(labels))
	for i, l := range labels {
		a, err := strconv.ParseFloat(l, 64)
		if err != nil || a <= 0 || a >= 1 {
			return nil, fmt.Errorf("generated table: invalid significance level %q", l)
		}
		alphas[i] = a
	}

	delim := string(critical.DefaultDelimiter)
	var buf bytes.Buffer
	buf.WriteString(strings.Join(labels, delim))
	buf.WriteByte('\n')
	cells := make([]string, len(alphas))
	for df := 1; df <= maxDF; df++ {
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
		for i, a := range alphas {
			cells[i] = strconv.FormatFloat(dist.Quantile(1-a/2), 'f', 4, 64)
		}
		buf.WriteString(strings.Join(cells, delim))
		buf.WriteByte('\n')
	}
	return io.NopCloser(&buf), nil
}

func (g Generated) String() string { return LocationGenerated }

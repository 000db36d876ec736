package critical

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/statkit-dev/statkit/internal/errs"
)

// DefaultDelimiter separates cells in critical-value table files.
const DefaultDelimiter = ';'

// Table is an immutable matrix of critical values. Rows are degrees of
// freedom starting at 1, columns are significance-level labels.
type Table struct {
	labels []string
	rows   [][]float64
}

// ParseTable reads a delimited table whose first record holds the column
// labels and whose following records hold one row per degree of freedom.
// Lines starting with '#' are ignored.
func ParseTable(r io.Reader, delim rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: parse: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table: empty (no header row)")
	}

	labels := make([]string, len(records[0]))
	seen := make(map[string]bool, len(labels))
	for i, h := range records[0] {
		label := strings.TrimSpace(h)
		if label == "" {
			return nil, fmt.Errorf("table: column %d has an empty label", i+1)
		}
		if seen[label] {
			return nil, fmt.Errorf("table: duplicate column label %q", label)
		}
		seen[label] = true
		labels[i] = label
	}

	rows := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(labels) {
			return nil, fmt.Errorf("table: row %d has %d columns, expected %d", i+1, len(record), len(labels))
		}
		row := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("table: row %d column %q: %w", i+1, labels[j], err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return &Table{labels: labels, rows: rows}, nil
}

// Value returns the cell for df and the exact column label.
func (t *Table) Value(df int, label string) (float64, error) {
	col := t.column(label)
	if col < 0 || df < 1 || df > len(t.rows) {
		return 0, errs.New("critical value", errs.ErrInvalidArgument, "df", df, "alpha", label)
	}
	return t.rows[df-1][col], nil
}

// Labels returns the column labels in file order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// MaxDF is the largest degree of freedom the table holds.
func (t *Table) MaxDF() int {
	return len(t.rows)
}

// Row returns a copy of the values stored for df, or nil when df is out of range.
func (t *Table) Row(df int) []float64 {
	if df < 1 || df > len(t.rows) {
		return nil
	}
	out := make([]float64, len(t.rows[df-1]))
	copy(out, t.rows[df-1])
	return out
}

func (t *Table) column(label string) int {
	for i, l := range t.labels {
		if l == label {
			return i
		}
	}
	return -1
}

// FormatAlpha renders a significance level as a table column label.
func FormatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', 3, 64)
}

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/statkit-dev/statkit/internal/errs"
)

// Row represents a single CSV row with column name to value mapping.
type Row map[string]string

// LoadCSV reads a CSV file and returns rows as maps of column to value.
// The first row is treated as headers (column names).
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	rows, _, err := readCSV(f, path)
	return rows, err
}

func readCSV(r io.Reader, name string) ([]Row, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: parse %s: %w", name, err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv: %s is empty (no header row)", name)
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = record[j]
		}
		rows = append(rows, row)
	}

	return rows, headers, nil
}

// LoadColumn reads one numeric column from a CSV file. column is a header
// name or a 1-based column number. Blank cells are skipped.
func LoadColumn(path, column string) ([]float64, error) {
	return LoadColumnRange(path, column, 1, 0)
}

// LoadColumnRange is LoadColumn restricted to data rows [start, end]
// (1-based, inclusive). An end of 0 means the last row; an end past the
// last row is clamped.
func LoadColumnRange(path, column string, start, end int) ([]float64, error) {
	if start < 1 {
		return nil, errs.New("load column", errs.ErrInvalidArgument, "start", start)
	}
	if end != 0 && end < start {
		return nil, errs.New("load column", errs.ErrInvalidArgument, "start", start, "end", end)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	rows, headers, err := readCSV(f, path)
	if err != nil {
		return nil, err
	}
	name, err := resolveColumn(headers, column)
	if err != nil {
		return nil, err
	}

	if end == 0 || end > len(rows) {
		end = len(rows)
	}
	if start > len(rows) {
		return []float64{}, nil
	}

	values := make([]float64, 0, end-start+1)
	for i := start - 1; i < end; i++ {
		cell := strings.TrimSpace(rows[i][name])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errs.Wrap("load column", errs.ErrInvalidArgument, err, "path", path, "row", i+2, "column", name)
		}
		values = append(values, v)
	}
	return values, nil
}

func resolveColumn(headers []string, column string) (string, error) {
	for _, h := range headers {
		if h == column {
			return h, nil
		}
	}
	if idx, err := strconv.Atoi(column); err == nil && idx >= 1 && idx <= len(headers) {
		return headers[idx-1], nil
	}
	return "", errs.New("load column", errs.ErrInvalidArgument, "column", column, "headers", strings.Join(headers, ","))
}

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/statkit-dev/statkit/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const measurementsCSV = "station,temp,rain\nnorth,12.5,0\nsouth,17,3.2\neast,,1.1\nwest,9.25,0.4\n"

func TestLoadCSV(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		wantRows int
		wantCols int
		wantErr  string
	}{
		{
			name:     "happy path 4 rows 3 columns",
			csv:      measurementsCSV,
			wantRows: 4,
			wantCols: 3,
		},
		{
			name:     "headers only",
			csv:      "station,temp\n",
			wantRows: 0,
		},
		{
			name:    "empty file",
			csv:     "",
			wantErr: "no header row",
		},
		{
			name:    "mismatched column count",
			csv:     "station,temp\nnorth,1\nsouth\n",
			wantErr: "wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, t.TempDir(), "test.csv", tt.csv)

			rows, err := LoadCSV(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
			if tt.wantRows > 0 {
				assert.Len(t, rows[0], tt.wantCols)
			}
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV("/nonexistent/path/data.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv: open")
}

func TestLoadColumn(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "m.csv", measurementsCSV)

	tests := []struct {
		column string
		want   []float64
	}{
		{"temp", []float64{12.5, 17, 9.25}},
		{"rain", []float64{0, 3.2, 1.1, 0.4}},
		{"2", []float64{12.5, 17, 9.25}},
		{"3", []float64{0, 3.2, 1.1, 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, err := LoadColumn(path, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadColumnErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "m.csv", measurementsCSV)

	_, err := LoadColumn(path, "humidity")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "column=humidity")

	_, err = LoadColumn(path, "9")
	require.Error(t, err)

	_, err = LoadColumn(path, "station")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "row=2")
	assert.Contains(t, err.Error(), "column=station")
}

func TestLoadColumnRange(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "m.csv", measurementsCSV)

	tests := []struct {
		name       string
		start, end int
		want       []float64
		wantErr    bool
	}{
		{name: "rows 2-3", start: 2, end: 3, want: []float64{3.2, 1.1}},
		{name: "single row", start: 1, end: 1, want: []float64{0}},
		{name: "end clamps", start: 3, end: 100, want: []float64{1.1, 0.4}},
		{name: "open end", start: 4, end: 0, want: []float64{0.4}},
		{name: "start beyond rows", start: 9, end: 10, want: []float64{}},
		{name: "start below 1", start: 0, end: 1, wantErr: true},
		{name: "end before start", start: 3, end: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadColumnRange(path, "rain", tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

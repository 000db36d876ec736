// Package dataset loads samples: numbers from text, CSV columns, standard
// input and postgres queries.
package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/statkit-dev/statkit/internal/errs"
)

// Stdin is the path that reads a sample from standard input.
const Stdin = "-"

// ParseValues splits s on whitespace, commas and semicolons and parses every
// field as a number.
func ParseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	values := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errs.Wrap("parse values", errs.ErrInvalidArgument, err, "field", i+1, "value", f)
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadValues reads r to the end and parses it with ParseValues. Lines
// starting with # are ignored.
func ReadValues(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading sample: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return ParseValues(strings.Join(kept, "\n"))
}

// LoadFile reads a sample from path. With a column it is read as CSV,
// otherwise as plain numbers. Stdin reads standard input.
func LoadFile(path, column string, stdin io.Reader) ([]float64, error) {
	if column != "" {
		if path == Stdin {
			return nil, errs.New("load sample", errs.ErrInvalidArgument, "path", path, "column", column)
		}
		return LoadColumn(path, column)
	}
	if path == Stdin {
		return ReadValues(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sample %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	values, err := ReadValues(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

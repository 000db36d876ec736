package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// DSNFromEnv returns STATKIT_PG_DSN, falling back to DATABASE_URL.
func DSNFromEnv() (string, error) {
	if dsn := os.Getenv("STATKIT_PG_DSN"); dsn != "" {
		return dsn, nil
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}
	return "", errors.New("STATKIT_PG_DSN not set; set it or DATABASE_URL")
}

// QueryValues runs query against a postgres database and returns the first
// column of every row. NULLs are skipped.
func QueryValues(ctx context.Context, dsn, query string, args ...any) ([]float64, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	defer db.Close() //nolint:errcheck

	return queryValues(ctx, db, query, args...)
}

func queryValues(ctx context.Context, db *sql.DB, query string, args ...any) ([]float64, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("postgres: columns: %w", err)
	}
	if len(cols) == 0 {
		return nil, errors.New("postgres: query returned no columns")
	}

	var v sql.NullFloat64
	dest := make([]any, len(cols))
	dest[0] = &v
	for i := 1; i < len(dest); i++ {
		dest[i] = new(sql.RawBytes)
	}

	var values []float64
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("postgres: scan row %d: %w", len(values)+1, err)
		}
		if v.Valid {
			values = append(values, v.Float64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: rows: %w", err)
	}
	return values, nil
}

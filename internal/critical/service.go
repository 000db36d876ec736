// Package critical provides critical values for confidence intervals, backed
// by a table that is loaded at most once from a Source.
package critical

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/statkit-dev/statkit/internal/errs"
)

// Distribution selects which family of critical values is requested.
type Distribution int

const (
	StudentT Distribution = iota
	Normal
)

func (d Distribution) String() string {
	switch d {
	case StudentT:
		return "student-t"
	case Normal:
		return "normal"
	default:
		return fmt.Sprintf("distribution(%d)", int(d))
	}
}

// Source yields the raw bytes of a critical-value table.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// Service answers critical-value lookups from a lazily loaded table.
// The table is read once; a failed load is remembered and there is no reload.
type Service struct {
	source Source
	delim  rune
	logger *slog.Logger

	once  sync.Once
	table *Table
	err   error
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithDelimiter overrides DefaultDelimiter.
func WithDelimiter(delim rune) ServiceOption {
	return func(s *Service) {
		s.delim = delim
	}
}

// WithLogger sets the logger used to report the table load.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service reading from src. Nothing is read until Load
// or the first Lookup.
func NewService(src Source, opts ...ServiceOption) *Service {
	s := &Service{
		source: src,
		delim:  DefaultDelimiter,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and parses the table if it has not been attempted yet.
func (s *Service) Load(ctx context.Context) error {
	s.once.Do(func() {
		s.table, s.err = s.load(ctx)
	})
	return s.err
}

func (s *Service) load(ctx context.Context) (*Table, error) {
	if s.source == nil {
		return nil, errs.New("load table", errs.ErrResourceUnavailable, "source", "none")
	}

	rc, err := s.source.Open(ctx)
	if err != nil {
		s.logger.Error("critical-value table unavailable", "source", s.source.String(), "error", err)
		return nil, errs.Wrap("load table", errs.ErrResourceUnavailable, err, "source", s.source.String())
	}
	defer rc.Close() //nolint:errcheck

	t, err := ParseTable(rc, s.delim)
	if err != nil {
		s.logger.Error("critical-value table malformed", "source", s.source.String(), "error", err)
		return nil, errs.Wrap("load table", errs.ErrResourceUnavailable, err, "source", s.source.String())
	}

	s.logger.Debug("critical-value table loaded", "source", s.source.String(), "columns", len(t.labels), "max_df", t.MaxDF())
	return t, nil
}

// Table returns the loaded table, loading it first if needed.
func (s *Service) Table(ctx context.Context) (*Table, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s.table, nil
}

// Lookup returns the critical value for dist at df degrees of freedom and the
// given alpha label (see FormatAlpha).
func (s *Service) Lookup(dist Distribution, df int, alpha string) (float64, error) {
	switch dist {
	case StudentT:
	case Normal:
		return 0, errs.New("critical value", errs.ErrNotImplemented, "distribution", dist, "df", df, "alpha", alpha)
	default:
		return 0, errs.New("critical value", errs.ErrInvalidArgument, "distribution", dist)
	}

	t, err := s.Table(context.Background())
	if err != nil {
		return 0, err
	}
	return t.Value(df, alpha)
}

// Package errs defines the failure kinds shared by the statistics engine, the
// critical-value lookup and the CLI.
package errs

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Failure kinds. Every error produced by the engine wraps exactly one of these.
var (
	ErrInvalidArgument      = errors.New("argument not acceptable")
	ErrNotImplemented       = errors.New("not implemented")
	ErrResourceUnavailable  = errors.New("resource unavailable")
	ErrUndefinedComputation = errors.New("undefined computation")
)

// OpError records which operation failed, with which inputs, and why.
type OpError struct {
	Op     string
	Kind   error
	Params []any // alternating key/value pairs
	Err    error
}

// New returns an *OpError without an underlying cause.
func New(op string, kind error, params ...any) error {
	return &OpError{Op: op, Kind: kind, Params: params}
}

// Wrap returns an *OpError that keeps cause reachable through errors.Is/As.
func Wrap(op string, kind, cause error, params ...any) error {
	return &OpError{Op: op, Kind: kind, Params: params, Err: cause}
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString("(")
	b.WriteString(formatParams(e.Params))
	b.WriteString("): ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// LogValue renders the error as a slog group.
func (e *OpError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("op", e.Op),
		slog.String("kind", e.Kind.Error()),
	}
	for i := 0; i+1 < len(e.Params); i += 2 {
		attrs = append(attrs, slog.Any(fmt.Sprint(e.Params[i]), e.Params[i+1]))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the environment.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrUndefinedComputation)
}

func formatParams(params []any) string {
	parts := make([]string, 0, (len(params)+1)/2)
	for i := 0; i < len(params); i += 2 {
		if i+1 == len(params) {
			parts = append(parts, fmt.Sprint(params[i]))
			break
		}
		parts = append(parts, fmt.Sprintf("%v=%v", params[i], params[i+1]))
	}
	return strings.Join(parts, ", ")
}

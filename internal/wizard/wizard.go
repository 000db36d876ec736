// Package wizard collects a sample interactively.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/statkit-dev/statkit/internal/dataset"
	"github.com/statkit-dev/statkit/internal/reporting"
	"golang.org/x/term"
)

// SampleSpec holds everything collected by the sample wizard.
type SampleSpec struct {
	Title      string
	Values     []float64
	Confidence float64
	Format     string
}

// fields are the raw strings bound to the form inputs.
type fields struct {
	title      string
	values     string
	confidence string
	format     string
}

// RunSampleWizard runs an interactive huh form that asks for a sample and
// how to report it. Non-zero fields of defaults pre-populate the form.
func RunSampleWizard(in io.Reader, out io.Writer, defaults SampleSpec) (*SampleSpec, error) {
	f := fields{
		title:      defaults.Title,
		values:     joinValues(defaults.Values),
		confidence: "0.90",
		format:     reporting.FormatText,
	}
	if defaults.Confidence != 0 {
		f.confidence = strconv.FormatFloat(defaults.Confidence, 'f', -1, 64)
	}
	if defaults.Format != "" {
		f.format = defaults.Format
	}

	formatOptions := make([]huh.Option[string], len(reporting.Formats))
	for i, name := range reporting.Formats {
		formatOptions[i] = huh.NewOption(name, name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Optional heading for the report").
				Placeholder("exam scores").
				Value(&f.title),
			huh.NewText().
				Title("Values").
				Description("Numbers separated by spaces, commas or semicolons").
				Placeholder("10 16 47 48 74").
				Value(&f.values).
				Validate(validateValues),
			huh.NewInput().
				Title("Confidence level").
				Description("Between 0 and 1, exclusive").
				Value(&f.confidence).
				Validate(func(s string) error {
					_, err := parseConfidence(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Report format").
				Options(formatOptions...).
				Value(&f.format),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if !IsInteractive(in) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	return f.spec()
}

// IsInteractive reports whether r is a terminal.
func IsInteractive(r io.Reader) bool {
	file, ok := r.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func (f fields) spec() (*SampleSpec, error) {
	values, err := dataset.ParseValues(f.values)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New("at least one value is required")
	}
	confidence, err := parseConfidence(f.confidence)
	if err != nil {
		return nil, err
	}
	return &SampleSpec{
		Title:      strings.TrimSpace(f.title),
		Values:     values,
		Confidence: confidence,
		Format:     f.format,
	}, nil
}

func validateValues(s string) error {
	values, err := dataset.ParseValues(s)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return errors.New("at least one value is required")
	}
	return nil
}

func parseConfidence(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("confidence level %q is not a number", s)
	}
	if !(v > 0 && v < 1) {
		return 0, fmt.Errorf("confidence level must be between 0 and 1, got %v", v)
	}
	return v, nil
}

func joinValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

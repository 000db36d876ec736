package reporting

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderMarkdown writes the summary as GitHub-flavoured markdown tables.
func RenderMarkdown(w io.Writer, s *Summary, opts Options) error {
	opts = opts.withDefaults()
	p := opts.Precision

	var b strings.Builder
	title := s.Title
	if title == "" {
		title = "Summary"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("| Statistic | Value |\n|---|---:|\n")
	row := func(label, value string) {
		fmt.Fprintf(&b, "| %s | %s |\n", label, value)
	}
	row("N", formatCount(s.N))
	row("Min", formatValue(s.Min))
	row("Mean", formatFixed(s.Mean, p))
	row("Variance", formatFixed(s.Variance, p))
	row("Std deviation", formatFixed(s.StdDev, p))
	row("Median", formatValue(s.Median))
	row("Max", formatValue(s.Max))
	row("Mode", formatValue(s.Mode))
	if s.Skewness != nil {
		row("Skewness", formatFixed(*s.Skewness, p)+" ("+InterpretSkewness(*s.Skewness)+")")
	}
	if s.Variation != nil {
		row("Variation", formatFixed(*s.Variation, p)+"% ("+InterpretVariation(*s.Variation)+")")
	}
	row("Quartiles", formatValues(s.Quartiles))

	b.WriteString("\n## Frequency\n\n| Value | Count | PDF | CDF |\n|---:|---:|---:|---:|\n")
	for i, item := range s.Frequency {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", formatValue(item.Value), formatCount(item.Count),
			formatFixed(s.PDF[i], p), formatFixed(s.CDF[i], p))
	}

	b.WriteString("\n## Histogram\n\n```\n")
	b.WriteString(Histogram(s.Frequency, opts.Glyph))
	b.WriteString("```\n")

	fmt.Fprintf(&b, "\n## Confidence interval\n\n%s\n", intervalLine(s, p))

	_, err := io.WriteString(w, b.String())
	return err
}

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderHTML renders the markdown report to an HTML fragment.
func RenderHTML(w io.Writer, s *Summary, opts Options) error {
	var md bytes.Buffer
	if err := RenderMarkdown(&md, s, opts); err != nil {
		return err
	}
	if err := markdownToHTML.Convert(md.Bytes(), w); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

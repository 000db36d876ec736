package reporting

import (
	"encoding/json"
	"io"

	"github.com/statkit-dev/statkit/internal/errs"
)

// RenderJSON writes the summary as indented JSON.
func RenderJSON(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Render writes s in opts.Format.
func Render(w io.Writer, s *Summary, opts Options) error {
	opts = opts.withDefaults()
	switch opts.Format {
	case FormatText:
		return RenderText(w, s, opts)
	case FormatMarkdown:
		return RenderMarkdown(w, s, opts)
	case FormatHTML:
		return RenderHTML(w, s, opts)
	case FormatJSON:
		return RenderJSON(w, s)
	default:
		return errs.New("render", errs.ErrInvalidArgument, "format", opts.Format)
	}
}

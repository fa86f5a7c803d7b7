package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/palettex/internal/analysis"
	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/termcolor"
)

// Options controls table rendering. Other formats ignore it.
type Options struct {
	Color   bool
	Profile termcolor.Profile
	Title   string
	// Width bounds the title line; 0 means 80.
	Width int
}

func Headers() []string {
	headers := []string{"HEX", "LUMINANCE", "CONTRAST", "LEVEL", "TEXT"}
	for _, d := range colorutil.Deficiencies() {
		headers = append(headers, strings.ToUpper(string(d)))
	}
	return headers
}

func RowValues(e analysis.Entry) []string {
	row := []string{
		e.Hex,
		fmt.Sprintf("%.4f", e.Luminance),
		fmt.Sprintf("%.2f", e.Contrast),
		string(e.Level),
		e.TextColor,
	}
	for _, d := range colorutil.Deficiencies() {
		row = append(row, e.Simulations[d])
	}
	return row
}

// Write dispatches on a canonical format name (see config.CanonicalizeOutput).
func Write(w io.Writer, format string, report analysis.Report, opts Options) error {
	switch format {
	case "", "table":
		return WriteTable(w, report, opts)
	case "json":
		return WriteJSON(w, report)
	case "ndjson":
		return WriteNDJSON(w, report.Entries)
	case "csv":
		return WriteCSV(w, report.Entries)
	case "markdown":
		return WriteMarkdownTable(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/palettex/internal/analysis"
)

// WriteMarkdownTable renders a GitHub Flavored Markdown table followed by a
// list of CVD collisions, if any.
func WriteMarkdownTable(w io.Writer, report analysis.Report) error {
	headers := Headers()
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, e := range report.Entries {
		row := RowValues(e)
		for i := range row {
			row[i] = escapeMarkdownCell(row[i])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	if len(report.Collisions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nHard to distinguish:\n\n"); err != nil {
		return err
	}
	for _, c := range report.Collisions {
		if _, err := fmt.Fprintf(w, "- %s: %s / %s (ΔE %.1f)\n", c.Deficiency, c.A, c.B, c.DeltaE); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return strings.ReplaceAll(s, "|", "\\|")
}

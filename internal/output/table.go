package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/palettex/internal/analysis"
	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/termcolor"
	"github.com/phyten/palettex/internal/textutil"
)

const swatchWidth = 6

// WriteTable renders an aligned, optionally colored table. Column widths are
// measured in terminal cells so CJK titles and SGR codes do not skew them.
func WriteTable(w io.Writer, report analysis.Report, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	if title := strings.TrimSpace(opts.Title); title != "" {
		line := termcolor.Apply(termcolor.Style{Bold: true}, textutil.TruncateByWidth(title, width, "…"), opts.Color)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	headers := append([]string{""}, Headers()...)
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		values := RowValues(e)
		row := make([]string, 0, len(values)+1)
		row = append(row, swatch(e.Hex, opts))
		for i, v := range values {
			switch {
			case i == 3:
				v = termcolor.Apply(termcolor.LevelStyle(e.Level), v, opts.Color)
			case i >= 5 && opts.Color:
				v = swatch(v, opts) + " " + v
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := textutil.VisibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	header := make([]string, len(headers))
	for i, h := range headers {
		header[i] = textutil.PadRight(termcolor.Apply(termcolor.HeaderStyle(), h, opts.Color), widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(header, "  "), " ")); err != nil {
		return err
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == 2 || i == 3 {
				cells[i] = textutil.PadLeft(cell, widths[i])
			} else {
				cells[i] = textutil.PadRight(cell, widths[i])
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}

	if len(report.Collisions) > 0 {
		if _, err := fmt.Fprintf(w, "\nhard to distinguish (ΔE < %.0f):\n", analysis.CollisionThreshold); err != nil {
			return err
		}
		for _, c := range report.Collisions {
			if _, err := fmt.Fprintf(w, "  %-13s %s %s  ΔE %.1f\n", c.Deficiency, c.A, c.B, c.DeltaE); err != nil {
				return err
			}
		}
	}
	return nil
}

// swatch is a colored block when colors are on and blank padding otherwise,
// so the column keeps its width either way.
func swatch(hex string, opts Options) string {
	blank := strings.Repeat(" ", swatchWidth)
	if !opts.Color {
		return blank
	}
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return blank
	}
	return termcolor.Apply(termcolor.Swatch(c, opts.Profile), blank, true)
}

package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/palettex/internal/analysis"
)

// WriteCSV renders entries as RFC 4180 CSV with CRLF line endings.
func WriteCSV(w io.Writer, entries []analysis.Entry) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers()); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writer.Write(RowValues(e)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

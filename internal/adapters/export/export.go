package export

import (
	"fmt"
	"io"

	"github.com/andrescamacho/x4empire/internal/domain/analysis"
	"github.com/andrescamacho/x4empire/internal/domain/empire"
)

// Format selects a report writer.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a format name from user input.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV, FormatJSON, FormatText:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or text)", name)
}

// Write renders the analysis report in the given format.
func Write(w io.Writer, format Format, snap *empire.Snapshot, report *analysis.Report) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, report)
	case FormatJSON:
		return writeJSON(w, snap, report)
	case FormatText:
		return writeText(w, snap, report)
	}
	return fmt.Errorf("unknown export format %q", format)
}

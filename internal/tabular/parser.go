// Package tabular parses the comma-delimited text a published spreadsheet
// exports into field-keyed records.
package tabular

import (
	"strings"

	"github.com/tkoide/supplywatch/internal/domain"
)

const delimiter = ","

// Parse converts a raw delimited export into records. The first line is the
// header and defines the key set and column order of every record. Rows with
// fewer columns than the header are padded with empty strings; extra columns
// are dropped. Fewer than two non-blank lines yields an empty slice.
//
// Values are split on the bare delimiter: quoted fields are not supported, so
// a comma inside a value will shift the remaining columns. That is a known
// limitation of the export format, not something this parser tries to repair.
func Parse(raw string) []domain.Record {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	header := splitFields(lines[0])

	records := make([]domain.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		tokens := splitFields(line)
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(tokens) {
				fields[col] = tokens[i]
			} else {
				fields[col] = ""
			}
		}
		records = append(records, domain.Record{Columns: header, Fields: fields})
	}
	return records
}

func splitFields(line string) []string {
	parts := strings.Split(line, delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

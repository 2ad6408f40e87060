package formatters

import (
	"strings"

	"f0oster/adconvert/activedirectory"
)

const (
	lineBreak   = "\n"
	recordBreak = "\n\n"
)

// FormatRecord renders one record as "key: value" lines in the record's key order.
// A multi-valued attribute repeats its key once per value.
func FormatRecord(record *activedirectory.Record, filter AttributeFilter) string {
	if filter == nil {
		filter = All()
	}

	var lines []string
	for _, attr := range record.Attributes() {
		if !filter.Allows(attr.Name) {
			continue
		}
		for _, value := range attr.Values {
			lines = append(lines, attr.Name+": "+value)
		}
	}
	return strings.Join(lines, lineBreak)
}

// FormatRecords renders records separated by a blank line. Records left empty by
// the filter are omitted.
func FormatRecords(records []*activedirectory.Record, filter AttributeFilter) string {
	blocks := make([]string, 0, len(records))
	for _, record := range records {
		block := FormatRecord(record, filter)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, recordBreak)
}

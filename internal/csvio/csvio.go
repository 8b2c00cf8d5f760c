// Package csvio implements the restricted CSV dialect used by the import and
// export endpoints.
//
// The grammar is intentionally narrower than RFC 4180: a field is either an
// unquoted run of characters containing no comma and no quote, or a
// double-quote-delimited run (possibly empty). Escaped quotes ("") and
// newlines inside quoted fields are NOT supported. Do not widen the grammar:
// row counting and duplicate detection downstream depend on this exact
// line-splitting boundary.
package csvio

import (
	"fmt"
	"regexp"
	"strings"
)

// fieldPattern matches one cell left-to-right: unquoted runs or quoted
// segments, concatenations allowed. Unmatched trailing gaps yield "".
var fieldPattern = regexp.MustCompile(`([^,"]+|"[^"]*")+`)

// Header is the fixed column order shared by import and export.
var Header = []string{"name", "unit", "category", "brand", "stock", "status", "image"}

// Document is a parsed import file: ordered header names plus one cell map
// per non-blank data row.
type Document struct {
	Headers []string
	Rows    []map[string]string
}

// Parse splits raw CSV text into a Document. Blank lines (including a final
// trailing newline) are discarded. Rows shorter than the header list map the
// missing columns to ""; extra cells are dropped.
func Parse(raw string) Document {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Document{}
	}

	headers := make([]string, 0, len(Header))
	for _, h := range strings.Split(lines[0], ",") {
		headers = append(headers, clean(h))
	}

	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := fieldPattern.FindAllString(line, -1)
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = clean(values[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return Document{Headers: headers, Rows: rows}
}

// clean strips surrounding double quotes and leading/trailing whitespace.
// The outer TrimSpace also removes a \r left by CRLF line endings.
func clean(cell string) string {
	cell = strings.TrimSpace(cell)
	cell = strings.Trim(cell, `"`)
	return strings.TrimSpace(cell)
}

// Record is one export row, pre-serialization.
type Record struct {
	Name     string
	Unit     string
	Category string
	Brand    string
	Stock    int
	Status   string
	Image    string
}

// Serialize renders records in listing order: the fixed header line, then one
// line per record with every field quote-wrapped except the bare-integer
// stock. Embedded quotes are not escaped — a field containing a double quote
// produces malformed output (known limitation, mirrored by Parse).
func Serialize(records []Record) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf(`"%s","%s","%s","%s",%d,"%s","%s"`,
			r.Name, r.Unit, r.Category, r.Brand, r.Stock, r.Status, r.Image))
	}
	return strings.Join(Header, ",") + "\n" + strings.Join(lines, "\n")
}

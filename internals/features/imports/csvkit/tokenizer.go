// Package csvkit tokenizes uploaded spreadsheets into header-keyed rows.
//
// encoding/csv is deliberately not used here: the upload contract wants
// arity-mismatched rows dropped silently, residual wrapping quotes stripped
// after line splitting, and blank fields normalized to absent — all of which
// fight the stdlib reader's strictness.
package csvkit

import "strings"

// Row maps a header name to the field value. Blank fields are omitted
// entirely so validators can treat absent and empty alike.
type Row map[string]string

// Get returns the value and whether the field is present (non-blank).
func (r Row) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Tokenize converts raw text into ordered rows of fields. The first row is
// the header row. No arity filtering happens here.
func Tokenize(text string) [][]string {
	lines := splitLines(text)
	out := make([][]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, splitFields(line))
	}
	return out
}

// Parse tokenizes and maps each data row onto the header. Rows whose field
// count does not match the header are dropped without being counted.
// Degenerate input (no header or no data rows) yields an empty slice.
func Parse(text string) []Row {
	table := Tokenize(text)
	if len(table) < 2 {
		return nil
	}
	headers := table[0]

	rows := make([]Row, 0, len(table)-1)
	for _, fields := range table[1:] {
		if len(fields) != len(headers) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if v := fields[i]; v != "" {
				row[h] = v
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// splitFields walks one line character by character. Inside double quotes a
// comma is literal and a doubled quote escapes a quote. Outside quotes each
// field is trimmed, then any residual wrapping quotes are stripped.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

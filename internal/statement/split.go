package statement

import "strings"

const delimiter = ','

// splitLines breaks raw text into trimmed, non-blank lines.
func splitLines(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' })
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lines = append(lines, p)
	}
	return lines
}

// splitFields tokenizes one line on the delimiter. A double quote toggles
// quoted state and is dropped; doubled quotes are not un-escaped.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delimiter && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, cur.String())
}

// fieldAt returns fields[i], or "" when i is out of range or negative.
func fieldAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

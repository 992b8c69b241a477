package cuesheet

import (
	"strings"
	"unicode"
)

// tokenize splits a sheet line into fields: quote-aware when the line
// carries a double quote, otherwise a plain whitespace split capped at
// three fields so unquoted values keep their internal spaces.
func tokenize(line string) []string {
	if strings.Contains(line, `"`) {
		return splitQuoted(line)
	}
	return splitMax(line, 3)
}

func splitQuoted(line string) []string {
	var fields []string
	var field strings.Builder
	inQuote := false
	started := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case unicode.IsSpace(r) && !inQuote:
			if started {
				fields = append(fields, field.String())
				field.Reset()
				started = false
			}
		default:
			field.WriteRune(r)
			started = true
		}
	}
	if started {
		fields = append(fields, field.String())
	}
	return fields
}

func splitMax(line string, max int) []string {
	var fields []string
	rest := strings.TrimSpace(line)

	for len(fields) < max-1 {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			break
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}

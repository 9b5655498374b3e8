package parser

import (
	"strings"
	"unicode/utf8"
)

// unquotedFields formats text[start:end]: trailing commas are stripped, the
// rest is split on commas and a single leading empty field is dropped.
func unquotedFields(text string, start, end int) []Field {
	fields := splitFields(trimTrailingCommas(text[start:end]), start)
	if len(fields) > 0 && fields[0].Value == "" {
		fields = fields[1:]
	}
	return fields
}

// quotedField returns the content of a span without its quotes, with every
// "" collapsed to ".
func quotedField(text string, span Span) Field {
	return Field{
		Value:  strings.ReplaceAll(text[span.Start+1:span.End], `""`, `"`),
		Offset: span.Start + 1,
		Quoted: true,
	}
}

// splitFields splits s on every comma. base is the offset of s in its line.
func splitFields(s string, base int) []Field {
	parts := strings.Split(s, ",")
	fields := make([]Field, len(parts))
	offset := base
	for i, part := range parts {
		fields[i] = Field{Value: part, Offset: offset}
		offset += len(part) + 1
	}
	return fields
}

// trimTrailingCommas removes every run of commas that ends s or sits directly
// before a line terminator (CR, U+2028, U+2029).
func trimTrailingCommas(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != ',' {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == ',' {
			j++
		}
		if !atLineEnd(s[j:]) {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

func atLineEnd(rest string) bool {
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r == '\r' || r == '\u2028' || r == '\u2029'
}

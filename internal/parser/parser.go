// Package parser turns lexed lines into fields.
//
// A line without double quotes is split on every comma. A line with quotes is
// cut into alternating unquoted segments and quoted spans: unquoted segments
// lose their trailing commas and one leading empty field, quoted spans become
// exactly one field with "" collapsed to ".
package parser

import (
	"strings"

	"github.com/shapestone/shape-progcsv/internal/tokenizer"
)

// Field is one parsed field value.
type Field struct {
	// Value is the field content. Quoted fields are unescaped.
	Value string
	// Offset is the byte offset within the line where the field's content
	// starts. For a quoted field it points just past the opening quote.
	Offset int
	// Quoted reports whether the field came from a quote span.
	Quoted bool
}

// ParseLine parses one line into fields.
//
// Returns a *QuoteError if the line has an unmatched quote.
func ParseLine(line tokenizer.Line) ([]Field, error) {
	// Lines without quotes are split as-is, trailing commas included.
	if len(line.Quotes) == 0 {
		return splitFields(line.Text, 0), nil
	}

	spans, err := FindSpans(line.Quotes)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, 0, strings.Count(line.Text, ",")+1)
	start := 0
	for _, span := range spans {
		fields = append(fields, unquotedFields(line.Text, start, span.Start)...)
		fields = append(fields, quotedField(line.Text, span))
		start = span.End + 1
	}
	return append(fields, unquotedFields(line.Text, start, len(line.Text))...), nil
}

// Values returns the field values in order.
func Values(fields []Field) []string {
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = f.Value
	}
	return values
}

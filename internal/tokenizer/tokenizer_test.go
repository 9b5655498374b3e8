package tokenizer

import (
	"testing"
)

type tokenSpec struct {
	kind  string
	value string
}

func TestNewTokenizer_BasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenSpec
	}{
		{
			name:     "single comma",
			input:    ",",
			expected: []tokenSpec{{TokenComma, ","}},
		},
		{
			name:     "single text run",
			input:    "Keynote",
			expected: []tokenSpec{{TokenText, "Keynote"}},
		},
		{
			name:     "newline LF",
			input:    "\n",
			expected: []tokenSpec{{TokenNewline, "\n"}},
		},
		{
			name:  "CR is text",
			input: "a\r\n",
			expected: []tokenSpec{
				{TokenText, "a\r"},
				{TokenNewline, "\n"},
			},
		},
		{
			name:  "simple row",
			input: "a,b,c",
			expected: []tokenSpec{
				{TokenText, "a"},
				{TokenComma, ","},
				{TokenText, "b"},
				{TokenComma, ","},
				{TokenText, "c"},
			},
		},
		{
			name:  "escaped quote pair",
			input: `"x""y"`,
			expected: []tokenSpec{
				{TokenDQuote, `"`},
				{TokenText, "x"},
				{TokenDQuote, `"`},
				{TokenDQuote, `"`},
				{TokenText, "y"},
				{TokenDQuote, `"`},
			},
		},
		{
			name:  "text keeps spaces and unicode",
			input: " Café – 09:00 ",
			expected: []tokenSpec{
				{TokenText, " Café – 09:00 "},
			},
		},
		{
			name:  "trailing commas",
			input: "a,,",
			expected: []tokenSpec{
				{TokenText, "a"},
				{TokenComma, ","},
				{TokenComma, ","},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer()
			tok.Initialize(tt.input)

			for i, exp := range tt.expected {
				token, ok := tok.NextToken()
				if !ok {
					t.Fatalf("token %d: expected token, got none (expected %s: %q)", i, exp.kind, exp.value)
				}
				if token.Kind() != exp.kind {
					t.Errorf("token %d: expected kind %s, got %s (value: %q)", i, exp.kind, token.Kind(), token.ValueString())
				}
				if token.ValueString() != exp.value {
					t.Errorf("token %d: expected value %q, got %q (kind: %s)", i, exp.value, token.ValueString(), token.Kind())
				}
			}

			if token, ok := tok.NextToken(); ok {
				t.Errorf("expected no more tokens, got %s: %q", token.Kind(), token.ValueString())
			}
		})
	}
}

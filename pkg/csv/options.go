package csv

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"golang.org/x/text/transform"
)

// Options configures tokenization.
type Options struct {
	// NormalizeNewlines rewrites CRLF and lone CR line endings to LF before
	// tokenizing. When false, only LF ends a line and a CR before it stays
	// in the last field of the line.
	// Default: false
	NormalizeNewlines bool

	// OnRow, if set, is called for every row as it is produced, with the
	// 0-based line index.
	OnRow func(line int, row Row)
}

// DefaultOptions returns the default tokenizer configuration.
func DefaultOptions() Options {
	return Options{
		NormalizeNewlines: false,
	}
}

// TokenizeWithOptions tokenizes raw with custom options.
//
// Example:
//
//	opts := csv.DefaultOptions()
//	opts.NormalizeNewlines = true // Excel export with CRLF
//	table, err := csv.TokenizeWithOptions(text, opts)
func TokenizeWithOptions(raw string, opts Options) (Table, error) {
	raw, err := prepareString(raw, opts)
	if err != nil {
		return nil, err
	}
	return collect(newLineSource(raw), opts)
}

// TokenizeReaderWithOptions tokenizes everything read from reader with
// custom options.
func TokenizeReaderWithOptions(reader io.Reader, opts Options) (Table, error) {
	return collectScanner(NewScannerWithOptions(reader, opts))
}

// ParseWithOptions is Parse with custom options.
func ParseWithOptions(raw string, opts Options) (ast.SchemaNode, error) {
	raw, err := prepareString(raw, opts)
	if err != nil {
		return nil, err
	}
	return buildNode(newLineSource(raw), opts)
}

// ParseReaderWithOptions is ParseReader with custom options.
func ParseReaderWithOptions(reader io.Reader, opts Options) (ast.SchemaNode, error) {
	src := newReaderSource(reader, opts)
	node, err := buildNode(src.lines, opts)
	if err != nil {
		return nil, err
	}
	if src.err() != nil {
		return nil, src.err()
	}
	return node, nil
}

func prepareString(raw string, opts Options) (string, error) {
	if !opts.NormalizeNewlines {
		return raw, nil
	}
	out, _, err := transform.String(NewlineNormalizer(), raw)
	if err != nil {
		return "", fmt.Errorf("normalizing newlines: %w", err)
	}
	return out, nil
}

// Package csv tokenizes conference programme CSV files.
//
// The dialect is the one spreadsheet exports of the programme produce, not
// RFC 4180:
//
//   - Lines end at LF. Quoted fields cannot span lines.
//   - A field wrapped in double quotes may contain commas; "" inside it is a
//     literal quote.
//   - On a line that contains a quote, trailing commas are dropped, and so is
//     one empty field produced by a leading comma.
//   - A line with no quote at all is split on every comma, unchanged.
//
// Every input line yields exactly one Row, blank lines included. Filtering
// short rows and trimming whitespace is left to the consumer (see package
// programme).
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. Each call
// creates its own lexer and holds no shared state.
//
// # Example usage with Tokenize:
//
//	table, err := csv.Tokenize(`Opening,plenary session,"Smith, J.",09:00,09:30`)
//	if err != nil {
//	    // handle error
//	}
//	// table[0] is ["Opening", "plenary session", "Smith, J.", "09:00", "09:30"]
//
// # Example usage with TokenizeReader:
//
//	file, err := os.Open("programme.csv")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	table, err := csv.TokenizeReader(file)
package csv

import (
	"errors"
	"io"

	"github.com/shapestone/shape-progcsv/internal/parser"
	"github.com/shapestone/shape-progcsv/internal/tokenizer"
	"golang.org/x/text/transform"
)

// Tokenize splits raw CSV text into a Table.
//
// Returns a *MalformedQuotingError for the first line holding an unmatched
// double quote. No partial table is returned in that case.
//
// Example:
//
//	table, _ := csv.Tokenize("a,\"b,c\",d\n\"x\"\"y\"")
//	// table: [["a" "b,c" "d"] ["x\"y"]]
func Tokenize(raw string) (Table, error) {
	return TokenizeWithOptions(raw, DefaultOptions())
}

// TokenizeReader tokenizes everything read from reader.
//
// Input is read and lexed one line at a time, so it is never held in memory
// as a single string. Read errors other than io.EOF are returned.
func TokenizeReader(reader io.Reader) (Table, error) {
	return TokenizeReaderWithOptions(reader, DefaultOptions())
}

// TokenizeLine tokenizes a single line. A line containing LF is an error.
//
// Example:
//
//	row, _ := csv.TokenizeLine(`"He said ""hi""",x`)
//	// row: ["He said \"hi\"" "x"]
func TokenizeLine(line string) (Row, error) {
	lines := tokenizer.Lines(line)
	if len(lines) != 1 {
		return nil, ErrMultipleLines
	}
	return tokenizeLine(lines[0])
}

// ErrMultipleLines is returned by TokenizeLine for input containing LF.
var ErrMultipleLines = errors.New("input contains more than one line")

func tokenizeLine(line tokenizer.Line) (Row, error) {
	fields, err := parseLine(line)
	if err != nil {
		return nil, err
	}
	return Row(parser.Values(fields)), nil
}

// parseLine parses a lexed line, translating quote errors into
// *MalformedQuotingError.
func parseLine(line tokenizer.Line) ([]parser.Field, error) {
	fields, err := parser.ParseLine(line)
	if err != nil {
		var qe *parser.QuoteError
		if errors.As(err, &qe) {
			return nil, &MalformedQuotingError{
				Line:    line.Number,
				Column:  qe.Offset + 1,
				Content: line.Text,
			}
		}
		return nil, err
	}
	return fields, nil
}

func newLineSource(raw string) *tokenizer.LineReader {
	return tokenizer.NewLineReader(raw)
}

func collect(lines *tokenizer.LineReader, opts Options) (Table, error) {
	table := make(Table, 0, 64)
	for {
		line, ok := lines.Next()
		if !ok {
			return table, nil
		}
		row, err := tokenizeLine(line)
		if err != nil {
			return nil, err
		}
		if opts.OnRow != nil {
			opts.OnRow(line.Number, row)
		}
		table = append(table, row)
	}
}

// readerSource lexes lines from an io.Reader one line at a time.
type readerSource struct {
	lines *tokenizer.LineReader
}

func newReaderSource(reader io.Reader, opts Options) *readerSource {
	if opts.NormalizeNewlines {
		reader = transform.NewReader(reader, NewlineNormalizer())
	}
	return &readerSource{lines: tokenizer.NewLineReaderFromReader(reader)}
}

func (s *readerSource) err() error {
	return s.lines.Err()
}

package tokenizer

import (
	"bufio"
	"io"
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Line is one LF-delimited line of input.
type Line struct {
	// Number is the 0-based index of the line in the input.
	Number int
	// Offset is the byte offset of the first character of the line.
	Offset int
	// Text is the line content without its terminating LF.
	Text string
	// Quotes holds the byte offsets within Text of every double quote,
	// in increasing order.
	Quotes []int
}

// LineReader groups lexer tokens into lines.
//
// Splitting follows plain split-on-LF semantics: the text after the last LF
// is always a line, so "" yields one empty line and "a\n" yields two.
type LineReader struct {
	tok    *tokenizer.Tokenizer
	br     *bufio.Reader
	err    error
	number int
	offset int
	done   bool
}

// NewLineReader creates a LineReader over an in-memory string.
func NewLineReader(input string) *LineReader {
	tok := NewTokenizer()
	tok.Initialize(input)
	return &LineReader{tok: &tok}
}

// NewLineReaderFromReader creates a LineReader over r. Input is read one
// LF-terminated line at a time and each line is lexed on its own, so lines
// and fields of any length are returned intact.
func NewLineReaderFromReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// Next returns the next line. ok is false once every line has been returned
// or a read error occurred; Err reports the latter.
func (r *LineReader) Next() (line Line, ok bool) {
	if r.done {
		return Line{}, false
	}

	if r.br != nil {
		text, err := r.br.ReadString('\n')
		switch {
		case err == io.EOF:
			r.done = true
		case err != nil:
			r.done = true
			r.err = err
			return Line{}, false
		default:
			text = text[:len(text)-1]
		}
		line = LexLine(text)
	} else {
		var eos bool
		line, eos = collectLine(r.tok)
		r.done = eos
	}

	line.Number = r.number
	line.Offset = r.offset
	r.number++
	r.offset += len(line.Text) + 1
	return line, true
}

// Err returns the first read error other than io.EOF.
func (r *LineReader) Err() error {
	return r.err
}

// LexLine lexes a single line of text, which must not contain LF.
// Number and Offset of the result are zero.
func LexLine(text string) Line {
	tok := NewTokenizer()
	tok.Initialize(text)
	line, _ := collectLine(&tok)
	return line
}

// collectLine consumes tokens up to and including the next LF. eos reports
// that the tokens ran out before an LF was found.
func collectLine(tok *tokenizer.Tokenizer) (line Line, eos bool) {
	var text strings.Builder
	var quotes []int

	for {
		token, ok := tok.NextToken()
		if !ok {
			eos = true
			break
		}
		kind := token.Kind()
		if kind == TokenNewline {
			break
		}
		if kind == TokenDQuote {
			quotes = append(quotes, text.Len())
		}
		text.WriteString(token.ValueString())
	}

	return Line{Text: text.String(), Quotes: quotes}, eos
}

// Lines lexes input and returns all of its lines.
func Lines(input string) []Line {
	r := NewLineReader(input)
	lines := make([]Line, 0, strings.Count(input, "\n")+1)
	for {
		line, ok := r.Next()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

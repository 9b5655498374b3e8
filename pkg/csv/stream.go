package csv

import (
	"io"
)

// Scanner reads a CSV stream one Row at a time.
// Only the current line is held in memory.
//
// Example usage:
//
//	file, _ := os.Open("programme.csv")
//	defer file.Close()
//
//	scanner := csv.NewScanner(file)
//	for scanner.Scan() {
//	    row := scanner.Row()
//	    fmt.Println(scanner.Line(), row.Field(0))
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	src  *readerSource
	opts Options
	row  Row
	line int
	err  error
	done bool
}

// NewScanner creates a Scanner with default options.
func NewScanner(reader io.Reader) *Scanner {
	return NewScannerWithOptions(reader, DefaultOptions())
}

// NewScannerWithOptions creates a Scanner with custom options.
func NewScannerWithOptions(reader io.Reader, opts Options) *Scanner {
	return &Scanner{
		src:  newReaderSource(reader, opts),
		opts: opts,
		line: -1,
	}
}

// Scan advances to the next row. It returns false at the end of input or on
// the first error; Err reports which.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	line, ok := s.src.lines.Next()
	if err := s.src.err(); err != nil {
		return s.stop(err)
	}
	if !ok {
		return s.stop(nil)
	}

	row, err := tokenizeLine(line)
	if err != nil {
		return s.stop(err)
	}

	s.row = row
	s.line = line.Number
	if s.opts.OnRow != nil {
		s.opts.OnRow(line.Number, row)
	}
	return true
}

func (s *Scanner) stop(err error) bool {
	s.done = true
	s.err = err
	s.row = nil
	return false
}

// Row returns the row read by the last successful Scan.
func (s *Scanner) Row() Row {
	return s.row
}

// Line returns the 0-based line index of the current row, or -1 before the
// first Scan.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

func collectScanner(s *Scanner) (Table, error) {
	table := make(Table, 0, 64)
	for s.Scan() {
		table = append(table, s.Row())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

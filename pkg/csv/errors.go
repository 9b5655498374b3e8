package csv

import (
	"errors"
	"fmt"
)

// ErrMalformedQuoting is matched by every *MalformedQuotingError.
var ErrMalformedQuoting = errors.New("malformed quoting: unmatched double quote")

// MalformedQuotingError reports a line with an odd number of unescaped
// double quotes. Tokenization stops at the first such line.
type MalformedQuotingError struct {
	// Line is the 0-based index of the offending line.
	Line int
	// Column is the 1-based byte column of the unmatched quote.
	Column int
	// Content is the full text of the offending line.
	Content string
}

// Error returns a message with the 1-based line number and the line content.
func (e *MalformedQuotingError) Error() string {
	return fmt.Sprintf("malformed quoting on line %d, column %d: unmatched double quote in %q",
		e.Line+1, e.Column, e.Content)
}

// Unwrap returns ErrMalformedQuoting.
func (e *MalformedQuotingError) Unwrap() error {
	return ErrMalformedQuoting
}

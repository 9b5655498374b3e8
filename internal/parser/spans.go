package parser

import (
	"errors"
	"fmt"
)

// ErrUnbalancedQuotes is wrapped by every QuoteError.
var ErrUnbalancedQuotes = errors.New("unbalanced double quotes")

// QuoteError reports a quote span left open at the end of a line.
type QuoteError struct {
	// Offset is the byte offset within the line of the unmatched quote.
	Offset int
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("unmatched double quote at offset %d", e.Offset)
}

func (e *QuoteError) Unwrap() error {
	return ErrUnbalancedQuotes
}

// Span is a pair of offsets of an opening and a closing quote.
type Span struct {
	Start int
	End   int
}

// FindSpans pairs quote offsets into spans.
//
// quotes must be increasing. Scanning left to right, a quote directly
// followed by another quote is an escaped pair and both are skipped. The
// remaining quotes pair up in order: first with second, third with fourth.
func FindSpans(quotes []int) ([]Span, error) {
	spans := make([]Span, 0, len(quotes)/2)
	open := -1

	for i := 0; i < len(quotes); i++ {
		q := quotes[i]
		if i+1 < len(quotes) && quotes[i+1] == q+1 {
			i++
			continue
		}
		if open < 0 {
			open = q
			continue
		}
		spans = append(spans, Span{Start: open, End: q})
		open = -1
	}

	if open >= 0 {
		return nil, &QuoteError{Offset: open}
	}
	return spans, nil
}

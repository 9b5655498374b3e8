// Package tokenizer lexes programme CSV text using Shape's tokenizer framework
// and groups the resulting tokens into newline-delimited lines.
package tokenizer

// Token kinds emitted by the lexer.
//
// The lexer only classifies characters. Pairing quotes into spans and
// splitting fields is left to the parser.
const (
	TokenComma   = "Comma"   // ,
	TokenDQuote  = "DQuote"  // "
	TokenNewline = "Newline" // \n only; a preceding \r stays in the line text
	TokenText    = "Text"    // run of any other characters
)

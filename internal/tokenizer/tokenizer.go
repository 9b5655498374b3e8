package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a lexer for programme CSV text.
//
// Matchers are tried in order:
// 1. Newline (LF only, CR is ordinary text)
// 2. Comma
// 3. Double quote
// 4. Text (everything else)
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		tokenizer.StringMatcherFunc(TokenComma, ","),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),
		TextMatcher(),
	)
}

// TextMatcher matches runs of characters that are not a comma, a double
// quote or a line feed.
//
// Grammar:
//
//	Text = Character+ ;
//	Character = <any character except ',', '"', LF> ;
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return textMatcherByte(byteStream)
		}
		return textMatcherRune(stream)
	}
}

func textMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || isBoundary(rune(b)) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenText, []rune(string(value)))
}

func textMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || isBoundary(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenText, value)
}

func isBoundary(r rune) bool {
	return r == ',' || r == '"' || r == '\n'
}

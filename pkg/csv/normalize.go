package csv

import "golang.org/x/text/transform"

// NewlineNormalizer returns a transformer that converts CRLF and lone CR
// line endings to LF. All other bytes pass through unchanged.
//
// It is applied when Options.NormalizeNewlines is set, and can be used
// directly with transform.NewReader.
func NewlineNormalizer() transform.Transformer {
	return new(normalizeNewlines)
}

type normalizeNewlines struct {
	prev byte
}

func (n *normalizeNewlines) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nDst < len(dst) && nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r':
			dst[nDst] = '\n'
		case '\n':
			if n.prev == '\r' {
				nSrc++
				n.prev = c
				continue
			}
			dst[nDst] = '\n'
		default:
			dst[nDst] = c
		}
		n.prev = c
		nDst++
		nSrc++
	}
	if nSrc < len(src) {
		err = transform.ErrShortDst
	}
	return
}

func (n *normalizeNewlines) Reset() {
	n.prev = 0
}

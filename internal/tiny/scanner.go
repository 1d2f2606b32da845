package tiny

import (
	"strings"
	"unicode/utf8"
)

// LineReader is the view of the input the scanner works with. Source is the
// implementation used for files and standard input.
type LineReader interface {
	NextTokenStart() (string, bool)
	Advance(n int)
	SkipUpto(s string) bool
	Line() int
	Err() error
}

// Scanner turns the input source into a stream of tokens, one token at a time.
// Comments never reach the caller.
type Scanner struct {
	src LineReader
	eof bool
	err error
}

// NewScanner creates a new TINY token scanner
func NewScanner(src LineReader) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token in the stream. Once the input is exhausted it
// returns an EOF token on every call.
func (scanner *Scanner) Next() *Token {
	for !scanner.eof {
		s, ok := scanner.src.NextTokenStart()
		if !ok {
			scanner.eof = true
			scanner.err = scanner.src.Err()
			break
		}

		line := scanner.src.Line()
		typ, n := classify(s)
		switch typ {
		case LEFT_BRACE:
			scanner.src.Advance(n)
			if !scanner.src.SkipUpto("}") {
				scanner.eof = true
				scanner.err = scanner.src.Err()
				if scanner.err == nil {
					scanner.err = NewParseError(UnterminatedComment, line, EOF)
				}
			}
		case ERROR:
			// step over the offending character so the stream keeps moving
			_, size := utf8.DecodeRuneInString(s)
			scanner.src.Advance(size)
			return NewToken(ERROR, "", line)
		default:
			scanner.src.Advance(n)
			return NewToken(typ, s[:n], line)
		}
	}
	return NewToken(EOF, "", scanner.src.Line())
}

// Scan reads the source and collects all the tokens up to and including EOF.
func (scanner *Scanner) Scan() []*Token {
	tokens := make([]*Token, 0)
	for {
		tok := scanner.Next()
		tokens = append(tokens, tok)
		if tok.Typ == EOF {
			return tokens
		}
	}
}

// Err returns the error that ended the stream early: an unterminated comment
// or a failure of the underlying reader.
func (scanner *Scanner) Err() error {
	return scanner.err
}

// classify finds the token at the start of s and the number of bytes it
// spans. Symbols are tried first, then numbers, then identifiers and
// keywords. ERROR spans no bytes.
func classify(s string) (TokenType, int) {
	for _, sym := range symbols {
		if strings.HasPrefix(s, sym.lexeme) {
			return sym.typ, len(sym.lexeme)
		}
	}
	if s == "" {
		return EOF, 0
	}

	n := 1
	switch {
	case isDigit(s[0]):
		for n < len(s) && isDigit(s[n]) {
			n++
		}
		return NUMBER, n
	case isBeginIdent(s[0]):
		for n < len(s) && isBeginIdent(s[n]) {
			n++
		}
		if typ, isKeyword := Keywords[s[:n]]; isKeyword {
			return typ, n
		}
		return IDENTIFIER, n
	}
	return ERROR, 0
}

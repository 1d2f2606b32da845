package tiny

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		// symbols
		{":=", []*Token{{ASSIGN, ":=", 1}, tokEOF(1)}},
		{"=", []*Token{{EQUAL, "=", 1}, tokEOF(1)}},
		{"<", []*Token{{LESS_THAN, "<", 1}, tokEOF(1)}},
		{"+", []*Token{{PLUS, "+", 1}, tokEOF(1)}},
		{"-", []*Token{{MINUS, "-", 1}, tokEOF(1)}},
		{"*", []*Token{{TIMES, "*", 1}, tokEOF(1)}},
		{"/", []*Token{{DIVIDE, "/", 1}, tokEOF(1)}},
		{"^", []*Token{{POWER, "^", 1}, tokEOF(1)}},
		{";", []*Token{{SEMICOLON, ";", 1}, tokEOF(1)}},
		{"(", []*Token{{LEFT_PAREN, "(", 1}, tokEOF(1)}},
		{")", []*Token{{RIGHT_PAREN, ")", 1}, tokEOF(1)}},
		{"}", []*Token{{RIGHT_BRACE, "}", 1}, tokEOF(1)}},
		// literals
		{"a", []*Token{{IDENTIFIER, "a", 1}, tokEOF(1)}},
		{"abc", []*Token{{IDENTIFIER, "abc", 1}, tokEOF(1)}},
		{"_abc_", []*Token{{IDENTIFIER, "_abc_", 1}, tokEOF(1)}},
		{"ifx", []*Token{{IDENTIFIER, "ifx", 1}, tokEOF(1)}},
		{"IF", []*Token{{IDENTIFIER, "IF", 1}, tokEOF(1)}},
		{"Then", []*Token{{IDENTIFIER, "Then", 1}, tokEOF(1)}},
		{"10", []*Token{{NUMBER, "10", 1}, tokEOF(1)}},
		{"007", []*Token{{NUMBER, "007", 1}, tokEOF(1)}},
		// keywords
		{"if", []*Token{{IF, "if", 1}, tokEOF(1)}},
		{"then", []*Token{{THEN, "then", 1}, tokEOF(1)}},
		{"else", []*Token{{ELSE, "else", 1}, tokEOF(1)}},
		{"end", []*Token{{END, "end", 1}, tokEOF(1)}},
		{"repeat", []*Token{{REPEAT, "repeat", 1}, tokEOF(1)}},
		{"until", []*Token{{UNTIL, "until", 1}, tokEOF(1)}},
		{"read", []*Token{{READ, "read", 1}, tokEOF(1)}},
		{"write", []*Token{{WRITE, "write", 1}, tokEOF(1)}},
		{"", []*Token{tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		scan := newTestScanner(tc.src)
		toks := scan.Scan()

		assert.NoError(scan.Err(), tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanIdentifiersExcludeDigits(t *testing.T) {
	assert := assert.New(t)

	scan := newTestScanner("x1 a2b")
	toks := scan.Scan()

	assert.Equal([]*Token{
		{IDENTIFIER, "x", 1},
		{NUMBER, "1", 1},
		{IDENTIFIER, "a", 1},
		{NUMBER, "2", 1},
		{IDENTIFIER, "b", 1},
		tokEOF(1),
	}, toks)
}

func TestScanAdjacentTokens(t *testing.T) {
	assert := assert.New(t)

	scan := newTestScanner("x:=x^2-(y/3);if x<1=y")
	toks := scan.Scan()

	assert.Equal([]*Token{
		{IDENTIFIER, "x", 1},
		{ASSIGN, ":=", 1},
		{IDENTIFIER, "x", 1},
		{POWER, "^", 1},
		{NUMBER, "2", 1},
		{MINUS, "-", 1},
		{LEFT_PAREN, "(", 1},
		{IDENTIFIER, "y", 1},
		{DIVIDE, "/", 1},
		{NUMBER, "3", 1},
		{RIGHT_PAREN, ")", 1},
		{SEMICOLON, ";", 1},
		{IF, "if", 1},
		{IDENTIFIER, "x", 1},
		{LESS_THAN, "<", 1},
		{NUMBER, "1", 1},
		{EQUAL, "=", 1},
		{IDENTIFIER, "y", 1},
		tokEOF(1),
	}, toks)
}

func TestScanWhiteSpaces(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"        ", []*Token{tokEOF(1)}},
		{"\r\r\r\r", []*Token{tokEOF(1)}},
		{"\t\t\t\t", []*Token{tokEOF(1)}},
		{"\n\n\n\n", []*Token{tokEOF(4)}},
		{"  \r\t\n", []*Token{tokEOF(1)}},
		{"\n\n  x \r\n", []*Token{{IDENTIFIER, "x", 3}, tokEOF(3)}},
		{"read\n\n\tx", []*Token{{READ, "read", 1}, {IDENTIFIER, "x", 3}, tokEOF(3)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		scan := newTestScanner(tc.src)
		toks := scan.Scan()

		assert.NoError(scan.Err())
		assert.Equal(tc.toks, toks)
	}
}

func TestScanComments(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"{ a comment }", []*Token{tokEOF(1)}},
		{"{\na\nmulti-line\ncomment\n}", []*Token{tokEOF(5)}},
		{"read{comment}x", []*Token{{READ, "read", 1}, {IDENTIFIER, "x", 1}, tokEOF(1)}},
		{"{one}{two} {three}x", []*Token{{IDENTIFIER, "x", 1}, tokEOF(1)}},
		{"{ { not nested }x}", []*Token{{IDENTIFIER, "x", 1}, {RIGHT_BRACE, "}", 1}, tokEOF(1)}},
		{"a{\n}\nb", []*Token{{IDENTIFIER, "a", 1}, {IDENTIFIER, "b", 3}, tokEOF(3)}},
		{"ab{}cd", []*Token{{IDENTIFIER, "ab", 1}, {IDENTIFIER, "cd", 1}, tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		scan := newTestScanner(tc.src)
		toks := scan.Scan()

		assert.NoError(scan.Err())
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanCommentTransparency(t *testing.T) {
	assert := assert.New(t)

	withComment := newTestScanner("read{comment}x").Scan()
	without := newTestScanner("read x").Scan()

	assert.Equal(without, withComment)
}

func TestScanUnterminatedComment(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
		err  error
	}{
		{"read {forgot to close x",
			[]*Token{{READ, "read", 1}, tokEOF(1)},
			NewParseError(UnterminatedComment, 1, EOF)},
		{"x\n{\nnever\nclosed\n",
			[]*Token{{IDENTIFIER, "x", 1}, tokEOF(4)},
			NewParseError(UnterminatedComment, 2, EOF)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		scan := newTestScanner(tc.src)
		toks := scan.Scan()

		assert.Equal(tc.toks, toks)
		assert.Equal(tc.err, scan.Err())
		assert.ErrorIs(scan.Err(), UnterminatedComment)
	}
}

func TestScanWithErrors(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"@", []*Token{{ERROR, "", 1}, tokEOF(1)}},
		{":", []*Token{{ERROR, "", 1}, tokEOF(1)}},
		{"x # 1", []*Token{{IDENTIFIER, "x", 1}, {ERROR, "", 1}, {NUMBER, "1", 1}, tokEOF(1)}},
		{"é:=1", []*Token{{ERROR, "", 1}, {ASSIGN, ":=", 1}, {NUMBER, "1", 1}, tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		scan := newTestScanner(tc.src)
		toks := scan.Scan()

		assert.NoError(scan.Err())
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanEOFIsSticky(t *testing.T) {
	assert := assert.New(t)

	scan := newTestScanner("x")
	assert.Equal(&Token{IDENTIFIER, "x", 1}, scan.Next())
	for i := 0; i < 3; i++ {
		assert.Equal(tokEOF(1), scan.Next())
	}
}

func TestScanLineTooLong(t *testing.T) {
	assert := assert.New(t)

	src := "x\n" + strings.Repeat("a", 20) + "\n"
	scan := NewScanner(NewSource(strings.NewReader(src), 10))
	toks := scan.Scan()

	assert.Equal([]*Token{{IDENTIFIER, "x", 1}, tokEOF(1)}, toks)
	assert.Error(scan.Err())
	assert.Contains(scan.Err().Error(), "reading line 2")
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		src string
		typ TokenType
		n   int
	}{
		{":=1", ASSIGN, 2},
		{"=:", EQUAL, 1},
		{"{x}", LEFT_BRACE, 1},
		{"123abc", NUMBER, 3},
		{"abc123", IDENTIFIER, 3},
		{"until x", UNTIL, 5},
		{"untilx", IDENTIFIER, 6},
		{"?", ERROR, 0},
		{"", EOF, 0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		typ, n := classify(tc.src)
		assert.Equal(tc.typ, typ, tc.src)
		assert.Equal(tc.n, n, tc.src)
	}
}

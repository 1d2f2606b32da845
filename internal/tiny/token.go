package tiny

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, line int) *Token {
	return &Token{typ, lexeme, line}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s", t.Typ, t.Lexeme)
}

// TokenType enumerates every kind of token the scanner can produce.
type TokenType uint

const (
	// Keywords
	IF TokenType = iota
	THEN
	ELSE
	END
	REPEAT
	UNTIL
	READ
	WRITE

	// Symbols
	ASSIGN
	EQUAL
	LESS_THAN
	PLUS
	MINUS
	TIMES
	DIVIDE
	POWER
	SEMICOLON
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE

	// Literals
	IDENTIFIER
	NUMBER

	EOF
	ERROR
)

// Keywords are matched case-sensitively, "IF" is an identifier.
var Keywords = map[string]TokenType{
	"if":     IF,
	"then":   THEN,
	"else":   ELSE,
	"end":    END,
	"repeat": REPEAT,
	"until":  UNTIL,
	"read":   READ,
	"write":  WRITE,
}

type symbol struct {
	lexeme string
	typ    TokenType
}

// symbols is searched in order and the first prefix match wins, so a symbol
// must come before any shorter symbol that is a prefix of it. The closing
// brace has to follow the opening one, comment skipping relies on it.
var symbols = []symbol{
	{":=", ASSIGN},
	{"=", EQUAL},
	{"<", LESS_THAN},
	{"+", PLUS},
	{"-", MINUS},
	{"*", TIMES},
	{"/", DIVIDE},
	{"^", POWER},
	{";", SEMICOLON},
	{"(", LEFT_PAREN},
	{")", RIGHT_PAREN},
	{"{", LEFT_BRACE},
	{"}", RIGHT_BRACE},
}

// String returns the name used for the token type in diagnostics.
func (tt TokenType) String() string {
	switch tt {
	case IF:
		return "If"
	case THEN:
		return "Then"
	case ELSE:
		return "Else"
	case END:
		return "End"
	case REPEAT:
		return "Repeat"
	case UNTIL:
		return "Until"
	case READ:
		return "Read"
	case WRITE:
		return "Write"
	case ASSIGN:
		return "Assign"
	case EQUAL:
		return "Equal"
	case LESS_THAN:
		return "LessThan"
	case PLUS:
		return "Plus"
	case MINUS:
		return "Minus"
	case TIMES:
		return "Times"
	case DIVIDE:
		return "Divide"
	case POWER:
		return "Power"
	case SEMICOLON:
		return "SemiColon"
	case LEFT_PAREN:
		return "LeftParen"
	case RIGHT_PAREN:
		return "RightParen"
	case LEFT_BRACE:
		return "LeftBrace"
	case RIGHT_BRACE:
		return "RightBrace"
	case IDENTIFIER:
		return "ID"
	case NUMBER:
		return "Num"
	case EOF:
		return "EndFile"
	case ERROR:
		return "Error"
	}
	return ""
}

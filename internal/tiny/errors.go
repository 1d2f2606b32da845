package tiny

import "fmt"

// ErrorKind classifies a fatal parse error. Kinds are errors themselves, so
// errors.Is(err, UnexpectedToken) tells what went wrong.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota + 1
	UnrecognizedStatementStart
	UnrecognizedExpressionStart
	TrailingInput
	UnterminatedComment
	NestingTooDeep
	NumberOutOfRange
)

func (kind ErrorKind) Error() string {
	switch kind {
	case UnexpectedToken:
		return "unexpected token"
	case UnrecognizedStatementStart:
		return "unrecognized statement start"
	case UnrecognizedExpressionStart:
		return "unrecognized expression start"
	case TrailingInput:
		return "trailing input"
	case UnterminatedComment:
		return "unterminated comment"
	case NestingTooDeep:
		return "nesting too deep"
	case NumberOutOfRange:
		return "number out of range"
	}
	return "parse error"
}

// ParseErrorStatus is the process exit status for a fatal parse error.
const ParseErrorStatus = 1

// ParseError is a fatal error found while scanning or parsing. There is no
// recovery, the first ParseError ends the parse. Found is the lookahead the
// parser stopped on, EOF when it ran out of input.
type ParseError struct {
	Kind     ErrorKind
	Line     int
	Expected TokenType
	Found    TokenType
}

// NewParseError creates a parse error of the given kind
func NewParseError(kind ErrorKind, line int, found TokenType) error {
	return &ParseError{Kind: kind, Line: line, Found: found}
}

// NewUnexpectedTokenError creates the error raised when the lookahead is not
// the token the grammar requires.
func NewUnexpectedTokenError(line int, expected, found TokenType) error {
	return &ParseError{UnexpectedToken, line, expected, found}
}

func (err *ParseError) Error() string {
	switch err.Kind {
	case UnexpectedToken:
		return fmt.Sprintf(
			"Error in line %d ==> Expected : %s ==> Found : %s",
			err.Line,
			err.Expected,
			err.Found,
		)
	case UnrecognizedStatementStart:
		return fmt.Sprintf("Wrong statement in line %d", err.Line)
	case UnrecognizedExpressionStart:
		return fmt.Sprintf("Wrong Identifier %d", err.Line)
	case TrailingInput:
		return fmt.Sprintf("Incomplete syntax%d", err.Line)
	case UnterminatedComment:
		return fmt.Sprintf("Unterminated comment in line %d", err.Line)
	case NestingTooDeep:
		return fmt.Sprintf("Nesting too deep in line %d", err.Line)
	case NumberOutOfRange:
		return fmt.Sprintf("Number out of range in line %d", err.Line)
	}
	return fmt.Sprintf("Error in line %d", err.Line)
}

func (err *ParseError) Unwrap() error {
	return err.Kind
}

// Status returns the exit status the driver should terminate with.
func (err *ParseError) Status() int {
	return ParseErrorStatus
}

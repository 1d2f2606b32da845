package tiny

import "strconv"

// DefaultMaxDepth bounds how deeply statements and expressions may nest
// before the parser gives up with NestingTooDeep.
const DefaultMaxDepth = 1000

// Parser composes the syntax tree for a TINY program from the stream of
// tokens produced by a Scanner, looking one token ahead. The grammar is
// listed in doc.go.
type Parser struct {
	scanner  *Scanner
	reporter Reporter
	current  *Token
	depth    int
	maxDepth int
	legacy   bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithMaxDepth sets the nesting bound, zero or less means unbounded.
func WithMaxDepth(n int) ParserOption {
	return func(parser *Parser) {
		parser.maxDepth = n
	}
}

// WithLegacyOperands makes expr and mathExpr parse every operand after the
// first one with factor, and lets expr chain relational operators. This is
// how the first TINY front end behaved, "2+3*4" is then a syntax error.
func WithLegacyOperands(legacy bool) ParserOption {
	return func(parser *Parser) {
		parser.legacy = legacy
	}
}

// NewParser creates a new parser for the TINY language
func NewParser(scanner *Scanner, reporter Reporter, opts ...ParserOption) *Parser {
	parser := &Parser{
		scanner:  scanner,
		reporter: reporter,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse builds the syntax tree of the whole program and returns the first
// statement of the top-level sequence. The first error ends the parse, it is
// sent to the reporter and returned without a tree.
func (parser *Parser) Parse() (Stmt, error) {
	program, err := parser.program()
	if err != nil {
		parser.reporter.Report(err)
		return nil, err
	}
	return program, nil
}

// program --> stmtSeq EOF ;
func (parser *Parser) program() (Stmt, error) {
	if err := parser.advance(); err != nil {
		return nil, err
	}
	seq, err := parser.stmtSeq()
	if err != nil {
		return nil, err
	}
	if !parser.check(EOF) {
		return nil, parser.fail(TrailingInput)
	}
	return seq, nil
}

// Statements are chained through their sibling links, the head of the chain
// stands for the whole sequence.
//
// stmtSeq --> stmt ( ";" stmt )* ;
func (parser *Parser) stmtSeq() (Stmt, error) {
	head, err := parser.stmt()
	if err != nil {
		return nil, err
	}
	tail := head
	for !parser.check(EOF, END, ELSE, UNTIL) {
		if err := parser.match(SEMICOLON); err != nil {
			return nil, err
		}
		next, err := parser.stmt()
		if err != nil {
			return nil, err
		}
		tail.SetSibling(next)
		tail = next
	}
	return head, nil
}

// stmt --> ifStmt | repeatStmt | assignStmt | readStmt | writeStmt ;
func (parser *Parser) stmt() (Stmt, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()

	switch parser.current.Typ {
	case IDENTIFIER:
		return parser.assignStmt()
	case IF:
		return parser.ifStmt()
	case REPEAT:
		return parser.repeatStmt()
	case WRITE:
		return parser.writeStmt()
	case READ:
		return parser.readStmt()
	}
	return nil, parser.fail(UnrecognizedStatementStart)
}

// ifStmt --> "if" expr "then" stmtSeq ( "else" stmtSeq )? "end" ;
func (parser *Parser) ifStmt() (Stmt, error) {
	line := parser.current.Line
	if err := parser.match(IF); err != nil {
		return nil, err
	}
	cond, err := parser.expr()
	if err != nil {
		return nil, err
	}
	if err := parser.match(THEN); err != nil {
		return nil, err
	}
	thenBranch, err := parser.stmtSeq()
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if parser.check(ELSE) {
		if err := parser.match(ELSE); err != nil {
			return nil, err
		}
		elseBranch, err = parser.stmtSeq()
		if err != nil {
			return nil, err
		}
	}

	if err := parser.match(END); err != nil {
		return nil, err
	}
	return NewIfStmt(line, cond, thenBranch, elseBranch), nil
}

// repeatStmt --> "repeat" stmtSeq "until" expr ;
func (parser *Parser) repeatStmt() (Stmt, error) {
	line := parser.current.Line
	if err := parser.match(REPEAT); err != nil {
		return nil, err
	}
	body, err := parser.stmtSeq()
	if err != nil {
		return nil, err
	}
	if err := parser.match(UNTIL); err != nil {
		return nil, err
	}
	cond, err := parser.expr()
	if err != nil {
		return nil, err
	}
	return NewRepeatStmt(line, body, cond), nil
}

// assignStmt --> IDENTIFIER ":=" expr ;
func (parser *Parser) assignStmt() (Stmt, error) {
	name := parser.current
	if err := parser.match(IDENTIFIER); err != nil {
		return nil, err
	}
	if err := parser.match(ASSIGN); err != nil {
		return nil, err
	}
	val, err := parser.expr()
	if err != nil {
		return nil, err
	}
	return NewAssignStmt(name.Line, name.Lexeme, val), nil
}

// readStmt --> "read" IDENTIFIER ;
func (parser *Parser) readStmt() (Stmt, error) {
	line := parser.current.Line
	if err := parser.match(READ); err != nil {
		return nil, err
	}
	name := parser.current
	if err := parser.match(IDENTIFIER); err != nil {
		return nil, err
	}
	return NewReadStmt(line, name.Lexeme), nil
}

// writeStmt --> "write" expr ;
func (parser *Parser) writeStmt() (Stmt, error) {
	line := parser.current.Line
	if err := parser.match(WRITE); err != nil {
		return nil, err
	}
	val, err := parser.expr()
	if err != nil {
		return nil, err
	}
	return NewWriteStmt(line, val), nil
}

// Only one comparison is taken, a second "<" or "=" is left as lookahead and
// fails at the caller's next match. Legacy mode chains them to the left.
//
// expr --> mathExpr ( ( "<" | "=" ) mathExpr )? ;
func (parser *Parser) expr() (Expr, error) {
	expr, err := parser.mathExpr()
	if err != nil {
		return nil, err
	}
	for parser.check(LESS_THAN, EQUAL) {
		op := parser.current
		if err := parser.advance(); err != nil {
			return nil, err
		}
		right, err := parser.operand(parser.mathExpr)
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op.Line, op.Typ, expr, right, TypeVoid)
		if !parser.legacy {
			break
		}
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes.
//
// mathExpr --> term ( ( "+" | "-" ) term )* ;
func (parser *Parser) mathExpr() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.check(PLUS, MINUS) {
		op := parser.current
		if err := parser.advance(); err != nil {
			return nil, err
		}
		right, err := parser.operand(parser.term)
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op.Line, op.Typ, expr, right, TypeVoid)
	}
	return expr, nil
}

// term --> factor ( ( "*" | "/" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.check(TIMES, DIVIDE) {
		op := parser.current
		if err := parser.advance(); err != nil {
			return nil, err
		}
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op.Line, op.Typ, expr, right, TypeVoid)
	}
	return expr, nil
}

// Right-associative, "a^b^c" is "a^(b^c)".
//
// factor --> newExpr ( "^" factor )? ;
func (parser *Parser) factor() (Expr, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()

	base, err := parser.newExpr()
	if err != nil {
		return nil, err
	}
	if !parser.check(POWER) {
		return base, nil
	}
	op := parser.current
	if err := parser.advance(); err != nil {
		return nil, err
	}
	exponent, err := parser.factor()
	if err != nil {
		return nil, err
	}
	return NewBinaryExpr(op.Line, POWER, base, exponent, TypeVoid), nil
}

// newExpr --> "(" mathExpr ")" | NUMBER | IDENTIFIER ;
func (parser *Parser) newExpr() (Expr, error) {
	tok := parser.current
	switch tok.Typ {
	case LEFT_PAREN:
		if err := parser.match(LEFT_PAREN); err != nil {
			return nil, err
		}
		expr, err := parser.mathExpr()
		if err != nil {
			return nil, err
		}
		if err := parser.match(RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case NUMBER:
		val, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, parser.fail(NumberOutOfRange)
		}
		if err := parser.match(NUMBER); err != nil {
			return nil, err
		}
		return NewNumberExpr(tok.Line, val, TypeInteger), nil
	case IDENTIFIER:
		if err := parser.match(IDENTIFIER); err != nil {
			return nil, err
		}
		return NewIdentExpr(tok.Line, tok.Lexeme, TypeVoid), nil
	}
	return nil, parser.fail(UnrecognizedExpressionStart)
}

// operand parses the right operand of a relational or additive operator.
func (parser *Parser) operand(next func() (Expr, error)) (Expr, error) {
	if parser.legacy {
		return parser.factor()
	}
	return next()
}

// match consumes the lookahead if it has the expected type.
func (parser *Parser) match(expected TokenType) error {
	if parser.current.Typ != expected {
		return NewUnexpectedTokenError(parser.current.Line, expected, parser.current.Typ)
	}
	return parser.advance()
}

func (parser *Parser) check(types ...TokenType) bool {
	for _, tt := range types {
		if parser.current.Typ == tt {
			return true
		}
	}
	return false
}

// advance fetches the next lookahead. A stream that ended on an error turns
// into that error here.
func (parser *Parser) advance() error {
	parser.current = parser.scanner.Next()
	if parser.current.Typ == EOF {
		return parser.scanner.Err()
	}
	return nil
}

// fail creates an error of the given kind at the lookahead.
func (parser *Parser) fail(kind ErrorKind) error {
	return NewParseError(kind, parser.current.Line, parser.current.Typ)
}

func (parser *Parser) enter() error {
	if parser.maxDepth > 0 && parser.depth >= parser.maxDepth {
		return parser.fail(NestingTooDeep)
	}
	parser.depth++
	return nil
}

func (parser *Parser) leave() {
	parser.depth--
}

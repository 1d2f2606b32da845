package tiny

import "strings"

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func tokEOF(line int) *Token {
	return NewToken(EOF, "", line)
}

func newTestScanner(src string) *Scanner {
	return NewScanner(NewSource(strings.NewReader(src), DefaultMaxLineLength))
}

func parseSource(src string, opts ...ParserOption) (Stmt, *mockReporter, error) {
	report := newMockReporter()
	parser := NewParser(newTestScanner(src), report, opts...)
	program, err := parser.Parse()
	return program, report, err
}

// chain links stmts into a sequence and returns its head.
func chain(stmts ...Stmt) Stmt {
	for i := 0; i+1 < len(stmts); i++ {
		stmts[i].SetSibling(stmts[i+1])
	}
	return stmts[0]
}

func num(line, val int) *NumberExpr {
	return NewNumberExpr(line, val, TypeInteger)
}

func ident(line int, name string) *IdentExpr {
	return NewIdentExpr(line, name, TypeVoid)
}

func binary(line int, op TokenType, left, right Expr) *BinaryExpr {
	return NewBinaryExpr(line, op, left, right, TypeVoid)
}

const factorialProgram = `{ Sample program
  in TINY language
  compute factorial
}
read x; {input an integer}
if 0<x then {compute only if x>=1}
  fact:=1;
  repeat
    fact := fact * x;
    x:=x-1
  until x=0;
  write fact {output factorial}
end
`

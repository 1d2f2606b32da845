package tiny

import (
	"fmt"
	"strings"
)

// printerShift is the indentation added for each level of children.
const printerShift = 3

// AstPrinter dumps a syntax tree one node per line. Children are indented
// below their parent, statements of a sequence share the same indentation.
type AstPrinter struct {
	depth int
	out   strings.Builder
}

// Print returns the dump of the statement sequence starting at stmt.
func (printer *AstPrinter) Print(stmt Stmt) string {
	printer.depth = 0
	printer.out.Reset()
	printer.seq(stmt)
	return printer.out.String()
}

// PrintExpr returns the dump of a single expression.
func (printer *AstPrinter) PrintExpr(expr Expr) string {
	printer.depth = 0
	printer.out.Reset()
	printer.expr(expr)
	return printer.out.String()
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	printer.node("If")
	printer.children(func() {
		printer.expr(stmt.Cond)
		printer.seq(stmt.Then)
		printer.seq(stmt.Else)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitRepeatStmt(stmt *RepeatStmt) (interface{}, error) {
	printer.node("Repeat")
	printer.children(func() {
		printer.seq(stmt.Body)
		printer.expr(stmt.Cond)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	printer.node("Assign", stmt.Name)
	printer.children(func() {
		printer.expr(stmt.Val)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitReadStmt(stmt *ReadStmt) (interface{}, error) {
	printer.node("Read", stmt.Name)
	return nil, nil
}

func (printer *AstPrinter) VisitWriteStmt(stmt *WriteStmt) (interface{}, error) {
	printer.node("Write")
	printer.children(func() {
		printer.expr(stmt.Val)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	printer.node("Oper", expr.Op.String(), typeTag(expr.Type))
	printer.children(func() {
		printer.expr(expr.Left)
		printer.expr(expr.Right)
	})
	return nil, nil
}

func (printer *AstPrinter) VisitNumberExpr(expr *NumberExpr) (interface{}, error) {
	printer.node("Num", fmt.Sprint(expr.Val), typeTag(expr.Type))
	return nil, nil
}

func (printer *AstPrinter) VisitIdentExpr(expr *IdentExpr) (interface{}, error) {
	printer.node("ID", expr.Name, typeTag(expr.Type))
	return nil, nil
}

func (printer *AstPrinter) seq(stmt Stmt) {
	for ; stmt != nil; stmt = stmt.Sibling() {
		stmt.Accept(printer)
	}
}

func (printer *AstPrinter) expr(expr Expr) {
	if expr != nil {
		expr.Accept(printer)
	}
}

func (printer *AstPrinter) children(print func()) {
	printer.depth++
	print()
	printer.depth--
}

func (printer *AstPrinter) node(kind string, payload ...string) {
	printer.out.WriteString(strings.Repeat(" ", printer.depth*printerShift))
	fmt.Fprintf(&printer.out, "[%s]", kind)
	for _, p := range payload {
		if p != "" {
			fmt.Fprintf(&printer.out, "[%s]", p)
		}
	}
	printer.out.WriteByte('\n')
}

// Void is not printed.
func typeTag(typ ExprType) string {
	if typ == TypeVoid {
		return ""
	}
	return typ.String()
}

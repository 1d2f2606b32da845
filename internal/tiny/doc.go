/*
Package tiny is the front end for the TINY language: a scanner that turns
source text into tokens and a recursive-descent parser that builds the syntax
tree. Comments are delimited by "{" and "}" and do not nest.

Grammars

	program    --> stmtSeq EOF ;
	stmtSeq    --> stmt ( ";" stmt )* ;
	stmt       --> ifStmt
	             | repeatStmt
	             | assignStmt
	             | readStmt
	             | writeStmt ;
	ifStmt     --> "if" expr "then" stmtSeq ( "else" stmtSeq )? "end" ;
	repeatStmt --> "repeat" stmtSeq "until" expr ;
	assignStmt --> IDENTIFIER ":=" expr ;
	readStmt   --> "read" IDENTIFIER ;
	writeStmt  --> "write" expr ;
	expr       --> mathExpr ( ( "<" | "=" ) mathExpr )? ;
	mathExpr   --> term ( ( "+" | "-" ) term )* ;
	term       --> factor ( ( "*" | "/" ) factor )* ;
	factor     --> newExpr ( "^" factor )? ;
	newExpr    --> "(" mathExpr ")" | NUMBER | IDENTIFIER ;

"+", "-", "*" and "/" are left-associative, "^" is right-associative.
Identifiers are letters and underscores, digits are never part of one.
Keywords are case-sensitive.
*/
package tiny

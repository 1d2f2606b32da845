package tiny

//go:generate go run ../cmd/ast_codegen .

// ExprType is the result type of an expression node. It is only known for
// literals at parse time, everything else stays TypeVoid until checked.
type ExprType uint

const (
	TypeVoid ExprType = iota
	TypeInteger
	TypeBoolean
)

func (typ ExprType) String() string {
	switch typ {
	case TypeVoid:
		return "Void"
	case TypeInteger:
		return "Integer"
	case TypeBoolean:
		return "Boolean"
	}
	return ""
}

// Statements flattens the sibling chain starting at head.
func Statements(head Stmt) []Stmt {
	var stmts []Stmt
	for stmt := head; stmt != nil; stmt = stmt.Sibling() {
		stmts = append(stmts, stmt)
	}
	return stmts
}

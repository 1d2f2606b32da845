package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	// we do it the scripting way, instead of having types support from Go stdlib
	expressionTypes := []string{
		"Binary: Line int, Op TokenType, Left Expr, Right Expr, Type ExprType",
		"Number: Line int, Val int, Type ExprType",
		// The type of an identifier is unknown until a later phase, the parser
		// leaves it as TypeVoid.
		"Ident: Line int, Name string, Type ExprType",
	}
	// Statements in a sequence are chained through their Next field, the chain
	// is not part of the tree below a statement.
	statementTypes := []string{
		"If: Line int, Cond Expr, Then Stmt, Else Stmt",
		"Repeat: Line int, Body Stmt, Cond Expr",
		"Assign: Line int, Name string, Val Expr",
		"Read: Line int, Name string",
		"Write: Line int, Val Expr",
	}

	defineAst(outputDir, "Expr", expressionTypes, false)
	defineAst(outputDir, "Stmt", statementTypes, true)
}

func defineAst(outputDir string, baseName string, types []string, linked bool) {
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)

	var buf bytes.Buffer
	packageName := filepath.Base(outputDir)
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface for the AST base type
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	if linked {
		fmt.Fprintf(&buf, "\tSibling() %s\n", baseName)
		fmt.Fprintf(&buf, "\tSetSibling(next %s)\n", baseName)
	}
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields, linked)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(fpath, src, 0644); err != nil {
		panic(err)
	}
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
	linked bool,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}
	receiver := strings.ToLower(baseName)

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	if linked {
		fmt.Fprintf(writer, "\tNext %s\n", baseName)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor, the sibling link is always set after construction
	var fieldNames []string
	for _, f := range fields {
		fieldName := strings.TrimSpace(strings.Split(f, " ")[0])
		fieldNames = append(fieldNames, fmt.Sprintf("%s: %s", fieldName, fieldName))
	}
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		fieldList,
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		receiver,
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		receiver,
	)
	fmt.Fprintf(writer, "}\n\n")

	if !linked {
		return
	}
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Sibling() %s {\n\treturn %s.Next\n}\n\n",
		receiver, typeName, baseName, baseName, receiver,
	)
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) SetSibling(next %s) {\n\t%s.Next = next\n}\n\n",
		receiver, typeName, baseName, baseName, receiver,
	)
}

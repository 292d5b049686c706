/*
File    : lazic/internal/ast/ast.go

Package ast defines the five-kind expression tree the parser builds and
the evaluator walks. Go has no sum types, so Expression is one struct
with a Kind tag; fields that only apply to some kinds are simply left
at their zero value otherwise (see the field comments below).
*/
package ast

import "github.com/lazic-lang/lazic/internal/symtab"

// Kind tags the shape of an Expression node.
type Kind uint8

const (
	// Program is the root of a parsed file: its Children are Statements.
	Program Kind = iota
	// Statement is "(" Id child... ")"; Children[0] is always the head Id.
	Statement
	// List is "[" child... "]"; reserved syntax, evaluating one is a TypeError.
	List
	// Id is a bare identifier or operator token, e.g. a variable reference
	// or a Statement's head.
	Id
	// Primitive is a literal: a number, string, or one of ANY/TRUE/FALSE/NULL.
	Primitive
)

// PrimitiveKind tags which of the seven primitive result kinds a
// Primitive Expression (or an evaluated Result, see package object)
// carries. No source-level literal produces Char; only the read_char
// built-in does.
type PrimitiveKind uint8

const (
	Any PrimitiveKind = iota
	True
	False
	Null
	Number
	String
	Char
)

// Expression is one node of the AST.
type Expression struct {
	Kind     Kind
	Children []*Expression

	// Key holds the interned name for an Id node, or for a Primitive
	// whose PType is not Number or String (where it is unused).
	Key symtab.Key
	// PType discriminates a Primitive node; meaningless otherwise.
	PType PrimitiveKind
	// Num holds the literal value of a Primitive Number node.
	Num int64
	// Str holds the literal text of a Primitive String node, quotes
	// already stripped.
	Str string

	Line, Col int
}

// Head returns a Statement's leading Id expression, the form name or
// function name the statement dispatches on. Callers must only call
// this on a Statement with at least one child; the parser never
// produces one with fewer.
func (e *Expression) Head() *Expression {
	return e.Children[0]
}

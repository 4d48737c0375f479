// Package ast defines the node shape the checker consumes.
//
// The tree is produced by a parser outside this module's scope
// (spec.md §1); this package only declares the interfaces and node
// structs the checker walks. Nodes are never mutated by the checker —
// inferred types and coercion markers live in the side-table
// (package annotate), not on the node itself.
package ast

import "fmt"

// Position identifies a location in the original source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() Position
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// File is the root node of a single source file.
type File struct {
	Position Position
	Body     []Statement
}

func (f *File) Pos() Position  { return f.Position }
func (f *File) String() string { return "<file>" }

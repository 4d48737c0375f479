// Package annotate implements the AST annotation side-table of
// spec.md §3/§4.3 (component C): an identity-keyed store associating a
// static type and an optional coercion flag with expression nodes, and
// a symbol table with scope-introducing nodes. It is the sole channel
// between the checker and a downstream code generator — the parser's
// AST itself is never mutated (spec.md §9).
package annotate

import (
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// Annotation is what the side-table records for one expression node.
type Annotation struct {
	Type    types.Type
	Coerced bool
}

// Table is the side-table. Static types and coercion flags are
// recorded only during pass 2 (spec.md §5); scope attachments are
// recorded in both passes, pass 2's replacing pass 1's for the same
// node.
type Table struct {
	annotations map[ast.Node]*Annotation
	scopes      map[ast.Node]*symbols.Table

	// pass2 gates AddStaticType/AddCoercionFlag: both are no-ops
	// during pass 1 (spec.md §4.3).
	pass2 bool
}

// New creates an empty side-table.
func New() *Table {
	return &Table{
		annotations: make(map[ast.Node]*Annotation),
		scopes:      make(map[ast.Node]*symbols.Table),
	}
}

// BeginPass2 switches the table into its pass-2, write-enabled mode.
func (t *Table) BeginPass2() { t.pass2 = true }

// AddStaticType records node's inferred static type. No-op during
// pass 1; idempotent during pass 2 (re-annotating a node with the same
// type is harmless and some call sites do it defensively).
func (t *Table) AddStaticType(node ast.Node, typ types.Type) {
	if !t.pass2 || node == nil {
		return
	}
	if existing, ok := t.annotations[node]; ok {
		existing.Type = typ
		return
	}
	t.annotations[node] = &Annotation{Type: typ}
}

// AddCoercionFlag marks node as requiring a runtime adapter at this
// expression boundary. Always called after AddStaticType for the same
// node (spec.md §4.3).
func (t *Table) AddCoercionFlag(node ast.Node) {
	if !t.pass2 || node == nil {
		return
	}
	ann, ok := t.annotations[node]
	if !ok {
		ann = &Annotation{}
		t.annotations[node] = ann
	}
	ann.Coerced = true
}

// AddNameTable attaches the scope a code generator must use when
// compiling a scope-introducing node (file, block, for, function
// body).
func (t *Table) AddNameTable(node ast.Node, scope *symbols.Table) {
	if node == nil {
		return
	}
	t.scopes[node] = scope
}

// GetStaticType is the dual accessor to AddStaticType.
func (t *Table) GetStaticType(node ast.Node) (types.Type, bool) {
	ann, ok := t.annotations[node]
	if !ok {
		return nil, false
	}
	return ann.Type, true
}

// IsCoerced reports whether node carries a coercion flag.
func (t *Table) IsCoerced(node ast.Node) bool {
	ann, ok := t.annotations[node]
	return ok && ann.Coerced
}

// GetNameTable is the dual accessor to AddNameTable.
func (t *Table) GetNameTable(node ast.Node) (*symbols.Table, bool) {
	scope, ok := t.scopes[node]
	return scope, ok
}

// Len reports how many nodes have an annotation entry: a static type,
// a coercion flag, or both.
func (t *Table) Len() int { return len(t.annotations) }

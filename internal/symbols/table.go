// Package symbols implements the nested symbol-table family of
// spec.md §3/§4.2 (component B): global, function, and block scopes,
// each holding a name → NameInfo mapping, with a global-only class
// table and import-copy entry point, and a function-only return-type
// slot.
package symbols

import (
	"github.com/cwbudde/go-tsc/internal/types"
)

// Kind distinguishes the three scope shapes spec.md §3 names.
type Kind int

const (
	Global Kind = iota
	Function
	Block
)

// NameInfo is the per-identifier record a table holds (spec.md §3).
type NameInfo struct {
	Name       string
	Type       types.Type
	IsConst    bool
	IsFunction bool
	IsTypeName bool
	IsExported bool
}

// Table is one scope. Tables form a chain via Parent; only the
// outermost table (Kind == Global) has a nil Parent.
type Table struct {
	Kind   Kind
	Parent *Table

	names map[string]*NameInfo

	// returnType is set only on Function tables: the function's
	// declared return type, or nil before inference concludes
	// (spec.md §3: "an explicit slot that can be undefined before
	// inference concludes").
	returnType types.Type
	hasReturn  bool

	// classes is set only on the outermost Global table: name →
	// declared instance type (spec.md §3's "class table").
	classes map[string]*types.InstanceType
}

// NewGlobal creates the outermost scope.
func NewGlobal() *Table {
	return &Table{
		Kind:    Global,
		names:   make(map[string]*NameInfo),
		classes: make(map[string]*types.InstanceType),
	}
}

// NewFunction creates a function scope enclosed by parent.
func NewFunction(parent *Table) *Table {
	return &Table{Kind: Function, Parent: parent, names: make(map[string]*NameInfo)}
}

// NewBlock creates a block scope enclosed by parent.
func NewBlock(parent *Table) *Table {
	return &Table{Kind: Block, Parent: parent, names: make(map[string]*NameInfo)}
}

// IsGlobal reports whether t is the outermost scope.
func (t *Table) IsGlobal() bool { return t.Kind == Global }

// Define records name in this scope. It fails (returns false) if the
// name is already recorded in this exact scope (spec.md §3 invariant:
// "A name may be recorded once per scope; re-recording fails").
// Shadowing an outer scope's name is always allowed.
func (t *Table) Define(info *NameInfo) bool {
	if _, exists := t.names[info.Name]; exists {
		return false
	}
	t.names[info.Name] = info
	return true
}

// Redefine overwrites a name already defined in this scope — used by
// flow-sensitive narrowing, which must rebind an identifier's type
// without going through the duplicate-definition guard (spec.md
// §4.5's narrowing machinery).
func (t *Table) Redefine(info *NameInfo) {
	t.names[info.Name] = info
}

// LookupInThis queries only this table, with no parent fallback.
func (t *Table) LookupInThis(name string) (*NameInfo, bool) {
	info, ok := t.names[name]
	return info, ok
}

// Lookup searches this table and then its parent chain up to the
// global scope.
func (t *Table) Lookup(name string) (*NameInfo, bool) {
	for cur := t; cur != nil; cur = cur.Parent {
		if info, ok := cur.names[name]; ok {
			return info, true
		}
	}
	return nil, false
}

// EnclosingFunction returns the nearest Function-kind table in the
// parent chain starting at t (inclusive), or nil at the top level.
func (t *Table) EnclosingFunction() *Table {
	for cur := t; cur != nil; cur = cur.Parent {
		if cur.Kind == Function {
			return cur
		}
	}
	return nil
}

// ReturnType returns the function's declared/inferred return type and
// whether it has been set yet. Valid only when t.Kind == Function.
func (t *Table) ReturnType() (types.Type, bool) {
	return t.returnType, t.hasReturn
}

// SetReturnType fixes the function's return type, either from an
// explicit annotation or from the first `return` seen (spec.md §4.5).
func (t *Table) SetReturnType(typ types.Type) {
	t.returnType = typ
	t.hasReturn = true
}

// Global returns the outermost table in t's parent chain.
func (t *Table) Global() *Table {
	cur := t
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// DefineClass records a declared class in the global class table,
// whichever table in the chain it is called on. It fails if the name
// is already a class.
func (t *Table) DefineClass(name string, it *types.InstanceType) bool {
	g := t.Global()
	if _, exists := g.classes[name]; exists {
		return false
	}
	g.classes[name] = it
	return true
}

// LookupClass searches the global class table.
func (t *Table) LookupClass(name string) (*types.InstanceType, bool) {
	g := t.Global()
	it, ok := g.classes[name]
	return it, ok
}

// ImportSymbol copies a single NameInfo from an externally-produced
// table into this table's global scope under localName, rejecting
// non-exported symbols (spec.md §4.7). It is only meaningful on the
// global table; callers are expected to have already checked they are
// in the global scope during pass 1.
func (t *Table) ImportSymbol(localName string, imported *NameInfo) error {
	if !imported.IsExported {
		return errNotExported(imported.Name)
	}
	copied := *imported
	copied.Name = localName
	if !t.Global().Define(&copied) {
		return errAlreadyDeclared(localName)
	}
	return nil
}

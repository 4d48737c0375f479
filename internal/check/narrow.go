package check

import (
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// narrowInfo is what a branch condition of the shape `ident == null`
// or `ident != null` (undefined is accepted as a spelling of the same
// test, spec.md §3) tells the checker about ident's optional-typed
// binding.
type narrowInfo struct {
	name     string
	declared *types.OptionalType
	// equality is true for ==/===, false for !=/!==. Combined with
	// which branch is being checked it decides whether that branch
	// narrows to null or to the element type.
	equality bool
}

// computeNarrow recognizes a narrowable comparison in test and
// resolves the identifier's currently-visible declared type. ok is
// false when test isn't of the narrowable shape or the identifier
// isn't optional-typed.
func (c *Checker) computeNarrow(scope *symbols.Table, test ast.Expression) (*narrowInfo, bool) {
	bin, ok := test.(*ast.BinaryExpression)
	if !ok {
		return nil, false
	}

	var ident *ast.Identifier
	switch {
	case isNullish(bin.Right):
		ident, _ = bin.Left.(*ast.Identifier)
	case isNullish(bin.Left):
		ident, _ = bin.Right.(*ast.Identifier)
	}
	if ident == nil {
		return nil, false
	}

	var equality bool
	switch bin.Operator {
	case "==", "===":
		equality = true
	case "!=", "!==":
		equality = false
	default:
		return nil, false
	}

	info, ok := scope.Lookup(ident.Name)
	if !ok {
		return nil, false
	}
	opt, ok := info.Type.(*types.OptionalType)
	if !ok {
		return nil, false
	}
	return &narrowInfo{name: ident.Name, declared: opt, equality: equality}, true
}

func isNullish(e ast.Expression) bool {
	switch v := e.(type) {
	case *ast.NullLiteral:
		return true
	case *ast.Identifier:
		return v.Name == "undefined"
	default:
		return false
	}
}

// applyNarrow rebinds n's identifier in scope to the type that branch
// implies: the null-testing branch narrows to null, the other branch
// narrows to the element type (spec.md §4.5).
func (c *Checker) applyNarrow(scope *symbols.Table, n *narrowInfo, positiveBranch bool) {
	if n == nil {
		return
	}
	nullBranch := n.equality == positiveBranch
	if nullBranch {
		scope.Redefine(&symbols.NameInfo{Name: n.name, Type: types.NullType})
	} else {
		scope.Redefine(&symbols.NameInfo{Name: n.name, Type: n.declared.Elem})
	}
	c.recordNarrowOriginal(scope, n.name, n.declared)
}

func (c *Checker) recordNarrowOriginal(scope *symbols.Table, name string, original *types.OptionalType) {
	if c.narrowOriginal[scope] == nil {
		c.narrowOriginal[scope] = make(map[string]types.Type)
	}
	c.narrowOriginal[scope][name] = original
}

// invalidateNarrowOnAssign restores a narrowed identifier's declared
// optional type when it is reassigned a value that could itself be
// null or optional — reassigning a definite non-null value leaves the
// narrowing in place (spec.md §4.5: "narrowing is discarded on
// reassignment of a null or optional value").
func (c *Checker) invalidateNarrowOnAssign(scope *symbols.Table, left ast.Expression, rightType types.Type) {
	id, ok := left.(*ast.Identifier)
	if !ok {
		return
	}
	for cur := scope; cur != nil; cur = cur.Parent {
		if orig, ok := c.narrowOriginal[cur]; ok {
			if original, ok := orig[id.Name]; ok {
				if _, hasLocal := cur.LookupInThis(id.Name); hasLocal {
					if needsNarrowRestore(rightType) {
						cur.Redefine(&symbols.NameInfo{Name: id.Name, Type: original})
					}
					return
				}
			}
		}
		if _, ok := cur.LookupInThis(id.Name); ok {
			return
		}
	}
}

// assignmentTargetType returns the type a plain `=` assignment should
// be checked against: an identifier's real declared type, even while
// a flow-narrowed refinement is in effect for reads, since the
// narrowing only describes what has been observed so far, not what
// the storage slot accepts (spec.md §4.5). For anything else it is
// just read's type.
func (c *Checker) assignmentTargetType(scope *symbols.Table, left ast.Expression, read types.Type) types.Type {
	id, ok := left.(*ast.Identifier)
	if !ok {
		return read
	}
	for cur := scope; cur != nil; cur = cur.Parent {
		if orig, ok := c.narrowOriginal[cur]; ok {
			if original, ok := orig[id.Name]; ok {
				if _, hasLocal := cur.LookupInThis(id.Name); hasLocal {
					return original
				}
			}
		}
		if _, ok := cur.LookupInThis(id.Name); ok {
			return read
		}
	}
	return read
}

func needsNarrowRestore(t types.Type) bool {
	if types.IsNull(t) {
		return true
	}
	_, optional := t.(*types.OptionalType)
	return optional
}

package check

import (
	"fmt"

	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// resolveTypeAnnotation turns a source-level TypeAnnotation into a
// lattice Type, applying the constructor-level rejections of spec.md
// §4.1 and the keyword unifications of §4.5 ("Type-annotation forms"):
// `number` means integer, and `null`/`undefined` both mean the
// unified null type.
func (c *Checker) resolveTypeAnnotation(scope *symbols.Table, ta ast.TypeAnnotation) (types.Type, error) {
	switch t := ta.(type) {
	case *ast.NamedType:
		switch t.Name {
		case "integer", "number":
			return types.IntegerType, nil
		case "float":
			return types.FloatType, nil
		case "boolean":
			return types.BooleanType, nil
		case "string":
			return types.StringType, nil
		case "void":
			return types.VoidType, nil
		case "any":
			return types.AnyType, nil
		case "null", "undefined":
			return types.NullType, nil
		default:
			it, ok := scope.LookupClass(t.Name)
			if !ok {
				return nil, fmt.Errorf("unknown type name '%s'", t.Name)
			}
			return it, nil
		}

	case *ast.GenericType:
		if t.Name != "Array" {
			return nil, fmt.Errorf("unknown generic type '%s'", t.Name)
		}
		elem, err := c.resolveTypeAnnotation(scope, t.TypeArg)
		if err != nil {
			return nil, err
		}
		return types.NewArrayType(elem), nil

	case *ast.UnionType:
		leftNull := isNullAnnotation(t.Left)
		rightNull := isNullAnnotation(t.Right)
		if leftNull && rightNull {
			return nil, fmt.Errorf("only optional types are supported -- union of two null types is redundant")
		}
		if !leftNull && !rightNull {
			return nil, fmt.Errorf("only optional types are supported -- unions other than 'T | null' are not")
		}
		elemAnnotation := t.Right
		if rightNull {
			elemAnnotation = t.Left
		}
		elem, err := c.resolveTypeAnnotation(scope, elemAnnotation)
		if err != nil {
			return nil, err
		}
		opt, err := types.NewOptionalType(elem)
		if err != nil {
			return nil, err
		}
		return opt, nil

	default:
		return nil, fmt.Errorf("unsupported type annotation")
	}
}

func isNullAnnotation(ta ast.TypeAnnotation) bool {
	n, ok := ta.(*ast.NamedType)
	return ok && (n.Name == "null" || n.Name == "undefined")
}

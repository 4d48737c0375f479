package check

import (
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// checkFunctionBody builds the function's scope, binds its parameters,
// checks every statement of its body, and attaches the scope to the
// side-table (spec.md §4.3: function body is a scope-introducing
// node). It is shared by top-level functions, methods, lambdas, and
// (in pass 1's descent only) constructors — the one place return-type
// inference (spec.md §4.5 "Return") happens. Pass 2 checks constructor
// bodies with checkConstructorBody instead.
func (c *Checker) checkFunctionBody(parentScope *symbols.Table, params []*ast.Param, fnType *types.FunctionType, declaredReturn bool, body *ast.BlockStatement) *symbols.Table {
	fnTable := symbols.NewFunction(parentScope)
	for i, p := range params {
		pt := types.Type(types.AnyType)
		if fnType != nil && i < len(fnType.Parameters) {
			pt = fnType.Parameters[i]
		}
		fnTable.Define(&symbols.NameInfo{Name: p.Name.Name, Type: pt})
	}
	if declaredReturn && fnType != nil {
		fnTable.SetReturnType(fnType.Return)
	}

	c.fnTypeStack = append(c.fnTypeStack, fnType)
	for _, stmt := range body.Body {
		c.checkStatement(fnTable, stmt)
	}
	c.fnTypeStack = c.fnTypeStack[:len(c.fnTypeStack)-1]

	c.side.AddNameTable(body, fnTable)
	return fnTable
}

// checkReturnStatement implements spec.md §4.5 "Return": the first
// return fixes an undeclared return type (void if no value); later
// returns are checked against it.
func (c *Checker) checkReturnStatement(scope *symbols.Table, r *ast.ReturnStatement) {
	fnTable := scope.EnclosingFunction()

	var argType types.Type = types.VoidType
	if r.Argument != nil {
		argType = c.checkExpression(scope, r.Argument)
	}
	if fnTable == nil {
		c.errorf(r.Pos(), "return statement outside of a function")
		return
	}

	declared, hasRet := fnTable.ReturnType()
	if !hasRet {
		fnTable.SetReturnType(argType)
		if fn := c.currentFnType(); fn != nil {
			fn.Return = argType
		}
		return
	}

	if types.IsSubtype(argType, declared) {
		return
	}
	if types.IsConsistent(argType, declared) {
		if r.Argument != nil {
			c.side.AddCoercionFlag(r.Argument)
		}
		return
	}
	c.errorf(r.Pos(), "%s", msgNotAssignable(argType.String(), declared.String()))
}

package check

import (
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// checkStatement dispatches on the statement's concrete kind. It is
// used by both passes (c.firstPass/c.silent gate the diagnostics that
// only belong to a particular pass).
func (c *Checker) checkStatement(scope *symbols.Table, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		c.checkBlockStatement(scope, s)
	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(scope, s)
	case *ast.ExpressionStatement:
		c.checkExpression(scope, s.Expression)
	case *ast.ReturnStatement:
		c.checkReturnStatement(scope, s)
	case *ast.IfStatement:
		c.checkIfStatement(scope, s)
	case *ast.WhileStatement:
		c.checkWhileStatement(scope, s)
	case *ast.ForStatement:
		c.checkForStatement(scope, s)
	case *ast.FunctionDeclaration:
		if !scope.IsGlobal() {
			c.errorf(s.Pos(), "nested function declarations are not supported")
			return
		}
		c.checkTopLevelFunction(scope, s)
	case *ast.ClassDeclaration:
		if !scope.IsGlobal() {
			c.errorf(s.Pos(), "class declarations are only allowed at the top level")
			return
		}
		c.checkClassDeclaration(scope, s)
	case *ast.ImportDeclaration:
		if !scope.IsGlobal() {
			c.errorf(s.Pos(), "import declarations are only allowed at the top level")
		}
		// Resolution happens during pass 1's declareTopLevel; nothing
		// further to check here.
	}
}

func (c *Checker) checkBlockStatement(scope *symbols.Table, b *ast.BlockStatement) *symbols.Table {
	block := symbols.NewBlock(scope)
	for _, stmt := range b.Body {
		c.checkStatement(block, stmt)
	}
	c.side.AddNameTable(b, block)
	return block
}

func (c *Checker) checkTopLevelFunction(scope *symbols.Table, f *ast.FunctionDeclaration) {
	info, ok := scope.LookupInThis(f.Name.Name)
	if !ok {
		return // declaration itself failed in pass 1; already reported
	}
	fnType, _ := info.Type.(*types.FunctionType)
	c.checkFunctionBody(scope, f.Params, fnType, f.ReturnType != nil, f.Body)
}

// checkVariableDeclaration handles both the top-level case (the name
// was already declared, and an unannotated one's type inferred, during
// pass 1 by declareTopLevel/descendTopLevel; this just validates the
// initializer) and the local case (declared fresh in the current
// block/function scope).
func (c *Checker) checkVariableDeclaration(scope *symbols.Table, v *ast.VariableDeclaration) {
	if scope.IsGlobal() {
		info, ok := scope.LookupInThis(v.Name.Name)
		if !ok {
			return
		}
		if v.Init != nil {
			initType := c.checkExpression(scope, v.Init)
			if v.Type != nil {
				c.checkAssignable(v.Init, initType, info.Type)
			} else if c.firstPass {
				info.Type = initType
			}
		}
		return
	}

	declared := types.Type(types.AnyType)
	hasDeclared := v.Type != nil
	if hasDeclared {
		resolved, err := c.resolveTypeAnnotation(scope, v.Type)
		if err != nil {
			c.errorf(v.Type.Pos(), "%s", err.Error())
		} else {
			declared = resolved
		}
	}

	if v.Init != nil {
		initType := c.checkExpression(scope, v.Init)
		if hasDeclared {
			c.checkAssignable(v.Init, initType, declared)
		} else {
			declared = initType
		}
	}

	if !scope.Define(&symbols.NameInfo{Name: v.Name.Name, Type: declared, IsConst: v.Const}) {
		c.errorf(v.Pos(), "'%s' is already declared", v.Name.Name)
	}
}

// checkAssignable implements the core assignability rule shared by
// variable initializers, plain assignment, return statements, and
// call arguments (spec.md §4.5): subtype passes silently; a
// consistent-but-not-subtype pairing (an `any` boundary) passes with a
// coercion flag on node; anything else is a type error.
func (c *Checker) checkAssignable(node ast.Expression, from, to types.Type) bool {
	if types.IsSubtype(from, to) {
		return true
	}
	if types.IsConsistent(from, to) {
		c.side.AddCoercionFlag(node)
		return true
	}
	c.errorf(node.Pos(), "%s", msgNotAssignable(from.String(), to.String()))
	return false
}

func (c *Checker) coerceToBoolean(node ast.Expression, t types.Type) {
	if types.IsSubtype(t, types.BooleanType) {
		return
	}
	if types.IsConsistent(t, types.BooleanType) {
		c.side.AddCoercionFlag(node)
		return
	}
	c.errorf(node.Pos(), "%s", msgNotAssignable(t.String(), types.BooleanType.String()))
}

func (c *Checker) checkIfStatement(scope *symbols.Table, s *ast.IfStatement) {
	testType := c.checkExpression(scope, s.Test)
	c.coerceToBoolean(s.Test, testType)

	n, ok := c.computeNarrow(scope, s.Test)
	c.checkBranch(scope, s.Consequent, n, true, ok)
	if s.Alternate != nil {
		c.checkBranch(scope, s.Alternate, n, false, ok)
	}
}

func (c *Checker) checkWhileStatement(scope *symbols.Table, s *ast.WhileStatement) {
	testType := c.checkExpression(scope, s.Test)
	c.coerceToBoolean(s.Test, testType)

	n, ok := c.computeNarrow(scope, s.Test)
	// Narrowing is preserved across the loop body on the narrowed side
	// (spec.md §4.5).
	c.checkBranch(scope, s.Body, n, true, ok)
}

func (c *Checker) checkForStatement(scope *symbols.Table, s *ast.ForStatement) {
	forScope := symbols.NewBlock(scope)
	if s.Init != nil {
		c.checkStatement(forScope, s.Init)
	}
	if s.Test != nil {
		testType := c.checkExpression(forScope, s.Test)
		c.coerceToBoolean(s.Test, testType)
	}
	if s.Update != nil {
		c.checkExpression(forScope, s.Update)
	}

	var n *narrowInfo
	ok := false
	if s.Test != nil {
		n, ok = c.computeNarrow(forScope, s.Test)
	}
	c.checkBranch(forScope, s.Body, n, true, ok)
	c.side.AddNameTable(s, forScope)
}

// checkBranch visits a single-statement or block branch under an
// optional flow-narrowing refinement. A non-block branch still gets
// an (unexposed) scope layer so narrowing's shadow-define mechanism
// works uniformly (spec.md §4.5).
func (c *Checker) checkBranch(scope *symbols.Table, stmt ast.Statement, n *narrowInfo, positive, narrowOK bool) {
	if block, isBlock := stmt.(*ast.BlockStatement); isBlock {
		inner := symbols.NewBlock(scope)
		if narrowOK {
			c.applyNarrow(inner, n, positive)
		}
		for _, st := range block.Body {
			c.checkStatement(inner, st)
		}
		c.side.AddNameTable(block, inner)
		return
	}
	inner := symbols.NewBlock(scope)
	if narrowOK {
		c.applyNarrow(inner, n, positive)
	}
	c.checkStatement(inner, stmt)
}

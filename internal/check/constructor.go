package check

import (
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// ctorValidation tracks the state component F (spec.md §4.6) needs
// across a single constructor body: which declared properties have
// been unconditionally assigned via `this.p = ...`, and whether
// `super()` has already been called at the constructor's top level.
type ctorValidation struct {
	class       *types.InstanceType
	initialized map[string]bool
	superCalled bool
}

func (c *Checker) currentCtor() *ctorValidation {
	if len(c.ctorStack) == 0 {
		return nil
	}
	return c.ctorStack[len(c.ctorStack)-1]
}

// checkConstructorBody validates a class's constructor: it walks the
// body tracking nesting depth so that `super()` is only legal as a
// direct top-level statement and property initialization is only
// trusted when it isn't conditional on a nested branch, then checks
// that every declared property ended up initialized and, if the
// superclass constructor takes arguments, that super() was called
// (spec.md §4.6).
func (c *Checker) checkConstructorBody(parentScope *symbols.Table, method *ast.MethodDefinition, fnType *types.FunctionType, class *types.InstanceType) {
	fnTable := symbols.NewFunction(parentScope)
	for i, p := range method.Params {
		pt := types.Type(types.AnyType)
		if fnType != nil && i < len(fnType.Parameters) {
			pt = fnType.Parameters[i]
		}
		fnTable.Define(&symbols.NameInfo{Name: p.Name.Name, Type: pt})
	}
	fnTable.SetReturnType(types.VoidType)

	st := &ctorValidation{class: class, initialized: make(map[string]bool)}
	c.ctorStack = append(c.ctorStack, st)
	c.fnTypeStack = append(c.fnTypeStack, fnType)

	c.checkConstructorBlock(fnTable, method.Body.Body, true)

	c.fnTypeStack = c.fnTypeStack[:len(c.fnTypeStack)-1]
	c.ctorStack = c.ctorStack[:len(c.ctorStack)-1]
	c.side.AddNameTable(method.Body, fnTable)

	if superCtorNeedsArgs(class) && !st.superCalled {
		c.errorf(method.Pos(), "%s", msgSuperNotCalled)
	}
	for _, p := range class.Properties() {
		if !st.initialized[p.Name] {
			c.errorf(method.Pos(), "%s", msgUninitializedProperty(p.Name))
		}
	}
}

func superCtorNeedsArgs(class *types.InstanceType) bool {
	super, ok := class.Super.(*types.InstanceType)
	if !ok {
		return false
	}
	ctor, _, ok := types.LookupMethod(super, "constructor")
	return ok && len(ctor.Func.Parameters) > 0
}

func (c *Checker) checkConstructorBlock(scope *symbols.Table, stmts []ast.Statement, topLevel bool) {
	for _, stmt := range stmts {
		c.checkConstructorStatement(scope, stmt, topLevel)
	}
}

// checkConstructorStatement mirrors checkStatement's dispatch but
// keeps re-deriving the `topLevel` flag for the handful of statement
// shapes where a nested `this.p = ...` or `super()` matters, falling
// back to the ordinary statement checker for everything else.
func (c *Checker) checkConstructorStatement(scope *symbols.Table, stmt ast.Statement, topLevel bool) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		c.checkConstructorExprStatement(scope, s, topLevel)
	case *ast.BlockStatement:
		inner := symbols.NewBlock(scope)
		c.checkConstructorBlock(inner, s.Body, false)
		c.side.AddNameTable(s, inner)
	case *ast.IfStatement:
		testType := c.checkExpression(scope, s.Test)
		c.coerceToBoolean(s.Test, testType)
		n, ok := c.computeNarrow(scope, s.Test)
		c.checkConstructorBranch(scope, s.Consequent, n, true, ok)
		if s.Alternate != nil {
			c.checkConstructorBranch(scope, s.Alternate, n, false, ok)
		}
	case *ast.WhileStatement:
		testType := c.checkExpression(scope, s.Test)
		c.coerceToBoolean(s.Test, testType)
		n, ok := c.computeNarrow(scope, s.Test)
		c.checkConstructorBranch(scope, s.Body, n, true, ok)
	case *ast.ForStatement:
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
		c.checkConstructorBranch(forScope, s.Body, nil, true, false)
		c.side.AddNameTable(s, forScope)
	default:
		c.checkStatement(scope, stmt)
	}
}

func (c *Checker) checkConstructorBranch(scope *symbols.Table, stmt ast.Statement, n *narrowInfo, positive, narrowOK bool) {
	inner := symbols.NewBlock(scope)
	if narrowOK {
		c.applyNarrow(inner, n, positive)
	}
	if block, ok := stmt.(*ast.BlockStatement); ok {
		c.checkConstructorBlock(inner, block.Body, false)
		c.side.AddNameTable(block, inner)
		return
	}
	c.checkConstructorStatement(inner, stmt, false)
}

func (c *Checker) checkConstructorExprStatement(scope *symbols.Table, s *ast.ExpressionStatement, topLevel bool) {
	if call, ok := s.Expression.(*ast.CallExpression); ok {
		if _, isSuper := call.Callee.(*ast.SuperExpression); isSuper {
			c.checkSuperCallStatement(scope, call, topLevel)
			return
		}
	}

	if assign, ok := s.Expression.(*ast.AssignmentExpression); ok && assign.Operator == "=" {
		if member, ok := assign.Left.(*ast.MemberExpression); ok && !member.Computed {
			if _, isThis := member.Object.(*ast.ThisExpression); isThis {
				propName := member.Property.(*ast.Identifier).Name
				c.checkExpression(scope, assign)
				if topLevel {
					if st := c.currentCtor(); st != nil {
						st.initialized[propName] = true
					}
				}
				return
			}
		}
	}

	c.checkExpression(scope, s.Expression)
}

// checkSuperCallStatement handles `super(...)` appearing as its own
// statement inside a constructor body: accepted once at the top level,
// rejected when nested inside a block, branch, or loop body. A super
// call used as a sub-expression, or outside a constructor's statement
// lists, goes through checkSuperCall instead and is always rejected.
func (c *Checker) checkSuperCallStatement(scope *symbols.Table, call *ast.CallExpression, topLevel bool) {
	st := c.currentCtor()
	if !topLevel || st == nil {
		c.errorf(call.Pos(), "%s", msgCannotCallSuperHere)
		for _, arg := range call.Arguments {
			c.checkExpression(scope, arg)
		}
		return
	}
	if st.superCalled {
		c.errorf(call.Pos(), "%s", msgCannotCallSuperHere)
	} else {
		st.superCalled = true
	}

	super, ok := st.class.Super.(*types.InstanceType)
	if !ok {
		for _, arg := range call.Arguments {
			c.checkExpression(scope, arg)
		}
		return
	}
	ctor, _, hasCtor := types.LookupMethod(super, "constructor")
	if !hasCtor {
		if len(call.Arguments) != 0 {
			c.errorf(call.Pos(), "%s", msgWrongArgCount)
		}
		for _, arg := range call.Arguments {
			c.checkExpression(scope, arg)
		}
		return
	}
	if len(call.Arguments) != len(ctor.Func.Parameters) {
		c.errorf(call.Pos(), "%s", msgWrongArgCount)
	}
	for i, arg := range call.Arguments {
		at := c.checkExpression(scope, arg)
		if i < len(ctor.Func.Parameters) {
			c.checkAssignable(arg, at, ctor.Func.Parameters[i])
		}
	}
}

// checkSuperCall is reached when `super(...)` is a sub-expression or
// appears outside the statement lists checkConstructorStatement walks:
// that is always invalid (spec.md §4.6).
func (c *Checker) checkSuperCall(scope *symbols.Table, call *ast.CallExpression) types.Type {
	c.errorf(call.Pos(), "%s", msgCannotCallSuperHere)
	for _, arg := range call.Arguments {
		c.checkExpression(scope, arg)
	}
	return types.VoidType
}

package check

import (
	"strings"

	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// checkExpression dispatches on expr's concrete kind and, on the way
// out, records the inferred type in the side-table. Doing the
// recording here rather than in each per-construct helper guarantees
// the completeness property of spec.md §8: every expression node pass
// 2 visits ends up annotated, with no handler able to forget.
func (c *Checker) checkExpression(scope *symbols.Table, expr ast.Expression) types.Type {
	t := c.checkExpressionKind(scope, expr)
	c.side.AddStaticType(expr, t)
	return t
}

func (c *Checker) checkExpressionKind(scope *symbols.Table, expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case *ast.Identifier:
		return c.checkIdentifier(scope, e)
	case *ast.NumericLiteral:
		if e.IsInteger {
			return types.IntegerType
		}
		return types.FloatType
	case *ast.StringLiteral:
		return types.StringType
	case *ast.BooleanLiteral:
		return types.BooleanType
	case *ast.NullLiteral:
		return types.NullType
	case *ast.ThisExpression:
		return c.checkThisExpression(e)
	case *ast.SuperExpression:
		c.errorf(e.Pos(), "'super' may only appear as a call")
		return types.AnyType
	case *ast.UnaryExpression:
		return c.checkUnaryExpression(scope, e)
	case *ast.UpdateExpression:
		return c.checkUpdateExpression(scope, e)
	case *ast.BinaryExpression:
		return c.checkBinaryExpression(scope, e)
	case *ast.LogicalExpression:
		return c.checkLogicalExpression(scope, e)
	case *ast.AssignmentExpression:
		return c.checkAssignmentExpression(scope, e)
	case *ast.ConditionalExpression:
		return c.checkConditionalExpression(scope, e)
	case *ast.MemberExpression:
		return c.checkMemberExpression(scope, e)
	case *ast.CallExpression:
		return c.checkCallExpression(scope, e)
	case *ast.NewExpression:
		return c.checkNewExpression(scope, e)
	case *ast.FunctionExpression:
		return c.checkFunctionExpression(scope, e)
	default:
		return types.AnyType
	}
}

func (c *Checker) checkIdentifier(scope *symbols.Table, id *ast.Identifier) types.Type {
	if id.Name == "undefined" {
		return types.NullType
	}
	info, ok := scope.Lookup(id.Name)
	if !ok {
		if !c.suppressUnknownName() {
			c.errorf(id.Pos(), "%s", msgUnknownName(id.Name))
		}
		return types.AnyType
	}
	return info.Type
}

func (c *Checker) checkThisExpression(t *ast.ThisExpression) types.Type {
	if c.currentClass == nil {
		c.errorf(t.Pos(), "'this' is only valid inside a method")
		return types.AnyType
	}
	return c.currentClass
}

// requireNumeric reports a diagnostic unless t is integer, float, or
// any, and returns the operand type unchanged (or `any` on failure).
func (c *Checker) requireNumeric(node ast.Expression, t types.Type) types.Type {
	if types.IsNumeric(t) || types.IsAny(t) {
		return t
	}
	c.errorf(node.Pos(), "operator requires a numeric operand, got '%s'", t.String())
	return types.AnyType
}

func (c *Checker) requireInteger(node ast.Expression, t types.Type) {
	if types.IsSubtype(t, types.IntegerType) {
		return
	}
	if types.IsConsistent(t, types.IntegerType) {
		c.side.AddCoercionFlag(node)
		return
	}
	c.errorf(node.Pos(), "operator requires an integer operand, got '%s'", t.String())
}

func (c *Checker) checkUnaryExpression(scope *symbols.Table, u *ast.UnaryExpression) types.Type {
	argType := c.checkExpression(scope, u.Argument)
	switch u.Operator {
	case "+", "-":
		return c.requireNumeric(u.Argument, argType)
	case "!":
		c.coerceToBoolean(u.Argument, argType)
		return types.BooleanType
	case "~":
		c.requireInteger(u.Argument, argType)
		return types.IntegerType
	case "typeof":
		return types.StringType
	default:
		c.errorf(u.Pos(), "'%s' is not supported", u.Operator)
		return types.AnyType
	}
}

func isLValue(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	default:
		return false
	}
}

func (c *Checker) checkUpdateExpression(scope *symbols.Table, u *ast.UpdateExpression) types.Type {
	argType := c.checkExpression(scope, u.Argument)
	if !isLValue(u.Argument) {
		c.errorf(u.Pos(), "invalid assignment target")
	}
	c.checkAssignTarget(scope, u.Argument)
	return c.requireNumeric(u.Argument, argType)
}

func (c *Checker) checkBinaryExpression(scope *symbols.Table, b *ast.BinaryExpression) types.Type {
	if b.Operator == "instanceof" {
		return c.checkInstanceofExpression(scope, b)
	}

	left := c.checkExpression(scope, b.Left)
	right := c.checkExpression(scope, b.Right)
	switch b.Operator {
	case "==", "!=", "===", "!==":
		c.requireComparable(b, left, right)
		return types.BooleanType
	case "<", "<=", ">", ">=":
		c.requireOrdered(b, left, right)
		return types.BooleanType
	case "+":
		if types.Equals(left, types.StringType) || types.Equals(right, types.StringType) {
			return types.StringType
		}
		if types.IsNumeric(left) && types.IsNumeric(right) {
			if types.Equals(left, types.FloatType) || types.Equals(right, types.FloatType) {
				return types.FloatType
			}
			return types.IntegerType
		}
		if types.IsAny(left) || types.IsAny(right) {
			return types.AnyType
		}
		c.errorf(b.Pos(), "operator '+' requires numeric or string operands")
		return types.AnyType
	case "-", "*", "/", "**":
		c.requireNumeric(b.Left, left)
		c.requireNumeric(b.Right, right)
		if types.Equals(left, types.FloatType) || types.Equals(right, types.FloatType) {
			return types.FloatType
		}
		if types.IsAny(left) || types.IsAny(right) {
			return types.AnyType
		}
		return types.IntegerType
	case "%", "&", "|", "^", "<<", ">>", ">>>":
		c.requireInteger(b.Left, left)
		c.requireInteger(b.Right, right)
		return types.IntegerType
	default:
		c.errorf(b.Pos(), "unsupported operator '%s'", b.Operator)
		return types.AnyType
	}
}

// requireComparable enforces equality operators' operand contract:
// either side `any`, matching boolean/string on both sides, or a
// subtype relation in either direction.
func (c *Checker) requireComparable(b *ast.BinaryExpression, left, right types.Type) {
	if types.IsAny(left) || types.IsAny(right) {
		return
	}
	if types.Equals(left, types.BooleanType) && types.Equals(right, types.BooleanType) {
		return
	}
	if types.Equals(left, types.StringType) && types.Equals(right, types.StringType) {
		return
	}
	if types.IsSubtype(left, right) || types.IsSubtype(right, left) {
		return
	}
	c.errorf(b.Pos(), "%s", msgIncomparableOperands(b.Operator, left.String(), right.String()))
}

// requireOrdered enforces relational operators' operand contract:
// numeric on both sides, string on both sides, or any involvement of
// `any`.
func (c *Checker) requireOrdered(b *ast.BinaryExpression, left, right types.Type) {
	if types.IsAny(left) || types.IsAny(right) {
		return
	}
	if types.IsNumeric(left) && types.IsNumeric(right) {
		return
	}
	if types.Equals(left, types.StringType) && types.Equals(right, types.StringType) {
		return
	}
	c.errorf(b.Pos(), "%s", msgNotOrdered(b.Operator, left.String(), right.String()))
}

// checkInstanceofExpression requires a non-primitive left operand and
// a right identifier naming an instance type, the literal `Array`, or
// the keyword `string`. The right identifier is a type reference, not
// a value expression, so it is resolved directly instead of through
// checkExpression.
func (c *Checker) checkInstanceofExpression(scope *symbols.Table, b *ast.BinaryExpression) types.Type {
	left := c.checkExpression(scope, b.Left)
	if !types.IsAny(left) && types.IsPrimitiveType(left) {
		c.errorf(b.Left.Pos(), "%s", msgInstanceofLeftPrimitive(left.String()))
	}

	right, ok := b.Right.(*ast.Identifier)
	if !ok {
		c.errorf(b.Right.Pos(), "operator 'instanceof' requires a type name on the right")
		return types.BooleanType
	}
	switch right.Name {
	case "Array":
		c.side.AddStaticType(right, types.NewArrayType(types.AnyType))
	case "string":
	default:
		if _, ok := scope.LookupClass(right.Name); !ok {
			c.errorf(right.Pos(), "%s", msgInstanceofRightInvalid(right.Name))
		}
	}
	return types.BooleanType
}

func (c *Checker) checkLogicalExpression(scope *symbols.Table, l *ast.LogicalExpression) types.Type {
	if l.Operator == "??" {
		c.errorf(l.Pos(), "'??' is not supported")
		c.checkExpression(scope, l.Left)
		c.checkExpression(scope, l.Right)
		return types.AnyType
	}
	leftType := c.checkExpression(scope, l.Left)
	c.coerceToBoolean(l.Left, leftType)
	rightType := c.checkExpression(scope, l.Right)
	c.coerceToBoolean(l.Right, rightType)
	return types.BooleanType
}

// checkAssignTarget rejects assignment to a constant, to a top-level
// function's name, and to any non-computed `.length` member, whatever
// the object's type.
func (c *Checker) checkAssignTarget(scope *symbols.Table, left ast.Expression) {
	switch t := left.(type) {
	case *ast.Identifier:
		info, ok := scope.Lookup(t.Name)
		if !ok {
			return
		}
		if info.IsConst {
			c.errorf(t.Pos(), "%s", msgAssignConstant)
			return
		}
		if info.IsFunction {
			c.errorf(t.Pos(), "%s", msgAssignTopLevelFunc)
		}
	case *ast.MemberExpression:
		if !t.Computed {
			if prop, ok := t.Property.(*ast.Identifier); ok && prop.Name == types.ArrayLengthMethod {
				c.errorf(t.Pos(), "%s", msgCannotChangeLength)
			}
		}
	}
}

func (c *Checker) checkAssignmentExpression(scope *symbols.Table, a *ast.AssignmentExpression) types.Type {
	leftType := c.checkExpression(scope, a.Left)
	c.checkAssignTarget(scope, a.Left)
	rightType := c.checkExpression(scope, a.Right)

	if a.Operator == "=" {
		c.checkAssignable(a.Right, rightType, c.assignmentTargetType(scope, a.Left, leftType))
		c.invalidateNarrowOnAssign(scope, a.Left, rightType)
		return leftType
	}

	op := strings.TrimSuffix(a.Operator, "=")
	switch op {
	case "&&", "||", "??", "**":
		c.errorf(a.Pos(), "%s", msgCompoundOperatorRejected(a.Operator))
		return leftType
	}

	var resultType types.Type = leftType
	switch op {
	case "+":
		if types.Equals(leftType, types.StringType) || types.Equals(rightType, types.StringType) {
			resultType = types.StringType
		} else {
			c.requireNumeric(a.Left, leftType)
			c.requireNumeric(a.Right, rightType)
		}
	case "-", "*", "/":
		c.requireNumeric(a.Left, leftType)
		c.requireNumeric(a.Right, rightType)
	case "%", "&", "|", "^", "<<", ">>", ">>>":
		c.requireInteger(a.Left, leftType)
		c.requireInteger(a.Right, rightType)
		resultType = types.IntegerType
	}
	c.checkAssignable(a.Right, resultType, leftType)
	return leftType
}

func (c *Checker) checkConditionalExpression(scope *symbols.Table, e *ast.ConditionalExpression) types.Type {
	testType := c.checkExpression(scope, e.Test)
	c.coerceToBoolean(e.Test, testType)
	consType := c.checkExpression(scope, e.Consequent)
	altType := c.checkExpression(scope, e.Alternate)
	common, ok := types.CommonSuperType(consType, altType)
	if !ok {
		c.errorf(e.Pos(), "branches of conditional expression have incompatible types '%s' and '%s'", consType.String(), altType.String())
		return types.AnyType
	}
	return common
}

func (c *Checker) checkMemberExpression(scope *symbols.Table, m *ast.MemberExpression) types.Type {
	objType := c.checkExpression(scope, m.Object)

	if m.Computed {
		idxType := c.checkExpression(scope, m.Property)
		if !types.IsSubtype(idxType, types.IntegerType) {
			if types.IsConsistent(idxType, types.IntegerType) {
				c.side.AddCoercionFlag(m.Property)
			} else {
				c.errorf(m.Property.Pos(), "array index must be integer, got '%s'", idxType.String())
			}
		}
		switch o := objType.(type) {
		case *types.ArrayType:
			return types.ActualElementType(o.Elem)
		case *types.InstanceType:
			if isByteArray(o) {
				return types.IntegerType
			}
		}
		if types.IsAny(objType) {
			return types.AnyType
		}
		c.errorf(m.Object.Pos(), "type '%s' does not support indexed access", objType.String())
		return types.AnyType
	}

	propName := m.Property.(*ast.Identifier).Name
	switch o := objType.(type) {
	case *types.ArrayType:
		if propName == types.ArrayLengthMethod {
			return types.IntegerType
		}
		c.errorf(m.Pos(), "array has no property '%s'", propName)
		return types.AnyType
	case *types.InstanceType:
		if isByteArray(o) && propName == types.ArrayLengthMethod {
			return types.IntegerType
		}
		if p, _, ok := types.LookupProperty(o, propName); ok {
			return p.Type
		}
		if meth, _, ok := types.LookupMethod(o, propName); ok {
			return meth.Func
		}
		c.errorf(m.Pos(), "%s", msgUnknownName(propName))
		return types.AnyType
	}
	if types.IsAny(objType) {
		return types.AnyType
	}
	c.errorf(m.Object.Pos(), "type '%s' has no property '%s'", objType.String(), propName)
	return types.AnyType
}

func (c *Checker) checkCallExpression(scope *symbols.Table, call *ast.CallExpression) types.Type {
	if _, isSuper := call.Callee.(*ast.SuperExpression); isSuper {
		return c.checkSuperCall(scope, call)
	}

	calleeType := c.checkExpression(scope, call.Callee)
	fnType, ok := calleeType.(*types.FunctionType)
	if !ok {
		for _, arg := range call.Arguments {
			c.checkExpression(scope, arg)
		}
		if types.IsAny(calleeType) {
			return types.AnyType
		}
		c.errorf(call.Pos(), "'%s' is not callable", calleeType.String())
		return types.AnyType
	}

	if len(call.Arguments) != len(fnType.Parameters) {
		c.errorf(call.Pos(), "%s", msgWrongArgCount)
	}
	for i, arg := range call.Arguments {
		argType := c.checkExpression(scope, arg)
		if i < len(fnType.Parameters) {
			c.checkAssignable(arg, argType, fnType.Parameters[i])
		}
	}
	return fnType.Return
}

func (c *Checker) checkNewExpression(scope *symbols.Table, n *ast.NewExpression) types.Type {
	if g, ok := n.Callee.(*ast.GenericType); ok && g.Name == "Array" {
		elem, err := c.resolveTypeAnnotation(scope, g.TypeArg)
		if err != nil {
			c.errorf(g.Pos(), "%s", err.Error())
			elem = types.AnyType
		}
		if len(n.Arguments) < 1 || len(n.Arguments) > 2 {
			c.errorf(n.Pos(), "%s", msgWrongArgCount)
		}
		if len(n.Arguments) >= 1 {
			lenType := c.checkExpression(scope, n.Arguments[0])
			c.checkAssignable(n.Arguments[0], lenType, types.IntegerType)
		}
		if len(n.Arguments) >= 2 {
			initType := c.checkExpression(scope, n.Arguments[1])
			c.checkAssignable(n.Arguments[1], initType, elem)
		}
		return types.NewArrayType(elem)
	}

	named, ok := n.Callee.(*ast.NamedType)
	if !ok {
		c.errorf(n.Pos(), "invalid constructor target")
		for _, a := range n.Arguments {
			c.checkExpression(scope, a)
		}
		return types.AnyType
	}
	inst, ok := scope.LookupClass(named.Name)
	if !ok {
		c.errorf(n.Pos(), "%s", msgUnknownTypeName(named.Name))
		for _, a := range n.Arguments {
			c.checkExpression(scope, a)
		}
		return types.AnyType
	}

	ctor, _, hasCtor := types.LookupMethod(inst, "constructor")
	if !hasCtor {
		if len(n.Arguments) != 0 {
			c.errorf(n.Pos(), "%s", msgWrongArgCount)
		}
		for _, a := range n.Arguments {
			c.checkExpression(scope, a)
		}
		return inst
	}
	if len(n.Arguments) != len(ctor.Func.Parameters) {
		c.errorf(n.Pos(), "%s", msgWrongArgCount)
	}
	for i, a := range n.Arguments {
		at := c.checkExpression(scope, a)
		if i < len(ctor.Func.Parameters) {
			c.checkAssignable(a, at, ctor.Func.Parameters[i])
		}
	}
	return inst
}

func (c *Checker) checkFunctionExpression(scope *symbols.Table, f *ast.FunctionExpression) types.Type {
	fnType, err := c.buildFunctionType(scope, f.Params, f.ReturnType)
	if err != nil {
		c.errorf(f.Pos(), "%s", err.Error())
		fnType = types.NewFunctionType(types.AnyType, nil)
	}
	c.checkFunctionBody(scope, f.Params, fnType, f.ReturnType != nil, f.Body)
	return fnType
}

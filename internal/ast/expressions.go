package ast

// Identifier is a bare name reference: a variable, function, class,
// or (as a special case) the literal `undefined`, which resolves to
// the unified null type rather than failing a name lookup.
type Identifier struct {
	Position Position
	Name     string
}

func (i *Identifier) Pos() Position    { return i.Position }
func (i *Identifier) String() string   { return i.Name }
func (i *Identifier) expressionNode()  {}

// NumericLiteral is an integer or float constant. IsInteger reflects
// the raw lexical form (decimal/hex integer syntax), not the value —
// `1.0` is a float literal even though its value is integral.
type NumericLiteral struct {
	Position  Position
	Raw       string
	IsInteger bool
}

func (n *NumericLiteral) Pos() Position   { return n.Position }
func (n *NumericLiteral) String() string  { return n.Raw }
func (n *NumericLiteral) expressionNode() {}

type StringLiteral struct {
	Position Position
	Value    string
}

func (s *StringLiteral) Pos() Position   { return s.Position }
func (s *StringLiteral) String() string  { return s.Value }
func (s *StringLiteral) expressionNode() {}

type BooleanLiteral struct {
	Position Position
	Value    bool
}

func (b *BooleanLiteral) Pos() Position   { return b.Position }
func (b *BooleanLiteral) String() string  { return "bool" }
func (b *BooleanLiteral) expressionNode() {}

// NullLiteral is the `null` keyword. Like the `undefined` identifier
// it types as the unified null type (spec.md §3: "null and undefined
// are unified into a single null type").
type NullLiteral struct {
	Position Position
}

func (n *NullLiteral) Pos() Position   { return n.Position }
func (n *NullLiteral) String() string  { return "null" }
func (n *NullLiteral) expressionNode() {}

type ThisExpression struct {
	Position Position
}

func (t *ThisExpression) Pos() Position   { return t.Position }
func (t *ThisExpression) String() string  { return "this" }
func (t *ThisExpression) expressionNode() {}

// SuperExpression only ever appears as the callee of a CallExpression
// inside a constructor body (spec.md §4.5/§4.6).
type SuperExpression struct {
	Position Position
}

func (s *SuperExpression) Pos() Position   { return s.Position }
func (s *SuperExpression) String() string  { return "super" }
func (s *SuperExpression) expressionNode() {}

// UnaryExpression covers +, -, !, ~, typeof. void/delete/throw-as-
// expression are parsed into this node too so the checker has a
// single place to reject them (spec.md §4.5).
type UnaryExpression struct {
	Position Position
	Operator string
	Argument Expression
}

func (u *UnaryExpression) Pos() Position   { return u.Position }
func (u *UnaryExpression) String() string  { return u.Operator + " " + u.Argument.String() }
func (u *UnaryExpression) expressionNode() {}

// UpdateExpression covers ++ and --, prefix or postfix.
type UpdateExpression struct {
	Position Position
	Operator string
	Argument Expression
	Prefix   bool
}

func (u *UpdateExpression) Pos() Position   { return u.Position }
func (u *UpdateExpression) String() string  { return u.Operator + u.Argument.String() }
func (u *UpdateExpression) expressionNode() {}

// BinaryExpression covers arithmetic, relational, equality, bitwise,
// shift, and `instanceof`.
type BinaryExpression struct {
	Position Position
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) Pos() Position  { return b.Position }
func (b *BinaryExpression) String() string { return b.Left.String() + " " + b.Operator + " " + b.Right.String() }
func (b *BinaryExpression) expressionNode() {}

// LogicalExpression covers &&, ||, and the rejected ??.
type LogicalExpression struct {
	Position Position
	Operator string
	Left     Expression
	Right    Expression
}

func (l *LogicalExpression) Pos() Position  { return l.Position }
func (l *LogicalExpression) String() string { return l.Left.String() + " " + l.Operator + " " + l.Right.String() }
func (l *LogicalExpression) expressionNode() {}

// AssignmentExpression covers `=` and the compound-assignment family.
type AssignmentExpression struct {
	Position Position
	Operator string
	Left     Expression
	Right    Expression
}

func (a *AssignmentExpression) Pos() Position  { return a.Position }
func (a *AssignmentExpression) String() string { return a.Left.String() + " " + a.Operator + " " + a.Right.String() }
func (a *AssignmentExpression) expressionNode() {}

type ConditionalExpression struct {
	Position   Position
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) Pos() Position   { return c.Position }
func (c *ConditionalExpression) String() string  { return c.Test.String() + " ? ... : ..." }
func (c *ConditionalExpression) expressionNode() {}

// MemberExpression is `o.p` (Computed == false, Property is an
// *Identifier) or `o[i]` (Computed == true, Property is any
// Expression).
type MemberExpression struct {
	Position Position
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpression) Pos() Position { return m.Position }
func (m *MemberExpression) String() string {
	if m.Computed {
		return m.Object.String() + "[" + m.Property.String() + "]"
	}
	return m.Object.String() + "." + m.Property.String()
}
func (m *MemberExpression) expressionNode() {}

// CallExpression also represents `super(...)` (Callee is a
// *SuperExpression in that case).
type CallExpression struct {
	Position  Position
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) Pos() Position   { return c.Position }
func (c *CallExpression) String() string  { return c.Callee.String() + "(...)" }
func (c *CallExpression) expressionNode() {}

// NewExpression is `new ClassName(args...)` or the builtin array form
// `new Array<T>(n)` / `new Array<T>(n, init)`.
type NewExpression struct {
	Position  Position
	Callee    TypeAnnotation
	Arguments []Expression
}

func (n *NewExpression) Pos() Position   { return n.Position }
func (n *NewExpression) String() string  { return "new " + n.Callee.String() + "(...)" }
func (n *NewExpression) expressionNode() {}

// Param is a function/method/lambda parameter.
type Param struct {
	Position Position
	Name     *Identifier
	Type     TypeAnnotation
}

// FunctionExpression covers both arrow lambdas and named function
// expressions used as values; FunctionDeclaration (statements.go)
// covers the top-level declaration form.
type FunctionExpression struct {
	Position   Position
	Params     []*Param
	ReturnType TypeAnnotation // nil if undeclared (inferred from the first return)
	Body       *BlockStatement
}

func (f *FunctionExpression) Pos() Position   { return f.Position }
func (f *FunctionExpression) String() string  { return "function(...)" }
func (f *FunctionExpression) expressionNode() {}

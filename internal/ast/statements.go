package ast

// BlockStatement introduces a block scope (§4.2): its side-table entry
// is the fresh block symbol table built in pass 2.
type BlockStatement struct {
	Position Position
	Body     []Statement
}

func (b *BlockStatement) Pos() Position  { return b.Position }
func (b *BlockStatement) String() string { return "{ ... }" }
func (b *BlockStatement) statementNode() {}

type ExpressionStatement struct {
	Position   Position
	Expression Expression
}

func (e *ExpressionStatement) Pos() Position  { return e.Position }
func (e *ExpressionStatement) String() string { return e.Expression.String() }
func (e *ExpressionStatement) statementNode() {}

// VariableDeclaration is `let`/`const` with an optional declared type
// and an optional initializer.
type VariableDeclaration struct {
	Position Position
	Const    bool
	Name     *Identifier
	Type     TypeAnnotation // nil if the type must be inferred from Init
	Init     Expression     // nil if uninitialized
}

func (v *VariableDeclaration) Pos() Position  { return v.Position }
func (v *VariableDeclaration) String() string { return "var " + v.Name.Name }
func (v *VariableDeclaration) statementNode() {}

// FunctionDeclaration is a top-level named function. Nested function
// declarations are rejected by the checker (spec.md §4.2).
type FunctionDeclaration struct {
	Position   Position
	Name       *Identifier
	Params     []*Param
	ReturnType TypeAnnotation // nil if undeclared (inferred from the first return)
	Body       *BlockStatement
}

func (f *FunctionDeclaration) Pos() Position  { return f.Position }
func (f *FunctionDeclaration) String() string { return "function " + f.Name.Name }
func (f *FunctionDeclaration) statementNode() {}

type ReturnStatement struct {
	Position Position
	Argument Expression // nil for a bare `return;`
}

func (r *ReturnStatement) Pos() Position  { return r.Position }
func (r *ReturnStatement) String() string { return "return ..." }
func (r *ReturnStatement) statementNode() {}

type IfStatement struct {
	Position   Position
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if there is no else branch
}

func (i *IfStatement) Pos() Position  { return i.Position }
func (i *IfStatement) String() string { return "if (...) ..." }
func (i *IfStatement) statementNode() {}

// WhileStatement introduces a block scope for narrowing purposes even
// though the body itself may be a single statement (spec.md §4.5:
// narrowing preserved across while/for bodies on the narrowed side).
type WhileStatement struct {
	Position Position
	Test     Expression
	Body     Statement
}

func (w *WhileStatement) Pos() Position  { return w.Position }
func (w *WhileStatement) String() string { return "while (...) ..." }
func (w *WhileStatement) statementNode() {}

// ForStatement is the C-style three-clause form. Init may be a
// VariableDeclaration or an ExpressionStatement's Expression; Test and
// Update may be nil.
type ForStatement struct {
	Position Position
	Init     Statement
	Test     Expression
	Update   Expression
	Body     Statement
}

func (f *ForStatement) Pos() Position  { return f.Position }
func (f *ForStatement) String() string { return "for (...) ..." }
func (f *ForStatement) statementNode() {}

// ImportDeclaration is valid only at the top level of a file and only
// during pass 1 (spec.md §4.2, §4.7).
type ImportDeclaration struct {
	Position Position
	Names    []*Identifier
	Source   string
}

func (i *ImportDeclaration) Pos() Position  { return i.Position }
func (i *ImportDeclaration) String() string { return "import { ... } from " + i.Source }
func (i *ImportDeclaration) statementNode() {}

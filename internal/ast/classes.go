package ast

// ClassMember is a property or method inside a ClassDeclaration body.
type ClassMember interface {
	Node
	classMemberNode()
}

// PropertyDeclaration declares an instance field. Properties with no
// initializer and no assignment in the constructor are flagged by the
// constructor validator (spec.md §4.6).
type PropertyDeclaration struct {
	Position Position
	Name     *Identifier
	Type     TypeAnnotation
}

func (p *PropertyDeclaration) Pos() Position   { return p.Position }
func (p *PropertyDeclaration) String() string  { return p.Name.Name + ": " + p.Type.String() }
func (p *PropertyDeclaration) classMemberNode() {}

// MethodDefinition is a method or, when IsConstructor is set, the
// class constructor. Getter/setter kinds are rejected outright
// (spec.md §1, §9 open question).
type MethodDefinition struct {
	Position      Position
	Name          *Identifier
	Params        []*Param
	ReturnType    TypeAnnotation
	Body          *BlockStatement
	IsConstructor bool
	IsAccessor    bool // get/set — always rejected by the checker
}

func (m *MethodDefinition) Pos() Position { return m.Position }
func (m *MethodDefinition) String() string {
	if m.IsConstructor {
		return "constructor(...)"
	}
	return m.Name.Name + "(...)"
}
func (m *MethodDefinition) classMemberNode() {}

// ClassDeclaration is rejected unless it appears at the top level of
// the file (spec.md §4.5). `implements` and `abstract` are not
// represented here at all — the parser never produces them for this
// subset, matching the rejections in spec.md §1/§4.5.
type ClassDeclaration struct {
	Position   Position
	Name       *Identifier
	SuperClass *Identifier // nil: the class extends the root object type
	Body       []ClassMember
}

func (c *ClassDeclaration) Pos() Position  { return c.Position }
func (c *ClassDeclaration) String() string { return "class " + c.Name.Name }
func (c *ClassDeclaration) statementNode() {}

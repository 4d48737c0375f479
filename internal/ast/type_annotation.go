package ast

// TypeAnnotation is the source-level spelling of a static type: a
// keyword or class name, optionally parameterized (`Array<T>`), or a
// two-way union with `null`/`undefined` (`T | null`). The checker
// resolves a TypeAnnotation into a types.Type, possibly once per pass
// for the same node; it never modifies the annotation, which the
// parser owns.
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
}

// NamedType is a bare identifier type: `integer`, `string`, `MyClass`,
// `any`, `void`, `null`, or `undefined`. A bare `Array` without type
// arguments is not a valid NamedType; the right operand of
// `instanceof` is an *Identifier, not a type annotation.
type NamedType struct {
	Position Position
	Name     string
}

func (t *NamedType) Pos() Position      { return t.Position }
func (t *NamedType) String() string     { return t.Name }
func (t *NamedType) typeAnnotationNode() {}

// GenericType is `Array<T>` — the only generic form the language
// supports (spec.md §1 Non-goals: no general generic instantiation).
type GenericType struct {
	Position  Position
	Name      string // always "Array"
	TypeArg   TypeAnnotation
}

func (t *GenericType) Pos() Position      { return t.Position }
func (t *GenericType) String() string     { return t.Name + "<" + t.TypeArg.String() + ">" }
func (t *GenericType) typeAnnotationNode() {}

// UnionType is `T | null` or `null | T` — the only union cardinality
// and shape the type-constructor accepts (spec.md §4.1).
type UnionType struct {
	Position Position
	Left     TypeAnnotation
	Right    TypeAnnotation
}

func (t *UnionType) Pos() Position      { return t.Position }
func (t *UnionType) String() string     { return t.Left.String() + " | " + t.Right.String() }
func (t *UnionType) typeAnnotationNode() {}

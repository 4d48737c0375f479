// Package types implements the static type lattice (spec.md §3/§4.1,
// component A): primitive scalars, object/instance types, function
// types, array types, and optional types, plus the subtype,
// consistency, common-supertype, and unboxed-representation relations
// the checker needs.
//
// Every value other than an InstanceType under construction is
// immutable once built and may be shared by reference across many AST
// annotations (spec.md §5).
package types

// Type is implemented by every member of the lattice. It is a sealed
// interface — only the variants in this package implement it.
type Type interface {
	String() string
	sealedType()
}

// PrimitiveKind enumerates the scalar primitive types.
type PrimitiveKind int

const (
	Integer PrimitiveKind = iota
	Float
	Boolean
	String
	Void
	// Null is the single unified absence type: `null` and `undefined`
	// annotations and literals both resolve here (spec.md §3, §9).
	Null
	// Any denotes a dynamically-typed value; it is the top of the
	// consistency relation and a valid answer for CommonSuperType.
	Any
)

func (k PrimitiveKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Void:
		return "void"
	case Null:
		return "null"
	case Any:
		return "any"
	default:
		return "?"
	}
}

// Primitive is a scalar type. There is exactly one Primitive value per
// PrimitiveKind; use the package-level singletons below rather than
// constructing a Primitive directly, so `==` comparison works.
type Primitive struct {
	Kind PrimitiveKind
}

func (p *Primitive) String() string { return p.Kind.String() }
func (p *Primitive) sealedType()     {}

var (
	IntegerType = &Primitive{Kind: Integer}
	FloatType   = &Primitive{Kind: Float}
	BooleanType = &Primitive{Kind: Boolean}
	StringType  = &Primitive{Kind: String}
	VoidType    = &Primitive{Kind: Void}
	NullType    = &Primitive{Kind: Null}
	AnyType     = &Primitive{Kind: Any}
)

// ObjectType is the structural root of every instance type: the
// implicit superclass of a class declared with no `extends` clause.
type ObjectType struct{}

func (o *ObjectType) String() string { return "object" }
func (o *ObjectType) sealedType()     {}

// Object is the sole ObjectType instance.
var Object = &ObjectType{}

// IsPrimitiveType reports whether t is one of the scalar kinds
// enumerated above (spec.md §3).
func IsPrimitiveType(t Type) bool {
	_, ok := t.(*Primitive)
	return ok
}

// IsNumeric reports whether t is integer or float (spec.md §3).
func IsNumeric(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p.Kind == Integer || p.Kind == Float)
}

// IsAny reports whether t is the dynamic `any` type.
func IsAny(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Kind == Any
}

// IsNull reports whether t is the unified null type.
func IsNull(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Kind == Null
}

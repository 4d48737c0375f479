package types

// ArrayLengthMethod is the distinguished read-only member every array
// type exposes (spec.md §3, §4.5).
const ArrayLengthMethod = "length"

// ArrayType is a homogeneous array parameterized by its element type.
// Array types are invariant (spec.md §4.1: "a design choice that
// preserves soundness with mutable element assignment").
type ArrayType struct {
	Elem Type
}

func NewArrayType(elem Type) *ArrayType {
	return &ArrayType{Elem: elem}
}

func (a *ArrayType) String() string { return "Array<" + a.Elem.String() + ">" }
func (a *ArrayType) sealedType()     {}

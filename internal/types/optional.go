package types

import "fmt"

// OptionalType wraps a non-null, non-any, non-optional element type;
// its value set is element ∪ {null} (spec.md §3).
type OptionalType struct {
	Elem Type
}

// NewOptionalType validates the constructor-level rejections of
// spec.md §4.1 before building an OptionalType: `optional any` and
// `optional optional T` are both errors.
func NewOptionalType(elem Type) (*OptionalType, error) {
	if IsAny(elem) {
		return nil, fmt.Errorf("only optional types are supported -- cannot make 'any' optional")
	}
	if _, nested := elem.(*OptionalType); nested {
		return nil, fmt.Errorf("only optional types are supported -- cannot nest optional types")
	}
	if IsNull(elem) {
		return nil, fmt.Errorf("only optional types are supported -- 'null' cannot be made optional")
	}
	return &OptionalType{Elem: elem}, nil
}

func (o *OptionalType) String() string { return o.Elem.String() + " | null" }
func (o *OptionalType) sealedType()     {}

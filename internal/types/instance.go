package types

// PropertyInfo is one entry of an instance type's ordered property
// table. Index is assigned in declaration order, reassigned once by
// Seal, and fixed from then on; it is what ActualElementType-style boxing
// decisions (see relations.go) are computed against.
type PropertyInfo struct {
	Name  string
	Type  Type
	Index int
}

// MethodInfo is one entry of an instance type's method table.
type MethodInfo struct {
	Name  string
	Func  *FunctionType
	Index int
}

// InstanceType is a named class. It is built incrementally while the
// checker visits the class declaration (properties/methods appended
// in source order) and then frozen by Seal, which sorts properties so
// that every unboxed-primitive-typed property sits below
// UnboxedCutoff and computes that cutoff (spec.md §3, §4.1).
type InstanceType struct {
	Name       string
	Super      Type // *InstanceType or Object; never nil once resolved
	properties []*PropertyInfo
	propIndex  map[string]int
	methods    map[string]*MethodInfo

	// Leaf marks a class that cannot be extended. The only builtin
	// leaf type is the byte-array class installed by the driver
	// (spec.md §4.8).
	Leaf bool

	// UnboxedCutoff is the number of leading properties (by Index)
	// stored in an unboxed representation. Valid only after Seal.
	UnboxedCutoff int

	sealed bool
}

// NewInstanceType creates an unsealed instance type with the given
// super type (Object if the class declares no `extends`).
func NewInstanceType(name string, super Type) *InstanceType {
	return &InstanceType{
		Name:      name,
		Super:     super,
		propIndex: make(map[string]int),
		methods:   make(map[string]*MethodInfo),
	}
}

func (t *InstanceType) String() string { return t.Name }
func (t *InstanceType) sealedType()     {}

// AddProperty appends a property declaration. It returns false if the
// name is already declared on this type (the caller reports the
// duplicate-name diagnostic).
func (t *InstanceType) AddProperty(name string, typ Type) bool {
	if _, exists := t.propIndex[name]; exists {
		return false
	}
	idx := len(t.properties)
	info := &PropertyInfo{Name: name, Type: typ, Index: idx}
	t.properties = append(t.properties, info)
	t.propIndex[name] = idx
	return true
}

// AddMethod registers a method (or constructor, under the conventional
// name "constructor"). Returns false on a duplicate name.
func (t *InstanceType) AddMethod(name string, fn *FunctionType) bool {
	if _, exists := t.methods[name]; exists {
		return false
	}
	t.methods[name] = &MethodInfo{Name: name, Func: fn, Index: len(t.methods)}
	return true
}

// Property looks up a property declared directly on t (not walking
// Super); callers that need inherited lookup use LookupProperty.
func (t *InstanceType) Property(name string) (*PropertyInfo, bool) {
	idx, ok := t.propIndex[name]
	if !ok {
		return nil, false
	}
	return t.properties[idx], true
}

// Method looks up a method declared directly on t.
func (t *InstanceType) Method(name string) (*MethodInfo, bool) {
	m, ok := t.methods[name]
	return m, ok
}

// LookupProperty walks the superclass chain.
func LookupProperty(t *InstanceType, name string) (*PropertyInfo, *InstanceType, bool) {
	for cur := t; cur != nil; {
		if p, ok := cur.Property(name); ok {
			return p, cur, true
		}
		super, ok := cur.Super.(*InstanceType)
		if !ok {
			break
		}
		cur = super
	}
	return nil, nil, false
}

// LookupMethod walks the superclass chain.
func LookupMethod(t *InstanceType, name string) (*MethodInfo, *InstanceType, bool) {
	for cur := t; cur != nil; {
		if m, ok := cur.Method(name); ok {
			return m, cur, true
		}
		super, ok := cur.Super.(*InstanceType)
		if !ok {
			break
		}
		cur = super
	}
	return nil, nil, false
}

// Properties returns the declared (not inherited) properties in Index
// order: declaration order before Seal, unboxed-first order after it.
func (t *InstanceType) Properties() []*PropertyInfo { return t.properties }

// Sealed reports whether Seal has run.
func (t *InstanceType) Sealed() bool { return t.sealed }

// Seal freezes the property order: properties whose declared type is
// an unboxed primitive (integer, float, boolean) are moved to the
// front, in their original relative order, followed by the rest; the
// count of leading unboxed properties becomes UnboxedCutoff. This
// models the runtime's unboxed-vs-tagged-slot representation (spec.md
// §4.1) and must run exactly once, at the end of the class's
// declaration visit (spec.md §5).
func (t *InstanceType) Seal() {
	if t.sealed {
		return
	}
	unboxed := make([]*PropertyInfo, 0, len(t.properties))
	boxed := make([]*PropertyInfo, 0, len(t.properties))
	for _, p := range t.properties {
		if isUnboxedPrimitive(p.Type) {
			unboxed = append(unboxed, p)
		} else {
			boxed = append(boxed, p)
		}
	}
	ordered := append(unboxed, boxed...)
	for i, p := range ordered {
		p.Index = i
		t.propIndex[p.Name] = i
	}
	t.properties = ordered
	t.UnboxedCutoff = len(unboxed)
	t.sealed = true
}

func isUnboxedPrimitive(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p.Kind == Integer || p.Kind == Float || p.Kind == Boolean)
}

// IsBoxedProperty reports whether a property access at the given
// index returns a tagged slot requiring a runtime adapter when read
// (spec.md §4.5, member access rule).
func (t *InstanceType) IsBoxedProperty(index int) bool {
	return index >= t.UnboxedCutoff
}

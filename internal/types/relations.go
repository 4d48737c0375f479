package types

// Equals is structural equality over the lattice: identical for
// primitives and Object, by identity for instance types (instance
// types are never duplicated — one InstanceType value per declared class),
// and recursively for the composite shapes.
func Equals(s, t Type) bool {
	if s == t {
		return true
	}
	switch a := s.(type) {
	case *Primitive:
		b, ok := t.(*Primitive)
		return ok && a.Kind == b.Kind
	case *ObjectType:
		_, ok := t.(*ObjectType)
		return ok
	case *InstanceType:
		b, ok := t.(*InstanceType)
		return ok && a == b
	case *ArrayType:
		b, ok := t.(*ArrayType)
		return ok && Equals(a.Elem, b.Elem)
	case *OptionalType:
		b, ok := t.(*OptionalType)
		return ok && Equals(a.Elem, b.Elem)
	case *FunctionType:
		b, ok := t.(*FunctionType)
		if !ok || len(a.Parameters) != len(b.Parameters) {
			return false
		}
		if !Equals(a.Return, b.Return) {
			return false
		}
		for i := range a.Parameters {
			if !Equals(a.Parameters[i], b.Parameters[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsSubtype implements spec.md §4.1's subtype relation: reflexive;
// primitives only subtype themselves; instance types subtype along
// the declared superclass chain; function types are contravariant in
// parameters and covariant in return type; array types are invariant;
// T is a subtype of `optional T` for every T other than a function
// type; `null` is a subtype of every
// optional type (it is a member of the optional's value set by
// construction).
func IsSubtype(s, t Type) bool {
	if Equals(s, t) {
		return true
	}

	switch st := s.(type) {
	case *InstanceType:
		for cur := st.Super; cur != nil; {
			if Equals(cur, t) {
				return true
			}
			next, ok := cur.(*InstanceType)
			if !ok {
				break
			}
			cur = next.Super
		}
		// Every instance type is, transitively, a subtype of Object.
		if _, ok := t.(*ObjectType); ok {
			return true
		}
	case *FunctionType:
		tf, ok := t.(*FunctionType)
		if !ok || len(st.Parameters) != len(tf.Parameters) {
			return false
		}
		if !IsSubtype(st.Return, tf.Return) {
			return false
		}
		for i := range st.Parameters {
			// contravariant: the target's parameter type must accept
			// everything the source's parameter type accepts.
			if !IsSubtype(tf.Parameters[i], st.Parameters[i]) {
				return false
			}
		}
		return true
	case *ArrayType:
		if ta, ok := t.(*ArrayType); ok {
			return Equals(st.Elem, ta.Elem)
		}
	case *Primitive:
		if st.Kind == Null {
			if _, ok := t.(*OptionalType); ok {
				return true
			}
		}
	case *OptionalType:
		to, ok := t.(*OptionalType)
		return ok && IsSubtype(st.Elem, to.Elem)
	}

	if to, ok := t.(*OptionalType); ok {
		return IsSubtype(s, to.Elem)
	}
	return false
}

// IsConsistent implements the gradual-typing compatibility relation
// (spec.md §4.1): true whenever `any` is involved on either side, or
// the two types are equal. The checker uses this to decide whether an
// implicit runtime coercion can paper over a static mismatch instead
// of raising an error.
func IsConsistent(s, t Type) bool {
	if IsAny(s) || IsAny(t) {
		return true
	}
	return Equals(s, t)
}

// CommonSuperType implements spec.md §4.1: the smallest type that is a
// supertype of both s and t. `any` is always a valid fallback answer
// except when s and t are two disagreeing non-null primitives that are
// not both numeric, in which case there is no acceptable common type
// and ok is false.
func CommonSuperType(s, t Type) (result Type, ok bool) {
	if Equals(s, t) {
		return s, true
	}
	if IsAny(s) || IsAny(t) {
		return AnyType, true
	}

	sp, sPrim := s.(*Primitive)
	tp, tPrim := t.(*Primitive)
	if sPrim && tPrim && !IsNull(s) && !IsNull(t) {
		if IsNumeric(s) && IsNumeric(t) {
			return FloatType, true
		}
		_ = sp
		_ = tp
		return nil, false
	}

	// null paired with an optional, or with a type that can be made
	// optional, widens to that optional type.
	if IsNull(s) {
		return commonWithNull(t)
	}
	if IsNull(t) {
		return commonWithNull(s)
	}

	if so, ok := s.(*OptionalType); ok {
		if to, ok2 := t.(*OptionalType); ok2 {
			if inner, ok3 := CommonSuperType(so.Elem, to.Elem); ok3 {
				if opt, err := NewOptionalType(inner); err == nil {
					return opt, true
				}
			}
			return AnyType, true
		}
		if inner, ok2 := CommonSuperType(so.Elem, t); ok2 {
			if Equals(inner, so.Elem) {
				return s, true
			}
		}
		return AnyType, true
	}
	if to, ok := t.(*OptionalType); ok {
		return CommonSuperType(to, s)
	}

	if si, sok := s.(*InstanceType); sok {
		if ti, tok := t.(*InstanceType); tok {
			if anc, found := nearestCommonAncestor(si, ti); found {
				return anc, true
			}
		}
		return AnyType, true
	}

	// Function/array structural mismatches, or primitive-vs-composite
	// mismatches: `any` is the fallback valid answer.
	return AnyType, true
}

func commonWithNull(t Type) (Type, bool) {
	if opt, ok := t.(*OptionalType); ok {
		return opt, true
	}
	if IsAny(t) {
		return AnyType, true
	}
	if IsNull(t) {
		return NullType, true
	}
	if opt, err := NewOptionalType(t); err == nil {
		return opt, true
	}
	return AnyType, true
}

func nearestCommonAncestor(a, b *InstanceType) (Type, bool) {
	ancestors := map[*InstanceType]bool{}
	for cur := a; cur != nil; {
		ancestors[cur] = true
		next, ok := cur.Super.(*InstanceType)
		if !ok {
			break
		}
		cur = next
	}
	for cur := b; ; {
		if cur != nil && ancestors[cur] {
			return cur, true
		}
		if cur == nil {
			break
		}
		next, ok := cur.Super.(*InstanceType)
		if !ok {
			return Object, true
		}
		cur = next
	}
	return Object, true
}

// ActualElementType is the storage-level type seen when reading an
// array element (spec.md §3, §4.1): `any` for optional or object
// element types (they are tagged slots at runtime), otherwise the
// element type itself (unboxed primitive arrays are stored flat).
func ActualElementType(elem Type) Type {
	switch elem.(type) {
	case *OptionalType, *InstanceType, *ObjectType:
		return AnyType
	default:
		return elem
	}
}

package types_test

import (
	"testing"

	"github.com/cwbudde/go-tsc/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestIsSubtypePrimitives(t *testing.T) {
	cases := []struct {
		name string
		s, t types.Type
		want bool
	}{
		{"integer/integer", types.IntegerType, types.IntegerType, true},
		{"integer/float", types.IntegerType, types.FloatType, false},
		{"null/optional-integer", types.NullType, mustOptional(t, types.IntegerType), true},
		{"integer/optional-integer", types.IntegerType, mustOptional(t, types.IntegerType), true},
		{"string/any", types.StringType, types.AnyType, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, types.IsSubtype(c.s, c.t))
		})
	}
}

func TestIsSubtypeInstances(t *testing.T) {
	base := types.NewInstanceType("Animal", types.Object)
	base.Seal()
	derived := types.NewInstanceType("Dog", base)
	derived.Seal()

	assert.True(t, types.IsSubtype(derived, base))
	assert.True(t, types.IsSubtype(derived, types.Object))
	assert.False(t, types.IsSubtype(base, derived))
}

func TestIsSubtypeFunctionVariance(t *testing.T) {
	base := types.NewInstanceType("Animal", types.Object)
	base.Seal()
	derived := types.NewInstanceType("Dog", base)
	derived.Seal()

	// (Dog) => Dog is a subtype of (Animal) => Animal? No: params are
	// contravariant, so the narrower-param function is NOT a subtype
	// of the wider-param one unless the wider accepts the narrower's
	// argument. (Animal) => Dog IS a subtype of (Animal) => Animal.
	wide := types.NewFunctionType(base, []types.Type{base})
	narrowReturn := types.NewFunctionType(derived, []types.Type{base})
	assert.True(t, types.IsSubtype(narrowReturn, wide))

	narrowParam := types.NewFunctionType(base, []types.Type{derived})
	assert.False(t, types.IsSubtype(narrowParam, wide))
}

func TestIsConsistent(t *testing.T) {
	assert.True(t, types.IsConsistent(types.AnyType, types.IntegerType))
	assert.True(t, types.IsConsistent(types.StringType, types.AnyType))
	assert.True(t, types.IsConsistent(types.IntegerType, types.IntegerType))
	assert.False(t, types.IsConsistent(types.IntegerType, types.StringType))
}

func TestCommonSuperTypeNumeric(t *testing.T) {
	result, ok := types.CommonSuperType(types.IntegerType, types.FloatType)
	assert.True(t, ok)
	assert.Same(t, types.FloatType, result)
}

func TestCommonSuperTypeDisagreeingPrimitives(t *testing.T) {
	_, ok := types.CommonSuperType(types.StringType, types.BooleanType)
	assert.False(t, ok)
}

func TestCommonSuperTypeInstanceAncestor(t *testing.T) {
	base := types.NewInstanceType("Animal", types.Object)
	base.Seal()
	dog := types.NewInstanceType("Dog", base)
	dog.Seal()
	cat := types.NewInstanceType("Cat", base)
	cat.Seal()

	result, ok := types.CommonSuperType(dog, cat)
	assert.True(t, ok)
	assert.Same(t, base, result)
}

func TestCommonSuperTypeNullWidensToOptional(t *testing.T) {
	result, ok := types.CommonSuperType(types.NullType, types.StringType)
	assert.True(t, ok)
	opt, isOpt := result.(*types.OptionalType)
	assert.True(t, isOpt)
	assert.Same(t, types.StringType, opt.Elem)
}

func TestActualElementType(t *testing.T) {
	assert.Same(t, types.IntegerType, types.ActualElementType(types.IntegerType))
	assert.Same(t, types.AnyType, types.ActualElementType(types.NewInstanceType("Foo", types.Object)))
	opt := mustOptional(t, types.IntegerType)
	assert.Same(t, types.AnyType, types.ActualElementType(opt))
}

func mustOptional(t *testing.T, elem types.Type) *types.OptionalType {
	t.Helper()
	opt, err := types.NewOptionalType(elem)
	if err != nil {
		t.Fatalf("NewOptionalType(%v): %v", elem, err)
	}
	return opt
}

package types_test

import (
	"testing"

	"github.com/cwbudde/go-tsc/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestInstanceTypeSealOrdersUnboxedFirst(t *testing.T) {
	it := types.NewInstanceType("Point", types.Object)
	it.AddProperty("label", types.StringType) // boxed
	it.AddProperty("x", types.IntegerType)     // unboxed
	it.AddProperty("y", types.FloatType)       // unboxed
	it.AddProperty("tag", types.NewInstanceType("Tag", types.Object)) // boxed

	it.Seal()

	assert.Equal(t, 2, it.UnboxedCutoff)
	names := make([]string, len(it.Properties()))
	for i, p := range it.Properties() {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"x", "y", "label", "tag"}, names)

	assert.False(t, it.IsBoxedProperty(0))
	assert.False(t, it.IsBoxedProperty(1))
	assert.True(t, it.IsBoxedProperty(2))
	assert.True(t, it.IsBoxedProperty(3))
}

func TestInstanceTypeSealIsIdempotent(t *testing.T) {
	it := types.NewInstanceType("Point", types.Object)
	it.AddProperty("x", types.IntegerType)
	it.Seal()
	cutoff := it.UnboxedCutoff
	it.AddProperty("extra", types.StringType) // added after Seal; the second Seal does not re-sort
	it.Seal()
	assert.Equal(t, cutoff, it.UnboxedCutoff)
}

func TestLookupPropertyWalksSuperclassChain(t *testing.T) {
	base := types.NewInstanceType("Base", types.Object)
	base.AddProperty("id", types.IntegerType)
	base.Seal()

	derived := types.NewInstanceType("Derived", base)
	derived.AddProperty("name", types.StringType)
	derived.Seal()

	p, owner, ok := types.LookupProperty(derived, "id")
	assert.True(t, ok)
	assert.Same(t, base, owner)
	assert.Equal(t, types.IntegerType, p.Type)

	_, _, ok = types.LookupProperty(derived, "missing")
	assert.False(t, ok)
}

func TestAddPropertyRejectsDuplicates(t *testing.T) {
	it := types.NewInstanceType("Point", types.Object)
	assert.True(t, it.AddProperty("x", types.IntegerType))
	assert.False(t, it.AddProperty("x", types.FloatType))
}

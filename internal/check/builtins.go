package check

import (
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// byteArrayClassName is the one builtin class the driver installs
// (spec.md §4.8).
const byteArrayClassName = "ByteArray"

// installBuiltins seeds the global scope with the byte-array builtin:
// a leaf, exported instance type with a two-argument constructor
// (length, fill byte). Indexed access and `.length` on it are
// special-cased in the member/index checks the same way they are for
// Array<T> (spec.md §4.5).
func (c *Checker) installBuiltins() {
	if _, exists := c.global.LookupClass(byteArrayClassName); exists {
		return
	}

	ba := types.NewInstanceType(byteArrayClassName, types.Object)
	ba.Leaf = true
	ctor := types.NewFunctionType(types.VoidType, []types.Type{types.IntegerType, types.IntegerType})
	ba.AddMethod("constructor", ctor)
	ba.Seal()

	c.global.DefineClass(byteArrayClassName, ba)
	c.global.Define(&symbols.NameInfo{
		Name:       byteArrayClassName,
		Type:       ba,
		IsTypeName: true,
		IsExported: true,
	})
	c.byteArray = ba
}

// isByteArray reports whether t is the builtin byte-array leaf type.
func isByteArray(t types.Type) bool {
	it, ok := t.(*types.InstanceType)
	return ok && it.Name == byteArrayClassName
}

package types

import "strings"

// FunctionType is a return type plus an ordered parameter list.
type FunctionType struct {
	Return     Type
	Parameters []Type
}

func NewFunctionType(ret Type, params []Type) *FunctionType {
	return &FunctionType{Return: ret, Parameters: params}
}

func (f *FunctionType) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.String()
	}
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return "(" + strings.Join(parts, ", ") + ") => " + ret
}

func (f *FunctionType) sealedType() {}

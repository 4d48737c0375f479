package check

import "fmt"

// The diagnostic wording below is normative where spec.md §6 quotes
// it verbatim; everything else follows the same terse register.

func errMissingParamType(name string) error {
	return fmt.Errorf("parameter '%s' has no type annotation", name)
}

func msgNotAssignable(from, to string) string {
	return fmt.Sprintf("Type '%s' is not assignable to type '%s'", from, to)
}

const (
	msgWrongArgCount        = "wrong number of arguments"
	msgCannotCallSuperHere  = "cannot call super() here"
	msgSuperNotCalled       = "super() is not called"
	msgAssignConstant       = "assignment to constant variable"
	msgAssignTopLevelFunc   = "assignment to top-level function"
	msgCannotChangeLength   = "cannot change .length"
)

func msgUninitializedProperty(name string) string {
	return fmt.Sprintf("uninitialized property: %s", name)
}

func msgUnknownName(name string) string {
	return fmt.Sprintf("unknown name '%s'", name)
}

func msgUnknownTypeName(name string) string {
	return fmt.Sprintf("unknown type name '%s'", name)
}

func msgIncomparableOperands(op, left, right string) string {
	return fmt.Sprintf("operator '%s' requires matching boolean/string operands or a subtype relation, got '%s' and '%s'", op, left, right)
}

func msgNotOrdered(op, left, right string) string {
	return fmt.Sprintf("operator '%s' requires numeric or string operands on both sides, got '%s' and '%s'", op, left, right)
}

func msgInstanceofLeftPrimitive(t string) string {
	return fmt.Sprintf("operator 'instanceof' requires a non-primitive left operand, got '%s'", t)
}

func msgInstanceofRightInvalid(name string) string {
	return fmt.Sprintf("'%s' does not name an instance type", name)
}

func msgCompoundOperatorRejected(op string) string {
	return fmt.Sprintf("compound operator '%s' is not supported", op)
}

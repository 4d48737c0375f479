package check_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/check"
	"github.com/cwbudde/go-tsc/internal/diag"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func pos(line, col int) ast.Position { return ast.Position{Line: line, Column: col} }

func ident(name string, p ast.Position) *ast.Identifier { return &ast.Identifier{Position: p, Name: name} }

func namedType(name string, p ast.Position) *ast.NamedType { return &ast.NamedType{Position: p, Name: name} }

func intLit(raw string, p ast.Position) *ast.NumericLiteral {
	return &ast.NumericLiteral{Position: p, Raw: raw, IsInteger: true}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Body: stmts}
}

func asErr(t *testing.T, err error) *check.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected a type error, got nil")
	}
	cerr, ok := err.(*check.Error)
	if !ok {
		t.Fatalf("expected *check.Error, got %T", err)
	}
	return cerr
}

func TestOptionalDeclarationWithUndefinedInitializer(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.VariableDeclaration{
			Name: ident("a", pos(1, 5)),
			Type: &ast.UnionType{
				Left:  namedType("integer", pos(1, 8)),
				Right: namedType("undefined", pos(1, 18)),
			},
			Init: ident("undefined", pos(1, 31)),
		},
	}}

	result, err := check.Check(file)
	assert.NoError(t, err)

	info, ok := result.Globals.LookupInThis("a")
	assert.True(t, ok)
	assert.Equal(t, "integer | null", info.Type.String())
}

func TestUnionOtherThanNullIsRejected(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.VariableDeclaration{
			Const: true,
			Name:  ident("a", pos(1, 7)),
			Type: &ast.UnionType{
				Position: pos(1, 9),
				Left:     namedType("integer", pos(1, 9)),
				Right:    namedType("string", pos(1, 19)),
			},
			Init: intLit("0", pos(1, 28)),
		},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	errs := cerr.Log.Sorted()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
	assert.Contains(t, errs[0].Message, "only optional types are supported")

	rendered := diag.Format(errs, "snippet.ts", "const a: integer | string = 0;\n")
	snaps.MatchSnapshot(t, "union_other_than_null", rendered)
}

func TestAssignmentToConstantIsRejected(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.VariableDeclaration{
			Const: true,
			Name:  ident("a", pos(1, 7)),
			Type:  namedType("integer", pos(1, 10)),
			Init:  intLit("1", pos(1, 20)),
		},
		&ast.ExpressionStatement{Expression: &ast.AssignmentExpression{
			Position: pos(2, 1),
			Operator: "=",
			Left:     ident("a", pos(2, 1)),
			Right:    intLit("2", pos(2, 5)),
		}},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "constant")
}

// TestNarrowingDiscardedOnNullReassignment builds:
//
//	let a: integer | undefined = undefined;
//	if (a != null) {
//	    let b: integer = a;     // ok: a is narrowed to integer here
//	    a = undefined;          // discards the narrowing
//	    let c: integer = a;     // error: a is back to its optional type
//	}
func TestNarrowingDiscardedOnNullReassignment(t *testing.T) {
	aRefInTest := ident("a", pos(2, 5))
	aRefInAssign := ident("a", pos(4, 5))
	aRefInC := ident("a", pos(5, 22))

	file := &ast.File{Body: []ast.Statement{
		&ast.VariableDeclaration{
			Name: ident("a", pos(1, 5)),
			Type: &ast.UnionType{
				Left:  namedType("integer", pos(1, 8)),
				Right: namedType("undefined", pos(1, 18)),
			},
			Init: ident("undefined", pos(1, 31)),
		},
		&ast.IfStatement{
			Test: &ast.BinaryExpression{
				Operator: "!=",
				Left:     aRefInTest,
				Right:    &ast.NullLiteral{Position: pos(2, 10)},
			},
			Consequent: block(
				&ast.VariableDeclaration{
					Name: ident("b", pos(3, 9)),
					Type: namedType("integer", pos(3, 12)),
					Init: ident("a", pos(3, 22)),
				},
				&ast.ExpressionStatement{Expression: &ast.AssignmentExpression{
					Position: pos(4, 5),
					Operator: "=",
					Left:     aRefInAssign,
					Right:    ident("undefined", pos(4, 9)),
				}},
				&ast.VariableDeclaration{
					Name: ident("c", pos(5, 9)),
					Type: namedType("integer", pos(5, 12)),
					Init: aRefInC,
				},
			),
		},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	errs := cerr.Log.Sorted()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error (the 'c' declaration), got %d: %v", len(errs), errs)
	}
	assert.Contains(t, errs[0].Message, "not assignable")
	assert.Equal(t, 5, errs[0].Pos.Line)
}

// TestUninitializedPropertyIsRejected declares a class with a
// constructor that never assigns its only property.
func TestUninitializedPropertyIsRejected(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.ClassDeclaration{
			Name: ident("Point", pos(1, 7)),
			Body: []ast.ClassMember{
				&ast.PropertyDeclaration{Name: ident("x", pos(2, 3)), Type: namedType("integer", pos(2, 6))},
				&ast.MethodDefinition{
					IsConstructor: true,
					Body:          block(),
				},
			},
		},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "uninitialized property")
}

// TestSuperNotCalledIsRejected: the base class constructor requires an
// argument, and the derived class constructor never calls super().
func TestSuperNotCalledIsRejected(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.ClassDeclaration{
			Name: ident("Base", pos(1, 7)),
			Body: []ast.ClassMember{
				&ast.PropertyDeclaration{Name: ident("id", pos(2, 3)), Type: namedType("integer", pos(2, 7))},
				&ast.MethodDefinition{
					IsConstructor: true,
					Params:        []*ast.Param{{Name: ident("id", pos(3, 14)), Type: namedType("integer", pos(3, 18))}},
					Body: block(&ast.ExpressionStatement{Expression: &ast.AssignmentExpression{
						Operator: "=",
						Left: &ast.MemberExpression{
							Object:   &ast.ThisExpression{},
							Property: ident("id", pos(4, 10)),
						},
						Right: ident("id", pos(4, 15)),
					}}),
				},
			},
		},
		&ast.ClassDeclaration{
			Name:       ident("Derived", pos(6, 7)),
			SuperClass: ident("Base", pos(6, 18)),
			Body: []ast.ClassMember{
				&ast.MethodDefinition{
					IsConstructor: true,
					Body:          block(),
				},
			},
		},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	found := false
	for _, e := range cerr.Log.Sorted() {
		if strings.Contains(e.Message, "super()") {
			found = true
		}
	}
	assert.True(t, found, "expected a super()-not-called diagnostic, got %v", cerr.Log.Sorted())
}

// TestArrayConstructionChecksInitializerType covers both a
// well-typed and a mismatched `new Array<T>(...)` call.
func TestArrayConstructionChecksInitializerType(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.VariableDeclaration{
			Name: ident("ok", pos(1, 5)),
			Init: &ast.NewExpression{
				Callee:    &ast.GenericType{Name: "Array", TypeArg: namedType("integer", pos(1, 25))},
				Arguments: []ast.Expression{intLit("3", pos(1, 33))},
			},
		},
		&ast.VariableDeclaration{
			Name: ident("bad", pos(2, 5)),
			Init: &ast.NewExpression{
				Callee: &ast.GenericType{Name: "Array", TypeArg: namedType("string", pos(2, 26))},
				Arguments: []ast.Expression{
					intLit("3", pos(2, 34)),
					intLit("5", pos(2, 37)),
				},
			},
		},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "not assignable")
}

func TestCallArityMismatchIsRejected(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.FunctionDeclaration{
			Name:       ident("add", pos(1, 10)),
			Params:     []*ast.Param{{Name: ident("a", pos(1, 14)), Type: namedType("integer", pos(1, 17))}},
			ReturnType: namedType("integer", pos(1, 28)),
			Body: block(&ast.ReturnStatement{Argument: ident("a", pos(2, 12))}),
		},
		&ast.ExpressionStatement{Expression: &ast.CallExpression{
			Position: pos(4, 1),
			Callee:   ident("add", pos(4, 1)),
		}},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "wrong number of arguments")
}

func TestImporterStructuredErrorIsMergedVerbatim(t *testing.T) {
	nested := diag.NewLog()
	nested.Add(pos(1, 1), "syntax error in imported module")

	file := &ast.File{Body: []ast.Statement{
		&ast.ImportDeclaration{
			Names:  []*ast.Identifier{ident("helper", pos(1, 9))},
			Source: "./util",
		},
	}}

	importer := check.WithImporter(func(string) (*symbols.Table, error) {
		return nil, &check.ImportLogError{Log: nested}
	})
	_, err := check.Check(file, importer)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "syntax error in imported module")
}

func TestImporterUnknownImportedNameIsRejected(t *testing.T) {
	resolved := symbols.NewGlobal()
	resolved.Define(&symbols.NameInfo{Name: "present", Type: types.IntegerType, IsExported: true})

	file := &ast.File{Body: []ast.Statement{
		&ast.ImportDeclaration{
			Names:  []*ast.Identifier{ident("missing", pos(1, 9))},
			Source: "./util",
		},
	}}

	importer := check.WithImporter(func(string) (*symbols.Table, error) { return resolved, nil })
	_, err := check.Check(file, importer)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "missing")
}

func TestRelationalOperatorAllowsStringOperands(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.ExpressionStatement{Expression: &ast.BinaryExpression{
			Operator: "<",
			Left:     &ast.StringLiteral{Position: pos(1, 1), Value: "a"},
			Right:    &ast.StringLiteral{Position: pos(1, 8), Value: "b"},
		}},
	}}

	_, err := check.Check(file)
	assert.NoError(t, err)
}

func TestEqualityOperandMismatchIsRejected(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.ExpressionStatement{Expression: &ast.BinaryExpression{
			Position: pos(1, 1),
			Operator: "==",
			Left:     &ast.BooleanLiteral{Position: pos(1, 1), Value: true},
			Right:    &ast.StringLiteral{Position: pos(1, 9), Value: "x"},
		}},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "boolean/string")
}

func TestInstanceofRejectsPrimitiveLeftOperand(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.ClassDeclaration{Name: ident("Foo", pos(1, 7))},
		&ast.ExpressionStatement{Expression: &ast.BinaryExpression{
			Position: pos(2, 1),
			Operator: "instanceof",
			Left:     intLit("1", pos(2, 1)),
			Right:    ident("Foo", pos(2, 15)),
		}},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "non-primitive")
}

func TestExponentOperatorIsArithmetic(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.VariableDeclaration{
			Name: ident("p", pos(1, 5)),
			Type: namedType("integer", pos(1, 8)),
			Init: &ast.BinaryExpression{
				Operator: "**",
				Left:     intLit("2", pos(1, 18)),
				Right:    intLit("3", pos(1, 23)),
			},
		},
	}}

	_, err := check.Check(file)
	assert.NoError(t, err)
}

func TestExponentCompoundAssignmentIsRejected(t *testing.T) {
	file := &ast.File{Body: []ast.Statement{
		&ast.VariableDeclaration{
			Name: ident("x", pos(1, 5)),
			Type: namedType("integer", pos(1, 8)),
			Init: intLit("2", pos(1, 18)),
		},
		&ast.ExpressionStatement{Expression: &ast.AssignmentExpression{
			Position: pos(2, 1),
			Operator: "**=",
			Left:     ident("x", pos(2, 1)),
			Right:    intLit("3", pos(2, 7)),
		}},
	}}

	_, err := check.Check(file)
	cerr := asErr(t, err)
	assert.Contains(t, cerr.Log.Sorted()[0].Message, "compound operator")
}

func TestImporterNonExportedNameIsRejected(t *testing.T) {
	resolved := symbols.NewGlobal()
	resolved.Define(&symbols.NameInfo{Name: "hidden", Type: types.IntegerType, IsExported: false})

	file := &ast.File{Body: []ast.Statement{
		&ast.ImportDeclaration{
			Names:  []*ast.Identifier{ident("hidden", pos(1, 9))},
			Source: "./util",
		},
	}}

	importer := check.WithImporter(func(string) (*symbols.Table, error) { return resolved, nil })
	_, err := check.Check(file, importer)
	asErr(t, err)
}

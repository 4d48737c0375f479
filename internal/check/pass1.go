package check

import (
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// checkFile is the single entry point both passes use. Pass 1 records
// every global declaration (spec.md §4.5 "Pass 1") and then descends
// into bodies, silently, purely to let types flow and return types get
// inferred. Pass 2 re-walks the whole program fully, with every global
// name already bound.
func (c *Checker) checkFile(file *ast.File) {
	if c.firstPass {
		c.declareTopLevel(file.Body, c.global)
		c.silent = true
		for _, stmt := range file.Body {
			c.descendTopLevel(stmt, c.global)
		}
		c.silent = false
	} else {
		for _, stmt := range file.Body {
			c.checkStatement(c.global, stmt)
		}
	}
	c.side.AddNameTable(file, c.global)
}

// declareTopLevel records every global variable, function, class, and
// imported symbol (spec.md §4.5 "Pass 1", first paragraph). Classes
// are declared in two steps so that mutually referencing classes can
// all see each other's shells before properties/methods are resolved.
func (c *Checker) declareTopLevel(body []ast.Statement, scope *symbols.Table) {
	shells := make(map[*ast.ClassDeclaration]*types.InstanceType)
	for _, stmt := range body {
		if cd, ok := stmt.(*ast.ClassDeclaration); ok {
			shell := types.NewInstanceType(cd.Name.Name, nil)
			if !scope.DefineClass(cd.Name.Name, shell) {
				c.errorf(cd.Pos(), "class '%s' is already declared", cd.Name.Name)
				continue
			}
			scope.Define(&symbols.NameInfo{Name: cd.Name.Name, Type: shell, IsTypeName: true})
			shells[cd] = shell
		}
	}
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *ast.VariableDeclaration:
			c.declareTopLevelVar(s, scope)
		case *ast.FunctionDeclaration:
			c.declareTopLevelFunc(s, scope)
		case *ast.ClassDeclaration:
			c.declareClassMembers(s, shells[s], scope)
		case *ast.ImportDeclaration:
			c.resolveImport(s, scope)
		}
	}
}

func (c *Checker) declareTopLevelVar(v *ast.VariableDeclaration, scope *symbols.Table) {
	var typ types.Type = types.AnyType
	if v.Type != nil {
		if resolved, err := c.resolveTypeAnnotation(scope, v.Type); err == nil {
			typ = resolved
		} else {
			c.errorf(v.Type.Pos(), "%s", err.Error())
		}
	}
	if !scope.Define(&symbols.NameInfo{Name: v.Name.Name, Type: typ, IsConst: v.Const, IsExported: true}) {
		c.errorf(v.Pos(), "'%s' is already declared", v.Name.Name)
	}
}

func (c *Checker) declareTopLevelFunc(f *ast.FunctionDeclaration, scope *symbols.Table) {
	fnType, err := c.buildFunctionType(scope, f.Params, f.ReturnType)
	if err != nil {
		c.errorf(f.Pos(), "%s", err.Error())
		fnType = types.NewFunctionType(types.AnyType, nil)
	}
	if !scope.Define(&symbols.NameInfo{Name: f.Name.Name, Type: fnType, IsFunction: true, IsExported: true}) {
		c.errorf(f.Pos(), "'%s' is already declared", f.Name.Name)
	}
}

// buildFunctionType resolves parameter and (if present) return type
// annotations into a *types.FunctionType. declaredReturn == nil means
// the return type is left for inference (spec.md §4.5 "Return").
func (c *Checker) buildFunctionType(scope *symbols.Table, params []*ast.Param, declaredReturn ast.TypeAnnotation) (*types.FunctionType, error) {
	paramTypes := make([]types.Type, 0, len(params))
	for _, p := range params {
		if p.Type == nil {
			return nil, errMissingParamType(p.Name.Name)
		}
		pt, err := c.resolveTypeAnnotation(scope, p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes = append(paramTypes, pt)
	}
	ret := types.Type(nil)
	if declaredReturn != nil {
		rt, err := c.resolveTypeAnnotation(scope, declaredReturn)
		if err != nil {
			return nil, err
		}
		ret = rt
	} else {
		ret = types.VoidType // placeholder; refined by return-type inference during body descent
	}
	return types.NewFunctionType(ret, paramTypes), nil
}

// descendTopLevel visits the body of a single top-level declaration
// purely to propagate inferred types and fix undeclared return types
// (spec.md §4.5 "Pass 1", second paragraph). Diagnostics are
// suppressed for the whole call (c.silent is set by the caller).
func (c *Checker) descendTopLevel(stmt ast.Statement, scope *symbols.Table) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		if s.Init != nil {
			inferred := c.checkExpression(scope, s.Init)
			if s.Type == nil {
				if info, ok := scope.LookupInThis(s.Name.Name); ok {
					info.Type = inferred
				}
			}
		}
	case *ast.FunctionDeclaration:
		info, _ := scope.LookupInThis(s.Name.Name)
		fnType, _ := info.Type.(*types.FunctionType)
		c.checkFunctionBody(scope, s.Params, fnType, s.ReturnType != nil, s.Body)
	case *ast.ClassDeclaration:
		it, _ := scope.LookupClass(s.Name.Name)
		c.descendClassBodies(s, it, scope)
	}
}

package check

import (
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// declareClassMembers resolves shell's superclass and fills in its
// property and method tables from cd's body (spec.md §4.5 "Pass 1",
// class branch), then seals it. Getter/setter members are rejected
// outright (spec.md §1/§9).
func (c *Checker) declareClassMembers(cd *ast.ClassDeclaration, shell *types.InstanceType, scope *symbols.Table) {
	shell.Super = types.Object
	if cd.SuperClass != nil {
		super, ok := scope.LookupClass(cd.SuperClass.Name)
		if !ok {
			c.errorf(cd.SuperClass.Pos(), "%s", msgUnknownTypeName(cd.SuperClass.Name))
		} else if super.Leaf {
			c.errorf(cd.SuperClass.Pos(), "class '%s' cannot be extended", super.Name)
		} else {
			shell.Super = super
		}
	}

	hasCtor := false
	for _, member := range cd.Body {
		switch m := member.(type) {
		case *ast.PropertyDeclaration:
			typ, err := c.resolveTypeAnnotation(scope, m.Type)
			if err != nil {
				c.errorf(m.Type.Pos(), "%s", err.Error())
				typ = types.AnyType
			}
			if !shell.AddProperty(m.Name.Name, typ) {
				c.errorf(m.Pos(), "property '%s' is already declared", m.Name.Name)
			}
		case *ast.MethodDefinition:
			if m.IsAccessor {
				c.errorf(m.Pos(), "getter/setter members are not supported")
				continue
			}
			name := "constructor"
			if m.IsConstructor {
				hasCtor = true
			} else {
				name = m.Name.Name
			}
			fnType, err := c.buildFunctionType(scope, m.Params, m.ReturnType)
			if err != nil {
				c.errorf(m.Pos(), "%s", err.Error())
				fnType = types.NewFunctionType(types.VoidType, nil)
			}
			if m.IsConstructor {
				fnType.Return = types.VoidType
			}
			if !shell.AddMethod(name, fnType) {
				c.errorf(m.Pos(), "method '%s' is already declared", name)
			}
		}
	}
	shell.Seal()

	if !hasCtor {
		if len(shell.Properties()) > 0 {
			c.errorf(cd.Pos(), "class '%s' declares properties but has no constructor to initialize them", cd.Name.Name)
		} else if superCtorNeedsArgs(shell) {
			c.errorf(cd.Pos(), "class '%s' has no constructor but its superclass constructor requires arguments", cd.Name.Name)
		}
	}
}

// descendClassBodies is pass 1's silent inference descent into every
// method and constructor body, purely to let undeclared return types
// get fixed before pass 2 relies on them (spec.md §4.5 "Pass 1").
func (c *Checker) descendClassBodies(cd *ast.ClassDeclaration, it *types.InstanceType, scope *symbols.Table) {
	if it == nil {
		return
	}
	for _, member := range cd.Body {
		m, ok := member.(*ast.MethodDefinition)
		if !ok || m.IsAccessor {
			continue
		}
		name := "constructor"
		if !m.IsConstructor {
			name = m.Name.Name
		}
		info, ok := it.Method(name)
		if !ok {
			continue
		}
		c.checkFunctionBody(scope, m.Params, info.Func, m.ReturnType != nil, m.Body)
	}
}

// checkClassDeclaration is pass 2's full visit of a class: every
// method body is checked with `this` bound to the class, and the
// constructor additionally runs the component F validator (spec.md
// §4.5, §4.6).
func (c *Checker) checkClassDeclaration(scope *symbols.Table, cd *ast.ClassDeclaration) {
	it, ok := scope.LookupClass(cd.Name.Name)
	if !ok {
		return
	}

	prevClass, prevTable := c.currentClass, c.currentClassTable
	c.currentClass = it
	c.currentClassTable = scope
	defer func() {
		c.currentClass = prevClass
		c.currentClassTable = prevTable
	}()

	for _, member := range cd.Body {
		m, ok := member.(*ast.MethodDefinition)
		if !ok || m.IsAccessor {
			continue
		}
		name := "constructor"
		if !m.IsConstructor {
			name = m.Name.Name
		}
		info, ok := it.Method(name)
		if !ok {
			continue
		}
		if m.IsConstructor {
			c.checkConstructorBody(scope, m, info.Func, it)
		} else {
			c.checkFunctionBody(scope, m.Params, info.Func, m.ReturnType != nil, m.Body)
		}
	}
}

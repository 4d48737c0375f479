package check

import (
	"errors"

	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/symbols"
)

// resolveImport implements component G (spec.md §4.7): it is only
// ever invoked from pass 1, at the global scope, once per import
// declaration. A structured *ImportLogError is absorbed into this
// file's log verbatim with no extra wrapping; a plain error becomes a
// single diagnostic at the import's position; anything else the
// importer panics with is left to propagate uncaught.
func (c *Checker) resolveImport(imp *ast.ImportDeclaration, scope *symbols.Table) {
	if c.importer == nil {
		c.errorf(imp.Pos(), "no importer configured to resolve '%s'", imp.Source)
		return
	}

	src, err := c.importer(imp.Source)
	if err != nil {
		var logErr *ImportLogError
		if errors.As(err, &logErr) {
			c.log.Merge(logErr.Log)
			return
		}
		c.errorf(imp.Pos(), "import '%s' failed: %s", imp.Source, err.Error())
		return
	}

	for _, name := range imp.Names {
		info, ok := src.LookupInThis(name.Name)
		if !ok {
			c.errorf(name.Pos(), "%s", msgUnknownName(name.Name))
			continue
		}
		if err := scope.ImportSymbol(name.Name, info); err != nil {
			c.errorf(name.Pos(), "%s", err.Error())
		}
	}
}

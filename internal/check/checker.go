// Package check implements the two-pass type-checking visitor
// (component E), the constructor validator (component F), the import
// resolver (component G), and the driver (component H) of spec.md §4.
package check

import (
	"fmt"

	"github.com/cwbudde/go-tsc/internal/annotate"
	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/diag"
	"github.com/cwbudde/go-tsc/internal/symbols"
	"github.com/cwbudde/go-tsc/internal/types"
)

// Importer resolves a module name to the symbol table the importing
// file should pull names from (spec.md §4.7, §6). It is invoked
// synchronously, only during pass 1, only at the global scope.
type Importer func(file string) (*symbols.Table, error)

// ImportLogError lets an importer fail with a structured diagnostic
// log instead of a single message; the checker absorbs it verbatim.
// The absorbed errors keep their own positions and carry no record of
// which imported file they came from.
type ImportLogError struct {
	Log *diag.Log
}

func (e *ImportLogError) Error() string { return "import failed" }

// Checker walks an AST twice, resolving identifier bindings, inferring
// and verifying static types, and recording coercion markers. It holds
// a single mutable traversal state and is not reentrant (spec.md §5).
type Checker struct {
	global   *symbols.Table
	side     *annotate.Table
	log      *diag.Log
	firstPass bool
	silent    bool // true while pass 1 descends into a body purely for inference
	importer Importer

	currentClass      *types.InstanceType
	currentClassTable *symbols.Table

	byteArray *types.InstanceType

	// fnTypeStack tracks the FunctionType of each function/method/
	// lambda currently being checked, so an undeclared return type can
	// be written back onto the same object the symbol table exposes
	// to callers (spec.md §4.5 "Return").
	fnTypeStack []*types.FunctionType

	// narrowOriginal records, per block table, the pre-narrowing
	// (declared optional) type of any identifier narrowed inside that
	// block, so an assignment that invalidates the narrowing can
	// restore it (spec.md §4.5).
	narrowOriginal map[*symbols.Table]map[string]types.Type

	// ctorStack holds the in-progress constructor validator state
	// (component F), one entry per constructor body currently being
	// checked; constructors never nest, but the stack shape matches
	// fnTypeStack and keeps currentCtor cheap.
	ctorStack []*ctorValidation
}

// Option configures a Checker constructed by New.
type Option func(*Checker)

// WithImporter installs the callback used to resolve `import`
// declarations (spec.md §6).
func WithImporter(imp Importer) Option {
	return func(c *Checker) { c.importer = imp }
}

// WithSeedGlobals installs a caller-provided global scope instead of
// an empty one (spec.md §6: "A symbol table seeded by the caller
// (usually empty)").
func WithSeedGlobals(global *symbols.Table) Option {
	return func(c *Checker) { c.global = global }
}

// New builds a Checker ready to run both passes.
func New(opts ...Option) *Checker {
	c := &Checker{
		side:           annotate.New(),
		log:            diag.NewLog(),
		narrowOriginal: make(map[*symbols.Table]map[string]types.Type),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.global == nil {
		c.global = symbols.NewGlobal()
	}
	return c
}

// Result is what a successful Check call hands back: the populated
// global symbol table and a read-only handle on the annotated
// side-table (spec.md §6).
type Result struct {
	Globals *symbols.Table
	Side    *annotate.Table
}

// Error is returned when either pass ends with a non-empty log
// (spec.md §4.8: "if any error, stop and surface the log").
type Error struct {
	Log *diag.Log
}

func (e *Error) Error() string {
	errs := e.Log.Sorted()
	if len(errs) == 1 {
		return fmt.Sprintf("type error: %s", errs[0].Message)
	}
	return fmt.Sprintf("%d type errors, first: %s", len(errs), errs[0].Message)
}

// Check runs the driver (component H) over file: install builtins,
// run pass 1, run pass 2, and return the populated global scope plus
// the annotated side-table, or a non-nil *Error if either pass
// recorded a diagnostic.
func Check(file *ast.File, opts ...Option) (*Result, error) {
	c := New(opts...)
	return c.Run(file)
}

// Run executes both passes over file using c's already-configured
// global scope and importer.
func (c *Checker) Run(file *ast.File) (*Result, error) {
	c.installBuiltins()

	c.firstPass = true
	c.checkFile(file)
	if c.log.HasError() {
		return nil, &Error{Log: c.log}
	}

	c.firstPass = false
	c.side.BeginPass2()
	c.checkFile(file)
	if c.log.HasError() {
		return nil, &Error{Log: c.log}
	}

	return &Result{Globals: c.global, Side: c.side}, nil
}

// errorf is the single funnel every diagnostic passes through. It is
// a no-op while c.silent is set, which is how pass 1's inference-only
// descent into a function/class body avoids reporting errors for
// constructs that pass 2 will validate for real (spec.md §4.5 "Pass
// 1": "it does not validate the statements inside").
func (c *Checker) errorf(pos ast.Position, format string, args ...interface{}) {
	if c.silent {
		return
	}
	c.log.Addf(pos, format, args...)
}

func (c *Checker) currentFnType() *types.FunctionType {
	if len(c.fnTypeStack) == 0 {
		return nil
	}
	return c.fnTypeStack[len(c.fnTypeStack)-1]
}

// suppressUnknownName reports whether an "unknown name" diagnostic
// should be swallowed: during pass 1, forward references to
// not-yet-declared top-level names must succeed (spec.md §4.4).
func (c *Checker) suppressUnknownName() bool {
	return c.firstPass
}

// Package diag implements the error log of spec.md §3/§4.4 (component
// D): an append-only accumulator of (message, position) pairs that can
// absorb another log verbatim, plus the source-context formatting
// the teacher's internal/errors package renders compiler diagnostics
// with.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/go-tsc/internal/ast"
)

// Error is one diagnostic: a message paired with its source position
// (spec.md §6: "messages paired to AST source locations").
type Error struct {
	Message string
	Pos     ast.Position
}

func (e Error) String() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos.String())
}

// Log accumulates errors across a single checker run. It never stops
// traversal (spec.md §4.4: "Errors do not stop traversal"); the
// checker keeps reporting faults and the driver decides at a pass
// boundary whether to raise.
type Log struct {
	errors []Error
	nested []*Log
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Addf appends a formatted error at pos.
func (l *Log) Addf(pos ast.Position, format string, args ...interface{}) {
	l.errors = append(l.errors, Error{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// Add appends a literal error at pos.
func (l *Log) Add(pos ast.Position, message string) {
	l.errors = append(l.errors, Error{Message: message, Pos: pos})
}

// Merge absorbs another log verbatim, keyed under no extra context —
// used when an imported file type-checks with its own errors
// (spec.md §4.7): the importer raised a structured log and it is
// folded into the importing file's log as-is.
func (l *Log) Merge(other *Log) {
	if other == nil {
		return
	}
	l.nested = append(l.nested, other)
}

// HasError reports whether this log or any absorbed log recorded at
// least one error.
func (l *Log) HasError() bool {
	if len(l.errors) > 0 {
		return true
	}
	for _, n := range l.nested {
		if n.HasError() {
			return true
		}
	}
	return false
}

// Errors flattens this log and every absorbed log, in absorption
// order, self first.
func (l *Log) Errors() []Error {
	all := make([]Error, 0, len(l.errors))
	all = append(all, l.errors...)
	for _, n := range l.nested {
		all = append(all, n.Errors()...)
	}
	return all
}

// Sorted returns Errors() ordered by source position, so diagnostics
// from both checker passes print in file order rather than discovery
// order (SPEC_FULL.md §4: checker-level diagnostics sorting).
func (l *Log) Sorted() []Error {
	all := l.Errors()
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i].Pos, all[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return all
}

// Format renders every error with a file:line:column header and, when
// source is non-empty, the offending source line with a caret
// underneath pointing at the column — the presentation the teacher's
// CompilerError.Format uses.
func Format(errs []Error, file, source string) string {
	lines := strings.Split(source, "\n")
	var sb strings.Builder
	for _, e := range errs {
		if file != "" {
			fmt.Fprintf(&sb, "Error in %s:%d:%d\n", file, e.Pos.Line, e.Pos.Column)
		} else {
			fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
		}
		if e.Pos.Line >= 1 && e.Pos.Line <= len(lines) {
			src := lines[e.Pos.Line-1]
			prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
			sb.WriteString(prefix)
			sb.WriteString(src)
			sb.WriteString("\n")
			col := e.Pos.Column
			if col < 1 {
				col = 1
			}
			sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
			sb.WriteString("^\n")
		}
		sb.WriteString(e.Message)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

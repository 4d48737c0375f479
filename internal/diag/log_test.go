package diag_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-tsc/internal/ast"
	"github.com/cwbudde/go-tsc/internal/diag"
)

func TestHasErrorFalseWhenEmpty(t *testing.T) {
	log := diag.NewLog()
	if log.HasError() {
		t.Fatal("expected empty log to report no error")
	}
}

func TestAddfRecordsFormattedMessage(t *testing.T) {
	log := diag.NewLog()
	log.Addf(ast.Position{Line: 3, Column: 5}, "unknown name '%s'", "foo")
	if !log.HasError() {
		t.Fatal("expected HasError after Addf")
	}
	errs := log.Errors()
	if len(errs) != 1 || errs[0].Message != "unknown name 'foo'" {
		t.Fatalf("Errors() = %+v", errs)
	}
}

func TestMergeAbsorbsNestedLogVerbatim(t *testing.T) {
	outer := diag.NewLog()
	inner := diag.NewLog()
	inner.Add(ast.Position{Line: 1, Column: 1}, "inner failure")

	outer.Merge(inner)
	if !outer.HasError() {
		t.Fatal("expected outer.HasError() after merging a failing inner log")
	}
	errs := outer.Errors()
	if len(errs) != 1 || errs[0].Message != "inner failure" {
		t.Fatalf("Errors() = %+v", errs)
	}
}

func TestMergeNilIsNoop(t *testing.T) {
	log := diag.NewLog()
	log.Merge(nil)
	if log.HasError() {
		t.Fatal("merging nil should not introduce an error")
	}
}

func TestSortedOrdersByPosition(t *testing.T) {
	log := diag.NewLog()
	log.Add(ast.Position{Line: 5, Column: 1}, "later")
	log.Add(ast.Position{Line: 2, Column: 9}, "earlier")
	log.Add(ast.Position{Line: 2, Column: 1}, "earliest")

	sorted := log.Sorted()
	var order []string
	for _, e := range sorted {
		order = append(order, e.Message)
	}
	want := []string{"earliest", "earlier", "later"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("Sorted() order = %v, want %v", order, want)
	}
}

func TestFormatRendersSourceLineAndCaret(t *testing.T) {
	errs := []diag.Error{{Message: "boom", Pos: ast.Position{Line: 2, Column: 3}}}
	out := diag.Format(errs, "test.ts", "let a = 1\nlet b: integer = \"x\"\n")

	if !strings.Contains(out, "test.ts:2:3") {
		t.Fatalf("missing location header: %q", out)
	}
	if !strings.Contains(out, "let b: integer") {
		t.Fatalf("missing echoed source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret: %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("missing message: %q", out)
	}
}

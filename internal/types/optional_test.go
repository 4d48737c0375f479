package types_test

import (
	"testing"

	"github.com/cwbudde/go-tsc/internal/types"
)

func TestNewOptionalTypeRejections(t *testing.T) {
	if _, err := types.NewOptionalType(types.AnyType); err == nil {
		t.Error("expected error making 'any' optional")
	}
	if _, err := types.NewOptionalType(types.NullType); err == nil {
		t.Error("expected error making 'null' optional")
	}
	opt, err := types.NewOptionalType(types.IntegerType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := types.NewOptionalType(opt); err == nil {
		t.Error("expected error nesting optional types")
	}
}

func TestOptionalTypeString(t *testing.T) {
	opt, err := types.NewOptionalType(types.StringType)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := opt.String(), "string | null"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

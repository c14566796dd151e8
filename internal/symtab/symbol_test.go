package symtab_test

import (
	"testing"

	"github.com/noobshow/fcc/internal/symtab"
	"github.com/noobshow/fcc/internal/types"
)

func TestNewStructFieldsAreOrderedAndLookupByName(t *testing.T) {
	b := symtab.NewBuiltins()
	fields := []*symtab.Symbol{
		symtab.NewVar("x", b.IntType()),
		symtab.NewVar("y", b.IntType()),
	}
	point := symtab.NewStruct("Point", fields)

	if point.ChildCount() != 2 {
		t.Fatalf("expected 2 fields, got %d", point.ChildCount())
	}
	if point.ChildAt(0).Ident() != "x" || point.ChildAt(1).Ident() != "y" {
		t.Fatal("fields should stay in declaration order")
	}

	field, ok := point.ChildByName("y")
	if !ok || field.Ident() != "y" {
		t.Fatal("ChildByName should find a declared field")
	}

	if _, ok := point.ChildByName("z"); ok {
		t.Fatal("ChildByName should not find an undeclared field")
	}
}

func TestNewStructDeclaredTypeNamesItself(t *testing.T) {
	point := symtab.NewStruct("Point", nil)
	basic, ok := point.DeclaredType().(*types.Basic)
	if !ok {
		t.Fatal("a struct tag's declared type should be a Basic")
	}
	if basic.Sym != types.Symbol(point) {
		t.Fatal("a struct's declared type should reference the struct symbol itself")
	}
}

func TestBuiltinsClassificationMasks(t *testing.T) {
	b := symtab.NewBuiltins()

	if !types.IsNumeric(b.IntType()) {
		t.Error("int should be numeric")
	}
	if types.IsNumeric(b.BoolType()) {
		t.Error("bool should not be numeric")
	}
	if !types.IsCondition(b.BoolType()) {
		t.Error("bool should be a valid condition")
	}
	if types.Size(b.VoidType()) != 0 {
		t.Error("void should have size 0")
	}
	if types.Size(b.LongType()) != 8 {
		t.Error("long should have size 8")
	}
}

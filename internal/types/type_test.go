package types_test

import (
	"testing"

	"github.com/noobshow/fcc/internal/symtab"
	"github.com/noobshow/fcc/internal/types"
)

func TestIsNumericAcceptsInvalidUnconditionally(t *testing.T) {
	if !types.IsNumeric(types.NewInvalid()) {
		t.Fatal("Invalid should satisfy IsNumeric, to avoid diagnostic cascades")
	}
}

func TestIsNumericRejectsNonNumericBasic(t *testing.T) {
	void := symtab.NewNamedType("void", 0, 0)
	if types.IsNumeric(types.NewBasic(void)) {
		t.Fatal("void should not be numeric")
	}
}

func TestCompatiblePointerToVoidPointerAcceptsAnyPointer(t *testing.T) {
	b := symtab.NewBuiltins()
	voidPtr := types.NewPointer(b.VoidType())
	intPtr := types.NewPointer(b.IntType())
	if !types.Compatible(intPtr, voidPtr) {
		t.Fatal("int* should be compatible with void* (model)")
	}
}

func TestCompatiblePointerToIntAcceptsNumericBasic(t *testing.T) {
	b := symtab.NewBuiltins()
	intPtr := types.NewPointer(b.IntType())
	if !types.Compatible(b.IntType(), intPtr) {
		t.Fatal("a numeric basic should be compatible with a pointer model (pointer arithmetic)")
	}
}

func TestCompatibleArrayRequiresMatchingOrUnspecifiedSize(t *testing.T) {
	b := symtab.NewBuiltins()
	fixed3 := types.NewArray(b.IntType(), 3)
	fixed4 := types.NewArray(b.IntType(), 4)
	unspec := types.NewArray(b.IntType(), types.UnspecifiedSize)

	if types.Compatible(fixed3, fixed4) {
		t.Fatal("arrays of different fixed size should not be compatible")
	}
	if !types.Compatible(fixed3, unspec) {
		t.Fatal("a fixed-size array should be compatible with an unspecified-size model")
	}
}

func TestCompatibleFunctionChecksParamsAndReturn(t *testing.T) {
	b := symtab.NewBuiltins()
	a := types.NewFunction(b.IntType(), []types.Type{b.CharType()}, false)
	same := types.NewFunction(b.IntType(), []types.Type{b.CharType()}, false)
	diffReturn := types.NewFunction(b.CharType(), []types.Type{b.CharType()}, false)

	if !types.Compatible(a, same) {
		t.Fatal("identical function signatures should be compatible")
	}
	if types.Compatible(a, diffReturn) {
		t.Fatal("functions with different return types should not be compatible")
	}
}

func TestDeepDuplicateProducesIndependentTree(t *testing.T) {
	b := symtab.NewBuiltins()
	orig := types.NewPointer(types.NewArray(b.IntType(), 4))
	dup := types.DeepDuplicate(orig).(*types.Pointer)

	arr := dup.Elem.(*types.Array)
	arr.Size = 99

	origArr := orig.Elem.(*types.Array)
	if origArr.Size == 99 {
		t.Fatal("mutating the duplicate must not affect the original")
	}
}

func TestDeriveUnifiedPrefersEqualOverCompatible(t *testing.T) {
	b := symtab.NewBuiltins()
	l := b.IntType()
	r := b.IntType()
	unified := types.DeriveUnified(l, r)
	if !types.Equal(unified, l) {
		t.Fatal("DeriveUnified of two equal types should return an equal type")
	}
}

func TestSizeOfArrayMultipliesElementSize(t *testing.T) {
	b := symtab.NewBuiltins()
	arr := types.NewArray(b.IntType(), 10)
	if got := types.Size(arr); got != 40 {
		t.Fatalf("expected array size 40, got %d", got)
	}
}

func TestToStrRendersPointerAndArrayDeclarators(t *testing.T) {
	b := symtab.NewBuiltins()
	ptr := types.NewPointer(b.IntType())
	if got := types.ToStr(ptr, ""); got != "int *" {
		t.Fatalf("expected %q, got %q", "int *", got)
	}

	arr := types.NewArray(b.CharType(), types.UnspecifiedSize)
	if got := types.ToStr(arr, "name"); got != "char name[]" {
		t.Fatalf("expected %q, got %q", "char name[]", got)
	}
}

func TestToStrRendersFunctionDeclarator(t *testing.T) {
	b := symtab.NewBuiltins()
	fn := types.NewFunction(b.IntType(), []types.Type{b.CharType()}, false)
	got := types.ToStr(fn, "f")
	want := "int (f)(char)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestIsVoidOnlyMatchesZeroSizedTypeSymbol(t *testing.T) {
	b := symtab.NewBuiltins()
	if !types.IsVoid(b.VoidType()) {
		t.Fatal("zero-size type-kind basic should be void")
	}
	if types.IsVoid(b.IntType()) {
		t.Fatal("int should not be void")
	}
}

package check_test

import (
	"testing"

	"github.com/noobshow/fcc/internal/ast"
	"github.com/noobshow/fcc/internal/symtab"
	"github.com/noobshow/fcc/internal/types"
)

func pointStruct(b *symtab.Builtins) *symtab.Symbol {
	return symtab.NewStruct("Point", []*symtab.Symbol{
		symtab.NewVar("x", b.IntType()),
		symtab.NewVar("y", b.IntType()),
	})
}

func braceInit(elements ...*ast.Node) *ast.Node {
	n := ast.New(ast.KindLiteral, ast.Position{}, elements...)
	n.LitKind = ast.LitInit
	return n
}

func TestStructInitializerArityMismatchReportsDegree(t *testing.T) {
	c, sink, b := newChecker()
	point := pointStruct(b)

	n := braceInit(intLit("1"))
	c.InitOrCompoundLiteral(n, point.DeclaredType())

	if sink.ErrorCount() != 1 {
		t.Fatalf("a 2-field struct given 1 initializer element should report one arity error, got %d", sink.ErrorCount())
	}
}

func TestStructInitializerPerFieldMismatchReportsOncePerBadElement(t *testing.T) {
	c, sink, b := newChecker()
	point := pointStruct(b)
	badElem := identNode(symtab.NewVar("s", symtab.NewStruct("S", nil).DeclaredType()))

	n := braceInit(intLit("1"), badElem)
	c.InitOrCompoundLiteral(n, point.DeclaredType())

	if sink.ErrorCount() != 1 {
		t.Fatalf("one incompatible field should report one mismatch, got %d", sink.ErrorCount())
	}
}

func TestArrayInitializerUncappedWhenSizeUnspecified(t *testing.T) {
	c, sink, b := newChecker()
	arr := types.NewArray(b.IntType(), types.UnspecifiedSize)

	n := braceInit(intLit("1"), intLit("2"), intLit("3"))
	c.InitOrCompoundLiteral(n, arr)

	if sink.ErrorCount() != 0 {
		t.Fatalf("an unspecified-size array should accept any element count, got %d errors", sink.ErrorCount())
	}
}

func TestArrayInitializerTooManyElementsReportsDegree(t *testing.T) {
	c, sink, b := newChecker()
	arr := types.NewArray(b.IntType(), 2)

	n := braceInit(intLit("1"), intLit("2"), intLit("3"))
	c.InitOrCompoundLiteral(n, arr)

	if sink.ErrorCount() != 1 {
		t.Fatalf("3 elements into a fixed-size-2 array should report one degree error, got %d", sink.ErrorCount())
	}
}

func TestScalarInitializerRequiresExactlyOneElement(t *testing.T) {
	c, sink, b := newChecker()

	n := braceInit(intLit("1"), intLit("2"))
	c.InitOrCompoundLiteral(n, b.IntType())

	if sink.ErrorCount() != 1 {
		t.Fatalf("a scalar initializer with 2 elements should report one degree error, got %d", sink.ErrorCount())
	}
}

func TestNestedBraceInitializerRecursesIntoStructField(t *testing.T) {
	c, sink, b := newChecker()
	inner := pointStruct(b)
	outer := symtab.NewStruct("Wrapper", []*symtab.Symbol{symtab.NewVar("p", inner.DeclaredType())})

	nested := braceInit(intLit("1"), intLit("2"))
	n := braceInit(nested)

	c.InitOrCompoundLiteral(n, outer.DeclaredType())

	if sink.ErrorCount() != 0 {
		t.Fatalf("a correctly nested struct-in-struct initializer should not error, got %d", sink.ErrorCount())
	}
}

func TestNestedBraceInitializerMismatchReportsOnField(t *testing.T) {
	c, sink, b := newChecker()
	inner := pointStruct(b)
	outer := symtab.NewStruct("Wrapper", []*symtab.Symbol{symtab.NewVar("p", inner.DeclaredType())})

	// Wrong arity inside the nested struct: Point wants 2 fields, gets 1.
	nested := braceInit(intLit("1"))
	n := braceInit(nested)

	c.InitOrCompoundLiteral(n, outer.DeclaredType())

	if sink.ErrorCount() != 1 {
		t.Fatalf("a bad nested initializer should surface exactly one error, got %d", sink.ErrorCount())
	}
}

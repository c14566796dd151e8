package check

import (
	"github.com/noobshow/fcc/internal/ast"
	"github.com/noobshow/fcc/internal/types"
)

// InitOrCompoundLiteral is the Initializer Analyzer (spec.md §4.3): given a
// brace-enclosed initializer node (or a compound literal's element list)
// and the type it must conform to, it dispatches on that type's shape
// (struct / array / scalar) and recurses into nested brace elements.
// Ported from original_source/src/analyzer-value.c's
// analyzerInitOrCompoundLiteral.
func (c *Checker) InitOrCompoundLiteral(n *ast.Node, dt types.Type) ValueResult {
	c.enter("InitOrCompoundLiteral")
	defer c.leave()

	n.DT = types.DeepDuplicate(dt)
	elements := n.InitElements()

	switch {
	case types.IsInvalid(dt):
		// Nothing further to check; the bad type was already diagnosed
		// wherever it originated.

	case types.IsRecord(dt):
		c.initStruct(n, dt, elements)

	case types.IsArray(dt):
		c.initArray(n, dt, elements)

	default:
		c.initScalar(n, dt, elements)
	}

	return ValueResult{Type: n.DT}
}

func (c *Checker) initStruct(n *ast.Node, dt types.Type, elements []*ast.Node) {
	structSym := recordSymbol(dt)
	if structSym == nil || structSym.ChildCount() != len(elements) {
		name, expected := "struct", 0
		if structSym != nil {
			name, expected = structSym.Ident(), structSym.ChildCount()
		}
		c.Diag.Degree(n.Pos, c.FilePath, name, "fields", expected, len(elements))
		return
	}

	for i, el := range elements {
		field := structSym.ChildAt(i)
		fieldType := c.analyzeInitElement(el, field.DeclaredType())
		if !types.Compatible(fieldType, field.DeclaredType()) {
			c.Diag.NamedParameterMismatch(el.Pos, c.FilePath, field.Ident(), field.DeclaredType(), fieldType)
		}
	}
}

func (c *Checker) initArray(n *ast.Node, dt types.Type, elements []*ast.Node) {
	arr := dt.(*types.Array)

	if arr.Size != types.UnspecifiedSize && arr.Size < len(elements) {
		c.Diag.Degree(n.Pos, c.FilePath, "array", "elements", arr.Size, len(elements))
	}

	for _, el := range elements {
		elemType := c.analyzeInitElement(el, arr.Elem)
		if !types.Compatible(elemType, arr.Elem) {
			c.Diag.TypeExpectedType(el.Pos, c.FilePath, "array initialization", arr.Elem, elemType)
		}
	}
}

func (c *Checker) initScalar(n *ast.Node, dt types.Type, elements []*ast.Node) {
	if len(elements) != 1 {
		c.Diag.Degree(n.Pos, c.FilePath, "scalar", "element", 1, len(elements))
		return
	}

	el := elements[0]
	R := c.Value(el)
	if !types.Compatible(R.Type, dt) {
		c.Diag.TypeExpectedType(el.Pos, c.FilePath, "variable initialization", dt, R.Type)
	}
}

// analyzeInitElement recurses into a nested brace initializer or hands a
// plain expression element to the Expression Analyzer, returning its type
// either way.
func (c *Checker) analyzeInitElement(el *ast.Node, expected types.Type) types.Type {
	if el.Kind == ast.KindLiteral && el.LitKind == ast.LitInit {
		return c.InitOrCompoundLiteral(el, expected).Type
	}
	return c.Value(el).Type
}

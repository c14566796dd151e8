package check

import (
	"github.com/noobshow/fcc/internal/ast"
	"github.com/noobshow/fcc/internal/types"
)

// Value is the Expression Analyzer's entry point: it classifies n by Kind
// and Op, derives n's type (and, for select kinds, its value category),
// writes both onto n, and returns them. Ported rule-for-rule from
// original_source/src/analyzer-value.c's analyzerValue dispatch.
func (c *Checker) Value(n *ast.Node) ValueResult {
	switch n.Kind {
	case ast.KindBinOp:
		return c.dispatchBinOp(n)
	case ast.KindUnOp:
		return c.unOp(n)
	case ast.KindTernary:
		return c.ternary(n)
	case ast.KindIndex:
		return c.index(n)
	case ast.KindCall:
		return c.call(n)
	case ast.KindCast:
		return c.cast(n)
	case ast.KindSizeof:
		return c.sizeof(n)
	case ast.KindLiteral:
		return c.literal(n)
	case ast.KindCompoundLiteral:
		return c.compoundLiteral(n)
	case ast.KindInvalid, ast.KindEmpty:
		n.DT = types.NewInvalid()
		return ValueResult{Type: n.DT}
	default:
		c.Diag.Unhandled(n.Pos, c.FilePath, "expression analyzer cannot dispatch this node kind")
		n.DT = types.NewInvalid()
		return ValueResult{Type: n.DT}
	}
}

// dispatchBinOp routes a KindBinOp node to the sub-analyzer matching its
// operator's classification, mirroring analyzerValue's operator-class
// if-chain (spec.md §9's REDESIGN FLAG: a lookup over the Op enum instead
// of repeated string comparisons).
func (c *Checker) dispatchBinOp(n *ast.Node) ValueResult {
	op := n.Op
	switch {
	case op.IsArithmetic() || op.IsAssign():
		return c.binOp(n)
	case op.IsOrdinal() || op.IsEquality():
		return c.comparisonBOP(n)
	case op.IsLogical():
		return c.logicalBOP(n)
	case op.IsMember():
		return c.memberBOP(n)
	case op == ast.OpComma:
		return c.commaBOP(n)
	default:
		c.Diag.Unhandled(n.Pos, c.FilePath, "expression analyzer cannot dispatch this binary operator")
		n.DT = types.NewInvalid()
		return ValueResult{Type: n.DT}
	}
}

func (c *Checker) binOp(n *ast.Node) ValueResult {
	c.enter("BinOp")
	defer c.leave()

	L := c.Value(n.L())
	R := c.Value(n.R())

	if n.Op.IsArithmetic() || n.Op.IsCompoundAssign() {
		if !types.IsNumeric(L.Type) || !types.IsNumeric(R.Type) {
			bad, badType := n.L(), L.Type
			if types.IsNumeric(L.Type) {
				bad, badType = n.R(), R.Type
			}
			c.Diag.TypeExpected(bad.Pos, c.FilePath, n.Op.String(), "numeric type", badType)
		}
	}

	if n.Op.IsAssign() {
		if !types.IsAssignment(L.Type) || !types.IsAssignment(R.Type) {
			bad, badType := n.L(), L.Type
			if types.IsAssignment(L.Type) {
				bad, badType = n.R(), R.Type
			}
			c.Diag.TypeExpected(bad.Pos, c.FilePath, n.Op.String(), "assignable type", badType)
		}
		if !L.LValue {
			c.Diag.LValueRequired(n.L().Pos, c.FilePath, n.Op.String())
		}
	}

	if types.Compatible(L.Type, R.Type) {
		n.DT = types.DeriveFromTwo(L.Type, R.Type)
	} else {
		c.Diag.Mismatch(n.Pos, c.FilePath, n.Op.String(), L.Type, R.Type)
		n.DT = types.NewInvalid()
	}

	return ValueResult{Type: n.DT}
}

func (c *Checker) comparisonBOP(n *ast.Node) ValueResult {
	c.enter("ComparisonBOP")
	defer c.leave()

	L := c.Value(n.L())
	R := c.Value(n.R())

	if n.Op.IsOrdinal() {
		if !types.IsOrdinal(L.Type) || !types.IsOrdinal(R.Type) {
			bad, badType := n.L(), L.Type
			if types.IsOrdinal(L.Type) {
				bad, badType = n.R(), R.Type
			}
			c.Diag.TypeExpected(bad.Pos, c.FilePath, n.Op.String(), "comparable type", badType)
		}
	} else {
		if !types.IsEquality(L.Type) || !types.IsEquality(R.Type) {
			bad, badType := n.L(), L.Type
			if types.IsEquality(L.Type) {
				bad, badType = n.R(), R.Type
			}
			c.Diag.TypeExpected(bad.Pos, c.FilePath, n.Op.String(), "comparable type", badType)
		}
	}

	if !types.Compatible(L.Type, R.Type) {
		c.Diag.Mismatch(n.Pos, c.FilePath, n.Op.String(), L.Type, R.Type)
	}

	n.DT = c.Builtins.BoolType()
	return ValueResult{Type: n.DT}
}

func (c *Checker) logicalBOP(n *ast.Node) ValueResult {
	c.enter("Logical")
	defer c.leave()

	L := c.Value(n.L())
	R := c.Value(n.R())

	if !types.IsCondition(L.Type) || !types.IsCondition(R.Type) {
		bad, badType := n.L(), L.Type
		if types.IsCondition(L.Type) {
			bad, badType = n.R(), R.Type
		}
		c.Diag.TypeExpected(bad.Pos, c.FilePath, n.Op.String(), "condition", badType)
	}

	n.DT = c.Builtins.BoolType()
	return ValueResult{Type: n.DT}
}

func (c *Checker) memberBOP(n *ast.Node) ValueResult {
	c.enter("MemberBOP")
	defer c.leave()

	L := c.Value(n.L())
	isArrow := n.Op == ast.OpArrow

	elem, isPtr := pointerElem(L.Type)
	recordLike := types.IsRecord(L.Type) || (isPtr && types.IsRecord(elem))

	var dt types.Type
	if !recordLike {
		desc := "structure or union type"
		if isArrow {
			desc = "structure or union pointer"
		}
		c.Diag.TypeExpected(n.L().Pos, c.FilePath, n.Op.String(), desc, L.Type)
		dt = types.NewInvalid()
	} else {
		if isArrow {
			if !types.IsPointer(L.Type) {
				c.Diag.TypeExpected(n.L().Pos, c.FilePath, n.Op.String(), "pointer", L.Type)
			}
		} else if types.IsPointer(L.Type) {
			c.Diag.TypeExpected(n.L().Pos, c.FilePath, n.Op.String(), "direct structure or union", L.Type)
		}

		recordType := L.Type
		if isPtr {
			recordType = elem
		}

		if sym := recordSymbol(recordType); sym != nil {
			if field, ok := sym.ChildByName(n.FieldName()); ok {
				n.Symbol = field
				dt = types.DeepDuplicate(field.DeclaredType())
			} else {
				c.Diag.UnknownMember(n.Pos, c.FilePath, n.Op.String(), L.Type, n.FieldName())
				dt = types.NewInvalid()
			}
		} else {
			dt = types.NewInvalid()
		}
	}

	n.DT = dt
	return ValueResult{Type: dt, LValue: isArrow || L.LValue}
}

func (c *Checker) commaBOP(n *ast.Node) ValueResult {
	c.enter("CommaBOP")
	defer c.leave()

	c.Value(n.L())
	R := c.Value(n.R())
	n.DT = types.DeepDuplicate(R.Type)
	return ValueResult{Type: n.DT, LValue: R.LValue}
}

func (c *Checker) unOp(n *ast.Node) ValueResult {
	c.enter("UOp")
	defer c.leave()

	R := c.Value(n.L())
	op := n.Op

	switch {
	case op == ast.OpPlus || op == ast.OpNeg || op == ast.OpInc || op == ast.OpDec || op == ast.OpBNot:
		if !types.IsNumeric(R.Type) {
			c.Diag.TypeExpected(n.L().Pos, c.FilePath, op.String(), "numeric type", R.Type)
			n.DT = types.NewInvalid()
		} else {
			if (op == ast.OpInc || op == ast.OpDec) && !R.LValue {
				c.Diag.LValueRequired(n.L().Pos, c.FilePath, op.String())
			}
			n.DT = types.DeriveFrom(R.Type)
		}

	case op == ast.OpLNot:
		if !types.IsCondition(R.Type) {
			c.Diag.TypeExpected(n.L().Pos, c.FilePath, op.String(), "condition", R.Type)
		}
		n.DT = c.Builtins.BoolType()

	case op == ast.OpDeref:
		if types.IsPointer(R.Type) {
			n.DT = types.DeriveBase(R.Type)
		} else {
			c.Diag.TypeExpected(n.L().Pos, c.FilePath, op.String(), "pointer", R.Type)
			n.DT = types.NewInvalid()
		}

	case op == ast.OpAddr:
		if !R.LValue {
			c.Diag.LValueRequired(n.L().Pos, c.FilePath, op.String())
		}
		n.DT = types.DerivePointer(R.Type)

	default:
		c.Diag.Unhandled(n.Pos, c.FilePath, "expression analyzer cannot dispatch this unary operator")
		n.DT = types.NewInvalid()
	}

	return ValueResult{Type: n.DT, LValue: op == ast.OpDeref}
}

func (c *Checker) ternary(n *ast.Node) ValueResult {
	c.enter("Ternary")
	defer c.leave()

	Cond := c.Value(n.Cond())
	L := c.Value(n.Then())
	R := c.Value(n.Else())

	if !types.IsCondition(Cond.Type) {
		c.Diag.TypeExpected(n.Cond().Pos, c.FilePath, "ternary ?:", "condition value", Cond.Type)
	}

	if types.Compatible(L.Type, R.Type) {
		n.DT = types.DeriveUnified(L.Type, R.Type)
	} else {
		c.Diag.Mismatch(n.Pos, c.FilePath, "ternary ?:", L.Type, R.Type)
		n.DT = types.NewInvalid()
	}

	return ValueResult{Type: n.DT, LValue: L.LValue && R.LValue}
}

func (c *Checker) index(n *ast.Node) ValueResult {
	c.enter("Index")
	defer c.leave()

	L := c.Value(n.L())
	R := c.Value(n.R())

	if !types.IsNumeric(R.Type) {
		c.Diag.TypeExpected(n.R().Pos, c.FilePath, "[]", "numeric index", R.Type)
	}

	if types.IsArray(L.Type) || types.IsPointer(L.Type) {
		n.DT = types.DeriveBase(L.Type)
	} else {
		c.Diag.TypeExpected(n.L().Pos, c.FilePath, "[]", "array or pointer", L.Type)
		n.DT = types.NewInvalid()
	}

	return ValueResult{Type: n.DT, LValue: L.LValue}
}

func (c *Checker) call(n *ast.Node) ValueResult {
	c.enter("Call")
	defer c.leave()

	L := c.Value(n.Callee())
	args := n.Args()

	if !types.IsCallable(L.Type) {
		c.Diag.TypeExpected(n.Callee().Pos, c.FilePath, "()", "function", L.Type)
		n.DT = types.NewInvalid()
		return ValueResult{Type: n.DT}
	}

	if types.IsInvalid(L.Type) {
		n.DT = types.NewInvalid()
		return ValueResult{Type: n.DT}
	}

	n.DT = types.DeriveReturn(L.Type)

	fn := functionOf(L.Type)
	arityOK := len(fn.Params) == len(args)
	if fn.Variadic {
		arityOK = len(fn.Params) <= len(args)
	}

	name := "function"
	if n.Callee().Symbol != nil {
		name = n.Callee().Symbol.Ident()
	}

	if !arityOK {
		c.Diag.Degree(n.Pos, c.FilePath, name, "parameter(s)", len(fn.Params), len(args))
		for _, arg := range args {
			c.Value(arg)
		}
		return ValueResult{Type: n.DT}
	}

	named := n.Callee().Symbol != nil
	for i, p := range fn.Params {
		arg := args[i]
		argVal := c.Value(arg)
		if !types.Compatible(argVal.Type, p) {
			if named {
				c.Diag.NamedParameterMismatch(arg.Pos, c.FilePath, n.Callee().Symbol.Ident(), p, argVal.Type)
			} else {
				c.Diag.ParameterMismatch(arg.Pos, c.FilePath, i, p, argVal.Type)
			}
		}
	}
	for i := len(fn.Params); i < len(args); i++ {
		c.Value(args[i])
	}

	return ValueResult{Type: n.DT}
}

func (c *Checker) cast(n *ast.Node) ValueResult {
	c.enter("Cast")
	defer c.leave()

	target := c.ResolveType(n.TypeExprChild())
	R := c.Value(n.ValueChild())

	n.DT = types.DeepDuplicate(target)

	return ValueResult{Type: n.DT, LValue: R.LValue, Cast: ClassifyCast(R.Type, target)}
}

func (c *Checker) sizeof(n *ast.Node) ValueResult {
	c.enter("Sizeof")
	defer c.leave()

	operand := n.L()
	if operand.Kind == ast.KindTypeExpr {
		c.ResolveType(operand)
	} else {
		c.Value(operand)
	}

	n.DT = c.Builtins.IntType()
	return ValueResult{Type: n.DT}
}

func (c *Checker) literal(n *ast.Node) ValueResult {
	c.enter("Literal")
	defer c.leave()

	switch n.LitKind {
	case ast.LitInt:
		n.DT = c.Builtins.IntType()
	case ast.LitChar:
		n.DT = c.Builtins.CharType()
	case ast.LitBool:
		n.DT = c.Builtins.BoolType()
	case ast.LitStr:
		n.DT = types.NewPointer(c.Builtins.CharType())
	case ast.LitIdent:
		n.DT = c.identLiteral(n)
	default:
		n.DT = types.NewInvalid()
	}

	return ValueResult{Type: n.DT, LValue: n.LitKind == ast.LitIdent}
}

func (c *Checker) identLiteral(n *ast.Node) types.Type {
	sym := n.Symbol
	if sym == nil {
		return types.NewInvalid()
	}

	switch sym.Kind() {
	case types.KindEnumConstant, types.KindID, types.KindParam:
		if sym.DeclaredType() == nil {
			return types.NewInvalid()
		}
		return types.DeepDuplicate(sym.DeclaredType())
	default:
		c.Diag.IllegalSymbolAsValue(n.Pos, c.FilePath, sym.Kind())
		return types.NewInvalid()
	}
}

func (c *Checker) compoundLiteral(n *ast.Node) ValueResult {
	c.enter("CompoundLiteral")
	defer c.leave()

	dt := c.ResolveType(n.TypeExprChild())
	c.InitOrCompoundLiteral(n, dt)

	return ValueResult{Type: n.DT, LValue: true}
}

// -----------------------------------------------------------------------------
// Small type-introspection helpers the Expression Analyzer needs beyond
// what internal/types exposes as classification predicates.

func pointerElem(t types.Type) (types.Type, bool) {
	p, ok := t.(*types.Pointer)
	if !ok {
		return nil, false
	}
	return p.Elem, true
}

func recordSymbol(t types.Type) types.Symbol {
	b, ok := t.(*types.Basic)
	if !ok {
		return nil
	}
	return b.Sym
}

func functionOf(t types.Type) *types.Function {
	if f, ok := t.(*types.Function); ok {
		return f
	}
	if p, ok := t.(*types.Pointer); ok {
		if f, ok := p.Elem.(*types.Function); ok {
			return f
		}
	}
	return nil
}

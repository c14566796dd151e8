package check

import (
	"github.com/noobshow/fcc/internal/ast"
	"github.com/noobshow/fcc/internal/types"
)

// Node is the Statement/Declaration Driver (spec.md §4.5): it walks
// non-expression nodes (module, using, function implementation,
// declaration, block, branch, loop, iter, return, break) and, at a leaf
// that is itself a value expression used as a statement, hands off to the
// Expression Analyzer. Ported from original_source/src/analyzer.c's
// analyzerNode dispatch.
func (c *Checker) Node(n *ast.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case ast.KindInvalid:
		// nothing to check

	case ast.KindModule, ast.KindBlock:
		c.block(n)

	case ast.KindUsing:
		c.Node(n.R())

	case ast.KindFuncImpl:
		c.funcImpl(n)

	case ast.KindDecl:
		c.decl(n)

	case ast.KindBranch:
		c.branch(n)

	case ast.KindLoop:
		c.loop(n)

	case ast.KindIter:
		c.iter(n)

	case ast.KindReturn:
		c.ret(n)

	case ast.KindBreak:
		// Nothing to check: appearing inside a breakable block is a
		// parsing concern, not a semantic one.

	default:
		// Any other kind reaching the statement driver is a value
		// expression used in statement position (e.g. `f();`): its
		// result is legitimately discarded.
		c.Value(n)
	}
}

func (c *Checker) block(n *ast.Node) {
	c.enter("Block")
	defer c.leave()

	for _, stmt := range n.Children {
		c.Node(stmt)
	}
}

// funcImpl analyzes a function's prototype declaration, checks that it
// really is a function being implemented, then walks the body with
// returnType set so nested `return` statements can check against it.
// Children: [0]=prototype Decl, [1]=body Block.
func (c *Checker) funcImpl(n *ast.Node) {
	c.enter("FuncImpl")
	defer c.leave()

	proto := n.L()
	c.Node(proto)

	protoSymbolNode := proto
	if len(proto.Children) > 0 {
		protoSymbolNode = proto.Children[0]
	}

	if protoSymbolNode.Symbol == nil || !types.IsFunction(protoSymbolNode.Symbol.DeclaredType()) {
		var found types.Type = types.NewInvalid()
		if n.Symbol != nil {
			found = n.Symbol.DeclaredType()
		}
		c.Diag.TypeExpected(n.Pos, c.FilePath, "implementation", "function", found)
	}

	savedReturn := c.returnType
	if n.Symbol != nil {
		c.returnType = types.DeriveReturn(n.Symbol.DeclaredType())
	} else {
		c.returnType = types.NewInvalid()
	}

	c.Node(n.R())

	c.returnType = savedReturn
}

// decl is the declaration-analysis external boundary (spec.md §4.5, §6):
// building and validating declared symbols — conflict/redeclaration
// checking among them — is explicitly out of this analyzer's scope. When a
// DeclAnalyzer collaborator is configured, the driver defers to it; with
// none configured (the common case for this core), a Decl node is simply
// not descended into beyond what FuncImpl needs directly from its
// already-resolved symbol.
func (c *Checker) decl(n *ast.Node) {
	c.enter("Decl")
	defer c.leave()

	if c.DeclAnalyzer != nil {
		c.DeclAnalyzer(n)
	}
}

// branch analyzes an `if` statement. Children: [0]=condition,
// [1]=then-block, [2]=optional else-block.
func (c *Checker) branch(n *ast.Node) {
	c.enter("Branch")
	defer c.leave()

	cond := c.Value(n.Cond())
	if !types.IsCondition(cond.Type) {
		c.Diag.TypeExpected(n.Cond().Pos, c.FilePath, "if", "condition", cond.Type)
	}

	c.Node(n.Then())
	if len(n.Children) > 2 {
		c.Node(n.Else())
	}
}

// loop analyzes a `while`/`do-while` loop. Which child is the condition
// and which is the body is determined positionally, matching the
// original's isDo test: a do-while's body (a Block) comes first.
func (c *Checker) loop(n *ast.Node) {
	c.enter("Loop")
	defer c.leave()

	isDo := n.L().Kind == ast.KindBlock
	condNode, bodyNode := n.L(), n.R()
	if isDo {
		condNode, bodyNode = n.R(), n.L()
	}

	cond := c.Value(condNode)
	if !types.IsCondition(cond.Type) {
		where := "while loop"
		if isDo {
			where = "do loop"
		}
		c.Diag.TypeExpected(condNode.Pos, c.FilePath, where, "condition", cond.Type)
	}

	c.Node(bodyNode)
}

// iter analyzes a C-style `for` loop. Children: [0]=init, [1]=cond,
// [2]=iter, [3]=body.
func (c *Checker) iter(n *ast.Node) {
	c.enter("Iter")
	defer c.leave()

	init, cond, iter := n.Children[0], n.Children[1], n.Children[2]

	if init.Kind == ast.KindDecl {
		c.Node(init)
	} else if init.Kind != ast.KindEmpty {
		c.Value(init)
	}

	if cond.Kind != ast.KindEmpty {
		condRes := c.Value(cond)
		if !types.IsCondition(condRes.Type) {
			c.Diag.TypeExpected(cond.Pos, c.FilePath, "for loop", "condition", condRes.Type)
		}
	}

	if iter.Kind != ast.KindEmpty {
		c.Value(iter)
	}

	c.Node(n.Body())
}

// ret analyzes a `return` statement against the enclosing function's
// return type.
func (c *Checker) ret(n *ast.Node) {
	c.enter("Return")
	defer c.leave()

	if len(n.Children) > 0 {
		valNode := n.Children[0]
		R := c.Value(valNode)
		if !types.Compatible(R.Type, c.returnType) {
			c.Diag.TypeExpectedType(valNode.Pos, c.FilePath, "return", c.returnType, R.Type)
		}
	} else if !types.IsVoid(c.returnType) {
		c.Diag.TypeExpectedType(n.Pos, c.FilePath, "return statement", c.returnType, c.Builtins.VoidType())
	}
}

// Package ast defines the AST node shape this analyzer mutates in place
// (spec.md §3.3). It intentionally carries no lexer, parser, or
// symbol-table construction logic: a real front end builds the tree and
// hands it, fully formed, to internal/check; this package only describes
// the node's fields and the handful of positional accessors the analyzer
// needs (`l`, `r`, a ternary "condition" child, and a children list).
//
// The teacher's syntax.ASTBranch is one struct interpreted by a string
// "Name" field; per spec.md §9's REDESIGN FLAG this is generalized into an
// enumerated Kind/Op pair computed once upstream, with classification
// implemented as lookup tables on the enum (see operator.go) instead of
// repeated string comparisons.
package ast

import "github.com/noobshow/fcc/internal/types"

// Position is a source span, pass-through only: the analyzer never
// reconstructs or refines it, only forwards it into diagnostics.
type Position struct {
	StartLine, StartCol int
	EndLine, EndCol      int
}

// Kind discriminates what shape of node this is.
type Kind int

const (
	KindInvalid Kind = iota
	// KindEmpty marks a legitimately elided slot (e.g. the omitted
	// condition in `for (;;)`), distinct from KindInvalid's "a parse error
	// occurred here" meaning.
	KindEmpty

	// Expression kinds
	KindBinOp
	KindUnOp
	KindTernary
	KindIndex
	KindCall
	KindCast
	KindSizeof
	KindLiteral
	KindCompoundLiteral
	KindTypeExpr // opaque type-expression node, handed to the external type analyzer

	// Statement kinds
	KindModule
	KindUsing
	KindFuncImpl
	KindDecl
	KindBlock
	KindBranch
	KindLoop
	KindIter
	KindReturn
	KindBreak
)

// LitKind classifies a KindLiteral node.
type LitKind int

const (
	LitInt LitKind = iota
	LitChar
	LitBool
	LitStr
	LitIdent
	// LitInit marks a nested brace-enclosed initializer element (as opposed
	// to a plain expression) inside an aggregate initializer or compound
	// literal; the Initializer Analyzer recurses into these rather than
	// handing them to the Expression Analyzer (spec.md §4.3).
	LitInit
)

// Node is the single concrete AST node type. Which fields are meaningful
// depends on Kind; see the accessors below for the positional contract
// each Kind honors (mirroring the original `l`/`r`/`firstChild` fields).
type Node struct {
	Kind Kind
	Op   Op
	Pos  Position

	// Children holds this node's ordered children exactly as the parser
	// produced them. Accessors below interpret them positionally per Kind.
	Children []*Node

	LitKind  LitKind
	LitValue string // raw text for Int/Char/Bool/Str; field/identifier name for Ident and member-access field names

	// DT and Symbol are written by the analyzer (DT on every expression
	// node; Symbol on member-access and identifier-literal nodes). For
	// identifier literals, Symbol is instead an input: the external
	// symbol-table builder resolves it before this pass ever sees the
	// node (spec.md §6).
	DT     types.Type
	Symbol types.Symbol
}

// New creates a node of the given kind with the given children.
func New(kind Kind, pos Position, children ...*Node) *Node {
	return &Node{Kind: kind, Pos: pos, Children: children}
}

// NewOp creates an operator node (KindBinOp/KindUnOp) with the given op.
func NewOp(kind Kind, op Op, pos Position, children ...*Node) *Node {
	return &Node{Kind: kind, Op: op, Pos: pos, Children: children}
}

// NewLiteral creates a KindLiteral node.
func NewLiteral(litKind LitKind, value string, pos Position) *Node {
	return &Node{Kind: KindLiteral, LitKind: litKind, LitValue: value, Pos: pos}
}

// NewIdent creates an identifier-literal node with its pre-resolved symbol,
// matching the input contract of spec.md §6.
func NewIdent(name string, sym types.Symbol, pos Position) *Node {
	return &Node{Kind: KindLiteral, LitKind: LitIdent, LitValue: name, Pos: pos, Symbol: sym}
}

// -----------------------------------------------------------------------------
// Positional accessors. L/R follow the original `l`/`r` convention: the
// left operand (or sole child, for unary) and the right operand.

// L returns Children[0].
func (n *Node) L() *Node { return n.Children[0] }

// R returns Children[1].
func (n *Node) R() *Node { return n.Children[1] }

// Cond returns Children[0]: the condition of a ternary, a branch, or a
// while loop. A do-while loop node puts its body first and its condition
// at Children[1].
func (n *Node) Cond() *Node { return n.Children[0] }

// Then returns the ternary "then"/true arm: Children[1].
func (n *Node) Then() *Node { return n.Children[1] }

// Else returns the ternary "else"/false arm: Children[2].
func (n *Node) Else() *Node { return n.Children[2] }

// Body returns a KindIter node's loop body: Children[3] (after the
// init/cond/iter triple at [0:3]).
func (n *Node) Body() *Node { return n.Children[3] }

// Callee returns the call expression's callee: Children[0].
func (n *Node) Callee() *Node { return n.Children[0] }

// Args returns the call expression's argument list.
func (n *Node) Args() []*Node { return n.Children[1:] }

// FieldName returns the bare field name of a member-access (`.`/`->`) node.
// This child must never be recursively analyzed as a value (spec.md
// §4.2.4): its meaning is the field's spelling, not a reference.
func (n *Node) FieldName() string { return n.Children[1].LitValue }

// TypeExprChild returns the type-expression child of a Cast or a Compound
// literal: Children[0].
func (n *Node) TypeExprChild() *Node { return n.Children[0] }

// ValueChild returns the value child of a Cast: Children[1].
func (n *Node) ValueChild() *Node { return n.Children[1] }

// InitElements returns an aggregate initializer's or compound literal's
// ordered elements. For a compound literal, Children[0] is the type
// expression and the elements follow; for a bare brace initializer
// (LitInit) there is no type-expression child, so the elements are all of
// Children.
func (n *Node) InitElements() []*Node {
	if n.Kind == KindCompoundLiteral {
		return n.Children[1:]
	}
	return n.Children
}

// ChildCount returns len(Children). For a compound literal this includes
// the type-expression child, and for a call it includes the callee.
func (n *Node) ChildCount() int { return len(n.Children) }

package symtab

import "github.com/noobshow/fcc/internal/types"

// Builtins is the builtin-types table described in spec.md §6: a small set
// of primitive type symbols indexed by name, supplied ready-made to the
// analyzer so Literal, Sizeof, and friends never have to fabricate a type
// out of thin air.
type Builtins struct {
	Void   *Symbol
	Bool   *Symbol
	Char   *Symbol
	Int    *Symbol
	Long   *Symbol
	Float  *Symbol
	Double *Symbol
}

// NewBuiltins constructs the standard builtin-types table. Numeric types
// carry Numeric|Ordinal|Equality|Assignment|Condition; bool carries
// everything but Numeric (it is still assignable and a valid condition,
// but arithmetic on it is not implicitly legal); char behaves as a small
// numeric type, matching the original source's rune/char-is-numeric
// treatment (original_source/src/analyzer-value.c's numeric-operator
// gate accepts any typeIsNumeric operand, and chars satisfy it there).
func NewBuiltins() *Builtins {
	full := types.Numeric | types.Ordinal | types.Equality | types.Assignment | types.Condition
	boolMask := types.Ordinal | types.Equality | types.Assignment | types.Condition

	return &Builtins{
		Void:   NewNamedType("void", 0, 0),
		Bool:   NewNamedType("bool", 1, boolMask),
		Char:   NewNamedType("char", 1, full),
		Int:    NewNamedType("int", 4, full),
		Long:   NewNamedType("long", 8, full),
		Float:  NewNamedType("float", 4, full),
		Double: NewNamedType("double", 8, full),
	}
}

// VoidType, BoolType, ... are convenience constructors returning a fresh
// *types.Basic for each builtin, since every node must own its own type
// tree (spec.md §3.1's ownership invariant) rather than share the
// Builtins table's symbols' own DeclaredType value.
func (b *Builtins) VoidType() types.Type   { return types.NewBasic(b.Void) }
func (b *Builtins) BoolType() types.Type   { return types.NewBasic(b.Bool) }
func (b *Builtins) CharType() types.Type   { return types.NewBasic(b.Char) }
func (b *Builtins) IntType() types.Type    { return types.NewBasic(b.Int) }
func (b *Builtins) LongType() types.Type   { return types.NewBasic(b.Long) }
func (b *Builtins) FloatType() types.Type  { return types.NewBasic(b.Float) }
func (b *Builtins) DoubleType() types.Type { return types.NewBasic(b.Double) }

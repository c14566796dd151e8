package types

// SymbolKind classifies what a Symbol names. The analyzer only ever reads
// this value; it never constructs or mutates a symbol.
type SymbolKind int

const (
	// KindType names a builtin or user-defined named type (e.g. `int`, a
	// typedef). A bare type name appearing in value position is illegal.
	KindType SymbolKind = iota
	// KindStruct names a struct/union tag.
	KindStruct
	// KindID names an ordinary variable.
	KindID
	// KindParam names a function parameter.
	KindParam
	// KindEnumConstant names an enumeration constant.
	KindEnumConstant
)

func (k SymbolKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindStruct:
		return "struct"
	case KindID:
		return "variable"
	case KindParam:
		return "parameter"
	case KindEnumConstant:
		return "enum constant"
	default:
		return "symbol"
	}
}

// ClassMask is the bitmask of classifications a Basic type's symbol
// satisfies: numeric, ordinal, equality-comparable, assignment-target,
// condition (see spec.md §3.1 "Classification bits").
type ClassMask uint

const (
	Numeric ClassMask = 1 << iota
	Ordinal
	Equality
	Assignment
	Condition
)

// Symbol is the read-only view the type algebra and the expression analyzer
// have of a named declaration. It is produced and owned by an external
// symbol-table builder; this package and internal/check never construct one
// directly, only internal/symtab (or a test harness) does.
type Symbol interface {
	// Ident is the symbol's name as written in source.
	Ident() string
	// Kind says what sort of declaration this is.
	Kind() SymbolKind
	// DeclaredType is the type this symbol was declared with.
	DeclaredType() Type
	// Size is the declared size in bytes, meaningful for basic types.
	Size() int
	// Mask is the classification bitmask, meaningful for basic types.
	Mask() ClassMask
	// ChildCount is the number of ordered children (struct fields).
	ChildCount() int
	// ChildAt returns the nth child symbol, in declaration order.
	ChildAt(i int) Symbol
	// ChildByName looks up a direct child (struct field) by name.
	ChildByName(name string) (Symbol, bool)
}

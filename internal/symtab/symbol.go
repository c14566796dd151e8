// Package symtab is the read-only symbol reference the analyzer consumes
// (spec.md §3.2). It is a thin, concrete implementation of types.Symbol: a
// stand-in for whatever symbol-table builder a real front end would supply.
// internal/check never constructs a *Symbol itself; it only ever reads one
// handed to it on an *ast.Node.
package symtab

import "github.com/noobshow/fcc/internal/types"

// Symbol is a named declaration: a variable, parameter, enum constant,
// struct tag, or named type. Children are ordered struct fields, in
// declaration order, mirroring sem.Symbol's `children` field in the
// teacher's symbol table.
type Symbol struct {
	Name      string
	SymKind   types.SymbolKind
	Declared  types.Type
	SizeOf    int
	ClassMask types.ClassMask
	Children  []*Symbol
}

var _ types.Symbol = (*Symbol)(nil)

func (s *Symbol) Ident() string            { return s.Name }
func (s *Symbol) Kind() types.SymbolKind   { return s.SymKind }
func (s *Symbol) DeclaredType() types.Type { return s.Declared }
func (s *Symbol) Size() int                { return s.SizeOf }
func (s *Symbol) Mask() types.ClassMask    { return s.ClassMask }
func (s *Symbol) ChildCount() int          { return len(s.Children) }

func (s *Symbol) ChildAt(i int) types.Symbol { return s.Children[i] }

func (s *Symbol) ChildByName(name string) (types.Symbol, bool) {
	for _, c := range s.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// NewVar creates a variable symbol (the common case used to build test
// trees and small demo programs).
func NewVar(name string, declared types.Type) *Symbol {
	return &Symbol{Name: name, SymKind: types.KindID, Declared: declared}
}

// NewParam creates a function-parameter symbol.
func NewParam(name string, declared types.Type) *Symbol {
	return &Symbol{Name: name, SymKind: types.KindParam, Declared: declared}
}

// NewEnumConstant creates an enumeration-constant symbol of the given type.
func NewEnumConstant(name string, declared types.Type) *Symbol {
	return &Symbol{Name: name, SymKind: types.KindEnumConstant, Declared: declared}
}

// NewStruct creates a struct-tag symbol with the given fields, in
// declaration order. The struct's own DeclaredType is a Basic referencing
// itself, matching how a struct tag names its own type.
func NewStruct(name string, fields []*Symbol) *Symbol {
	s := &Symbol{Name: name, SymKind: types.KindStruct, Children: fields}
	s.Declared = types.NewBasic(s)
	return s
}

// NewNamedType creates a plain named-type symbol (e.g. a builtin or
// typedef name) of the given size and classification mask. Its own
// DeclaredType is a Basic referencing itself.
func NewNamedType(name string, size int, mask types.ClassMask) *Symbol {
	s := &Symbol{Name: name, SymKind: types.KindType, SizeOf: size, ClassMask: mask}
	s.Declared = types.NewBasic(s)
	return s
}

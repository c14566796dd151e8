package diag

import (
	"fmt"

	"github.com/noobshow/fcc/internal/ast"
	"github.com/noobshow/fcc/internal/types"
)

// Each reporter below formats and reports one diagnostic kind. Wording is
// ported verbatim from original_source/src/analyzer.c's analyzerError*
// family, substituting types.ToStr for the original's typeToStr.

// TypeExpected reports a context expecting some descriptive category of
// thing ("a function", "a condition") and finding a value of found
// instead (analyzerErrorExpected).
func (s *Sink) TypeExpected(pos ast.Position, filePath, where, expectedDesc string, found types.Type) {
	text := fmt.Sprintf("%s expected %s, found %s", where, expectedDesc, types.ToStr(found, ""))
	s.report(Message{Kind: KindTypeExpected, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// TypeExpectedType reports a context expecting a specific type and finding
// another (analyzerErrorExpectedType).
func (s *Sink) TypeExpectedType(pos ast.Position, filePath, where string, expected, found types.Type) {
	s.TypeExpected(pos, filePath, where, types.ToStr(expected, ""), found)
}

// OperatorType reports an operator whose operand doesn't satisfy the
// operator's required classification (analyzerErrorOp), e.g. "+ requires a
// numeric type, found char *".
func (s *Sink) OperatorType(pos ast.Position, filePath, op, desc string, found types.Type) {
	text := fmt.Sprintf("%s requires %s, found %s", op, desc, types.ToStr(found, ""))
	s.report(Message{Kind: KindOperatorType, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// LValueRequired reports an operator applied to a non-l-value operand
// (analyzerErrorLvalue).
func (s *Sink) LValueRequired(pos ast.Position, filePath, op string) {
	text := fmt.Sprintf("%s requires lvalue", op)
	s.report(Message{Kind: KindLValueRequired, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// Mismatch reports two operand types that must agree for an operator but
// don't (analyzerErrorMismatch).
func (s *Sink) Mismatch(pos ast.Position, filePath, op string, l, r types.Type) {
	text := fmt.Sprintf("type mismatch between %s and %s for %s", types.ToStr(l, ""), types.ToStr(r, ""), op)
	s.report(Message{Kind: KindMismatch, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// Degree reports an arity mismatch: a call, initializer, or subscript with
// the wrong number of things (analyzerErrorDegree).
func (s *Sink) Degree(pos ast.Position, filePath, where, thing string, expected, found int) {
	text := fmt.Sprintf("%s expected %d %s, %d given", where, expected, thing, found)
	s.report(Message{Kind: KindDegree, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// ParameterMismatch reports a positional call argument whose type is
// incompatible with the declared parameter (analyzerErrorParamMismatch,
// 0-indexed n rendered 1-indexed).
func (s *Sink) ParameterMismatch(pos ast.Position, filePath string, n int, expected, found types.Type) {
	text := fmt.Sprintf("type mismatch at parameter %d: expected %s, found %s", n+1, types.ToStr(expected, ""), types.ToStr(found, ""))
	s.report(Message{Kind: KindParameterMismatch, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// NamedParameterMismatch is ParameterMismatch's counterpart where a name
// rather than a position identifies the mismatched slot: the callee's
// identifier for a call whose callee is a named symbol, or the field's name
// for a struct/compound-literal initializer. The text carries no parameter
// index.
func (s *Sink) NamedParameterMismatch(pos ast.Position, filePath, name string, expected, found types.Type) {
	text := fmt.Sprintf("type mismatch for %s: expected %s, found %s", name, types.ToStr(expected, ""), types.ToStr(found, ""))
	s.report(Message{Kind: KindNamedParameterMismatch, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// UnknownMember reports a `.`/`->` access naming a field the record type
// doesn't have (analyzerErrorMember).
func (s *Sink) UnknownMember(pos ast.Position, filePath, op string, record types.Type, fieldName string) {
	text := fmt.Sprintf("%s expected field of %s, found %s", op, types.ToStr(record, ""), fieldName)
	s.report(Message{Kind: KindUnknownMember, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// ConflictingDeclaration reports a symbol redeclared with an incompatible
// type (analyzerErrorConflictingDeclarations).
func (s *Sink) ConflictingDeclaration(pos ast.Position, filePath, name string, declared, found types.Type) {
	text := fmt.Sprintf("%s redeclared as conflicting type %s", types.ToStr(declared, name), types.ToStr(found, ""))
	s.report(Message{Kind: KindConflictingDeclaration, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// Redeclaration reports a symbol declared twice with the same type
// (analyzerErrorRedeclaredVar).
func (s *Sink) Redeclaration(pos ast.Position, filePath, name string, declared types.Type) {
	text := fmt.Sprintf("%s redeclared", types.ToStr(declared, name))
	s.report(Message{Kind: KindRedeclaration, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// IllegalSymbolAsValue reports a type name, struct tag, or other
// non-value-carrying symbol used where an expression was expected
// (analyzerErrorIllegalSymAsValue).
func (s *Sink) IllegalSymbolAsValue(pos ast.Position, filePath string, kind types.SymbolKind) {
	text := fmt.Sprintf("cannot use a %s as a value", kind)
	s.report(Message{Kind: KindIllegalSymbolAsValue, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

// Unhandled reports an internal failure as a diagnostic rather than letting
// it escape: a recovered panic (see internal/check's recover boundary,
// check.WithRecover) or a node shape the Expression Analyzer cannot
// dispatch.
func (s *Sink) Unhandled(pos ast.Position, filePath string, recovered interface{}) {
	text := fmt.Sprintf("internal error: %v", recovered)
	s.report(Message{Kind: KindUnhandled, Text: text, Pos: pos, FilePath: filePath, IsError: true})
}

package check

import "github.com/noobshow/fcc/internal/types"

// CastClass classifies a cast's (actual, target) type pair under the
// conservative policy this analyzer substitutes for the original's
// unimplemented cast-validity check (original_source/src/analyzer-value.c's
// analyzerCast carries a literal "TODO: Verify compatibility" and never
// rejects anything). No diagnostic is tied to any CastClass value today —
// Cast never fails to type-check on account of its class — but a caller
// that wants stricter enforcement later has a classification to hang a new
// check off of, without this package inventing an unspecified diagnostic.
type CastClass int

const (
	// CastUnclassified covers any (actual, target) pair not recognized as
	// one of the narrower classes below — notably struct casts, casts
	// between an array and a non-pointer type, and casts involving Invalid.
	CastUnclassified CastClass = iota
	// CastNumericToNumeric is an arithmetic-to-arithmetic cast (including
	// char and the floating types): always legal. bool carries no Numeric
	// bit, so a cast to or from bool is CastUnclassified.
	CastNumericToNumeric
	// CastPointerLike is a pointer/array-to-pointer/array cast.
	CastPointerLike
)

// ClassifyCast classifies a cast from actual to target.
func ClassifyCast(actual, target types.Type) CastClass {
	if types.IsInvalid(actual) || types.IsInvalid(target) {
		return CastUnclassified
	}

	switch {
	case isPointerOrArray(actual) && isPointerOrArray(target):
		return CastPointerLike
	case types.IsNumeric(actual) && types.IsNumeric(target) && !types.IsPointer(actual) && !types.IsPointer(target):
		return CastNumericToNumeric
	default:
		return CastUnclassified
	}
}

func isPointerOrArray(t types.Type) bool {
	return types.IsPointer(t) || types.IsArray(t)
}

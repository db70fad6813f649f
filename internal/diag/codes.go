package diag

// Error code ranges, re-partitioned from the teacher's single E0xxx range
// (internal/errors/codes.go) into three families for this domain:
//
//	I0001-I0099: Impossible (internal invariant violations, see errors.go)
//	P0001-P0099: surface parse errors
//	P0100-P0199: elaboration errors (undefined names, arity mismatches, ...)
//	T0001-T0099: termination-check failures
const (
	PCodeSyntax            = "P0001"
	PCodeUndefinedFunction = "P0100"
	PCodeUndefinedCon      = "P0101"
	PCodeArityMismatch     = "P0102"
	PCodeDuplicateFunction = "P0103"

	TCodeNotTerminating = "T0001"
)

// Describe returns a human-readable description of a code, mirroring the
// teacher's GetErrorDescription.
func Describe(code string) string {
	switch code {
	case PCodeSyntax:
		return "the source does not match the surface grammar"
	case PCodeUndefinedFunction:
		return "a call references a function that was never defined"
	case PCodeUndefinedCon:
		return "a pattern references a constructor that was never declared"
	case PCodeArityMismatch:
		return "a constructor or call was applied to the wrong number of arguments"
	case PCodeDuplicateFunction:
		return "a name is declared twice, as two constructors or as both a constructor and a function"
	case TCodeNotTerminating:
		return "some recursive call in this block does not strictly decrease"
	case ICodeBlockedAfterReduce:
		return "a term stayed blocked after the reduction oracle ran"
	case ICodeShapeMismatch:
		return "two call matrices that should have composed had incompatible shapes"
	case ICodeMoreHeadVarsThanRHS:
		return "a clause head bound more variables than its body has binders for"
	case ICodeBadMutualIndex:
		return "a name was missing from the mutual block it claims to belong to"
	default:
		return "unknown diagnostic code"
	}
}

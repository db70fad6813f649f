// Package diag implements the error-handling design of section 7: the
// Impossible internal-invariant-violation kind, propagation of
// OracleFailure, and (as ambient host-facing infrastructure) the
// Rust-style CompilerError/Reporter machinery used by the CLI, LSP, and
// REPL, adapted from the teacher's internal/errors package.
package diag

import (
	"errors"
	"fmt"
)

// Impossible represents an internal invariant violation: a VarP pattern
// against a RealBody, a matrix shape mismatch where none should be
// possible, a Blocked term surviving reduction, and so on. It must not
// occur on well-typed input. Every internal package returns it as an
// ordinary error value rather than panicking — "never caught inside the
// core" is satisfied because no package below checker ever inspects an
// error for this type and swallows it; they all propagate it unchanged
// up to checker.TerminationCheck, which is the only place that is allowed
// to know the distinction matters (it still just returns the error).
type Impossible struct {
	Code   string // stable identifier, e.g. "I0001"
	Detail string
}

func (e Impossible) Error() string {
	return fmt.Sprintf("impossible[%s]: %s", e.Code, e.Detail)
}

// Impossible invariant codes (I-series).
const (
	ICodeBlockedAfterReduce  = "I0001" // a Blocked term survived the reduction oracle
	ICodeShapeMismatch       = "I0002" // a matrix composition the core itself requested had mismatched shapes
	ICodeMoreHeadVarsThanRHS = "I0003" // a VarP head pattern had no corresponding binder left in the clause body
	ICodeBadMutualIndex      = "I0004" // a Name was not found in its own claimed mutual block
)

// NewImpossible builds an Impossible error value. Call this only for conditions the
// specification documents as internal invariant violations — never for
// ordinary, recoverable failures (those return a different error).
func NewImpossible(code, detail string) error {
	return Impossible{Code: code, Detail: detail}
}

// IsImpossible reports whether err is (or wraps) an Impossible invariant
// violation, for hosts that want to react to it specifically (e.g. the
// CLI printing it as a bug report rather than a user-facing diagnostic).
func IsImpossible(err error) bool {
	var imp Impossible
	return errors.As(err, &imp)
}

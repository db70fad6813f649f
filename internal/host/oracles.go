// Package host defines the boundary between the core termination checker
// and whatever surface language or elaborator feeds it: the Oracles
// interface of section 6, the DefKind/MutualBlock data it returns, and
// RangeSet, the concrete witness/source-range type threaded through the
// core's diagnostics.
package host

import (
	"sizecheck/internal/pattern"
	"sizecheck/internal/term"
)

// Oracles is the set of external collaborators the core consults. It adds
// no context and performs no retry around any of them — an oracle's error
// is returned to the core's caller unchanged, per the error-handling design.
type Oracles interface {
	// Reduce normalizes a term to weak head normal form (or further, if the
	// host chooses), resolving metavariables and unfolding definitions where
	// the host's elaboration state allows it. A term that cannot yet be
	// reduced further is returned unchanged, not wrapped in Blocked; Blocked
	// surviving Reduce is an invariant violation (see diag.Impossible).
	Reduce(t term.Term) (term.Term, error)

	// DefOf reports what kind of definition a Name denotes.
	DefOf(n term.Name) (DefKind, error)

	// MutualBlocksContaining reports the ordered set of Names mutually
	// recursive with n (n is always a member of the result).
	MutualBlocksContaining(n term.Name) (MutualBlock, error)

	// RangesOf returns the source ranges contributing to n's definition,
	// used only to build witnesses attached to a Failed verdict — the core
	// never inspects a RangeSet's contents, only unions and carries it.
	RangesOf(n term.Name) RangeSet
}

// DefKind distinguishes a function (whose clauses the walker must visit)
// from everything else the core does not recurse into.
type DefKind interface{ isDefKind() }

// Function is a user-defined function with one or more clauses, each a
// pair of its pattern vector and already-extracted right-hand-side term.
type Function struct {
	Clauses []Clause
}

// Clause pairs a function clause's de Bruijn pattern vector with its body.
// Extraction (pattern.Extract) has already run by the time a Clause is
// handed to the walker.
type Clause struct {
	Patterns []pattern.DeBruijn
	Body     term.Term
}

// Other marks a Name that is not a function the walker recurses into (a
// constructor, an axiom, an external/foreign definition).
type Other struct{}

func (Function) isDefKind() {}
func (Other) isDefKind()    {}

// MutualBlock is the ordered set of mutually recursive Names a function
// belongs to, including itself. Verdict reporting follows the order of
// Members as the block's builder supplied it.
type MutualBlock struct {
	Members []term.Name
}

// IndexOf returns the position of n within the block, or -1 if absent.
func (b MutualBlock) IndexOf(n term.Name) int {
	for i, m := range b.Members {
		if m == n {
			return i
		}
	}
	return -1
}

// Contains reports whether n is a member of the block.
func (b MutualBlock) Contains(n term.Name) bool {
	return b.IndexOf(n) >= 0
}

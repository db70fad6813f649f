// Package decide implements the termination decision of section 4.4:
// a completed call graph terminates iff every idempotent self-loop it
// contains has a strict (LT) entry on its diagonal.
package decide

import (
	"sizecheck/internal/callgraph"
	"sizecheck/internal/host"
	"sizecheck/internal/matrix"
	"sizecheck/internal/order"
	"sizecheck/internal/term"
)

// Result is the outcome of Decide: either Terminates or Failed, carrying
// every offending idempotent loop so the host can report them all at once.
type Result interface{ isResult() }

// Terminates reports that every idempotent self-loop in the graph has a
// strict diagonal entry.
type Terminates struct{}

// Failed reports one or more idempotent self-loops whose diagonal is
// entirely LE/UNK — none of their diagonal entries is strict, so no bound
// is known to decrease.
type Failed struct {
	Loops []FailedLoop
}

func (Terminates) isResult() {}
func (Failed) isResult()     {}

// FailedLoop names an offending self-loop: the Name the loop is on, its
// idempotent CallMatrix, and the source ranges it was witnessed by.
type FailedLoop struct {
	Name    term.Name
	Matrix  matrix.Matrix
	Witness host.RangeSet
}

// Decide inspects a (already Complete'd) graph's self-loops: edges whose
// source equals its target. A self-loop only bears on termination once it
// is idempotent — composing it with itself yields the same matrix — since
// otherwise further closure could still strengthen or weaken its diagonal.
func Decide(g callgraph.Graph) Result {
	var failed []FailedLoop
	for _, c := range g.Edges() {
		if c.Source != c.Target {
			continue
		}
		squared, err := matrix.Compose(c.Matrix, c.Matrix)
		if err != nil || !matrix.Equal(squared, c.Matrix) {
			continue
		}
		if !hasStrictDiagonal(c.Matrix) {
			failed = append(failed, FailedLoop{Name: c.Source, Matrix: c.Matrix, Witness: c.Witness})
		}
	}
	if len(failed) == 0 {
		return Terminates{}
	}
	return Failed{Loops: failed}
}

func hasStrictDiagonal(m matrix.Matrix) bool {
	diag, err := matrix.Diagonal(m)
	if err != nil {
		return false
	}
	for _, d := range diag {
		if d == order.LT {
			return true
		}
	}
	return false
}

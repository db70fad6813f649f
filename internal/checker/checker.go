// Package checker implements the driver of section 4.8: the single public
// entry point that orchestrates a mutual block end to end, from its
// members' clauses through the call graph, its transitive closure, and the
// termination decision, down to a reported Verdict.
package checker

import (
	"sort"

	"sizecheck/internal/callgraph"
	"sizecheck/internal/decide"
	"sizecheck/internal/host"
	"sizecheck/internal/term"
	"sizecheck/internal/walker"
)

// Verdict is the outcome of TerminationCheck: Ok, or Failed carrying every
// offending loop found across the block.
type Verdict interface{ isVerdict() }

// Ok reports that every member of the block provably terminates.
type Ok struct{}

// Failed reports one or more non-terminating loops. Per the resolved
// open question on reporting granularity, Names lists every member of the
// mutual block the failing loops touch, not just the loop's own source —
// the raw per-loop data is still available in Loops for a caller-only view.
type Failed struct {
	Names []term.Name
	Loops []decide.FailedLoop
}

func (Ok) isVerdict()     {}
func (Failed) isVerdict() {}

// TerminationCheck is the public entry point of section 6:
// terminationCheck(block) -> Ok | Failed(...). Given identical inputs and
// oracle responses it is deterministic, including the order loops are
// reported in (mutual-block order).
func TerminationCheck(block host.MutualBlock, oracles host.Oracles) (Verdict, error) {
	graph := callgraph.Empty()

	for _, name := range block.Members {
		kind, err := oracles.DefOf(name)
		if err != nil {
			return nil, err
		}
		fn, ok := kind.(host.Function)
		if !ok {
			// Not a Function: it can still be called into (its arguments are
			// still traversed by whatever clause calls it), but it
			// contributes no clauses of its own to walk.
			continue
		}
		callerIdx := block.IndexOf(name)
		for _, clause := range fn.Clauses {
			clauseGraph, err := walkClause(clause, block, name, callerIdx, oracles)
			if err != nil {
				return nil, err
			}
			graph = callgraph.Union(graph, clauseGraph)
		}
	}

	closed := callgraph.Complete(graph)
	result := decide.Decide(closed)

	switch r := result.(type) {
	case decide.Terminates:
		return Ok{}, nil
	case decide.Failed:
		loops := append([]decide.FailedLoop(nil), r.Loops...)
		sort.Slice(loops, func(i, j int) bool {
			ii, jj := block.IndexOf(loops[i].Name), block.IndexOf(loops[j].Name)
			if ii != jj {
				return ii < jj
			}
			return loops[i].Matrix.Key() < loops[j].Matrix.Key()
		})
		return Failed{Names: namesTouchedByLoops(block, loops), Loops: loops}, nil
	default:
		return nil, nil
	}
}

func walkClause(clause host.Clause, block host.MutualBlock, caller term.Name, callerIdx int, oracles host.Oracles) (callgraph.Graph, error) {
	return walker.Walk(clause.Body, clause.Patterns, block, caller, callerIdx, oracles)
}

// namesTouchedByLoops collects, in block order, every member whose own
// definition is the source or target of some failing loop.
func namesTouchedByLoops(block host.MutualBlock, loops []decide.FailedLoop) []term.Name {
	touched := make(map[term.Name]bool, len(loops))
	for _, l := range loops {
		touched[l.Name] = true
	}
	var out []term.Name
	for _, m := range block.Members {
		if touched[m] {
			out = append(out, m)
		}
	}
	return out
}

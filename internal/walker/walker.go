// Package walker implements the clause walker of section 4.6: traversing a
// clause's right-hand side term, tracking how the pattern vector shifts
// under binders, and collecting every recursive call it finds into a
// callgraph.Graph.
package walker

import (
	"sizecheck/internal/callgraph"
	"sizecheck/internal/compare"
	"sizecheck/internal/diag"
	"sizecheck/internal/host"
	"sizecheck/internal/pattern"
	"sizecheck/internal/term"
)

// Walk traverses t under the pattern vector p, the mutual block the
// current clause's function belongs to, the caller's own Name and its
// index within that block, collecting every call t makes to a block member
// into the returned graph. oracles.Reduce normalizes each subterm before
// it is inspected structurally, per the normalize-then-switch rule.
func Walk(t term.Term, p []pattern.DeBruijn, block host.MutualBlock, caller term.Name, callerIdx int, oracles host.Oracles) (callgraph.Graph, error) {
	reduced, err := oracles.Reduce(t)
	if err != nil {
		return callgraph.Graph{}, err
	}

	switch n := reduced.(type) {
	case term.Blocked:
		return callgraph.Graph{}, diag.NewImpossible(diag.ICodeBlockedAfterReduce, "a Blocked term survived the reduction oracle")

	case term.Sort, term.Lit, term.Meta:
		return callgraph.Empty(), nil

	case term.Var:
		return walkArgs(n.Args, p, block, caller, callerIdx, oracles)

	case term.Con:
		return walkArgs(n.Args, p, block, caller, callerIdx, oracles)

	case term.Lam:
		return Walk(n.Body, pattern.LiftVector(p), block, caller, callerIdx, oracles)

	case term.Pi:
		fromDomain, err := Walk(n.Domain, p, block, caller, callerIdx, oracles)
		if err != nil {
			return callgraph.Graph{}, err
		}
		fromBody, err := Walk(n.Body, pattern.LiftVector(p), block, caller, callerIdx, oracles)
		if err != nil {
			return callgraph.Graph{}, err
		}
		return callgraph.Union(fromDomain, fromBody), nil

	case term.Fun:
		fromDomain, err := Walk(n.Domain, p, block, caller, callerIdx, oracles)
		if err != nil {
			return callgraph.Graph{}, err
		}
		fromCodomain, err := Walk(n.Codomain, p, block, caller, callerIdx, oracles)
		if err != nil {
			return callgraph.Graph{}, err
		}
		return callgraph.Union(fromDomain, fromCodomain), nil

	case term.Def:
		return walkDef(n, p, block, caller, callerIdx, oracles)

	default:
		return callgraph.Empty(), nil
	}
}

// walkArgs recurses into an argument spine under the unlifted pattern
// vector, unioning whatever calls each argument contributes.
func walkArgs(args []term.Term, p []pattern.DeBruijn, block host.MutualBlock, caller term.Name, callerIdx int, oracles host.Oracles) (callgraph.Graph, error) {
	g := callgraph.Empty()
	for _, a := range args {
		sub, err := Walk(a, p, block, caller, callerIdx, oracles)
		if err != nil {
			return callgraph.Graph{}, err
		}
		g = callgraph.Union(g, sub)
	}
	return g, nil
}

// walkDef handles the one term shape the walker actually emits a Call for.
// Its own arguments are first walked under the unlifted pattern vector to
// find nested calls (a recursive call can appear inside the argument of
// another call); only then, if the applied name is a member of the
// current mutual block, is a top-level Call inserted comparing those
// arguments against the caller's own pattern vector.
//
// LIMITATION: a call reached through a Def's own result (its "spine") —
// e.g. `f x = (g x).field` where further projection happens on the result
// of a call — is not specially tracked; the comparator is blind to
// anything beyond the direct argument list of the Def application itself,
// matching the literal reading of section 4.7 kept by design (see
// SPEC_FULL.md's open-question resolution).
func walkDef(n term.Def, p []pattern.DeBruijn, block host.MutualBlock, caller term.Name, callerIdx int, oracles host.Oracles) (callgraph.Graph, error) {
	g, err := walkArgs(n.Args, p, block, caller, callerIdx, oracles)
	if err != nil {
		return callgraph.Graph{}, err
	}

	targetIdx := block.IndexOf(n.Name)
	if targetIdx < 0 {
		return g, nil
	}

	m := compare.Args(p, n.Args)
	call := callgraph.Call{
		Source:  caller,
		Target:  n.Name,
		Matrix:  m,
		Witness: oracles.RangesOf(n.Name),
	}
	return callgraph.Insert(call, g), nil
}

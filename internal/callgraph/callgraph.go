// Package callgraph implements the call graph of section 4.3: a flat,
// deduplicated set of Calls between Names, closed under composition along
// shared intermediate targets to a fixpoint.
package callgraph

import (
	"sizecheck/internal/host"
	"sizecheck/internal/matrix"
	"sizecheck/internal/term"
)

// Call is one edge of the graph: a single recursive call site from Source
// to Target, with the CallMatrix comparing the call's arguments against
// the calling clause's pattern vector, plus the source ranges the edge is
// witnessed by (for diagnostics, never inspected by Decide).
type Call struct {
	Source, Target term.Name
	Matrix          matrix.Matrix
	Witness         host.RangeSet
}

// edgeKey identifies a Call for dedup purposes: two calls between the same
// pair of Names with structurally equal matrices are the same edge, their
// witnesses merged rather than kept as separate entries.
type edgeKey struct {
	source, target term.Name
	matrixKey      string
}

// Graph is the call graph, a map of edges keyed by (source, target,
// matrix shape+entries), following the teacher's SymbolTable
// map-of-named-entries idiom.
type Graph struct {
	edges map[edgeKey]Call
}

// Empty returns a graph with no edges.
func Empty() Graph {
	return Graph{edges: make(map[edgeKey]Call)}
}

// Insert adds a call to the graph, returning a new Graph. An edge already
// present for the same (source, target, matrix) has its witness unioned
// with the new call's rather than being duplicated.
func Insert(call Call, g Graph) Graph {
	out := g.clone()
	k := keyOf(call)
	if existing, ok := out.edges[k]; ok {
		existing.Witness = existing.Witness.Union(call.Witness)
		out.edges[k] = existing
		return out
	}
	out.edges[k] = call
	return out
}

// Union merges two graphs, deduplicating and witness-unioning shared edges
// exactly as Insert does for a single call.
func Union(a, b Graph) Graph {
	out := a.clone()
	for _, call := range b.edges {
		out = Insert(call, out)
	}
	return out
}

// Edges returns the graph's Calls in no particular order.
func (g Graph) Edges() []Call {
	out := make([]Call, 0, len(g.edges))
	for _, c := range g.edges {
		out = append(out, c)
	}
	return out
}

// Complete closes a graph under composition: for every pair of edges
// a: x->y and b: y->z, the composed call x->z (matrix b.Matrix * a.Matrix,
// witnesses unioned) is added, repeating until no new edge is produced.
// This is a fixpoint computation over a finite edge set (shapes and
// therefore matrix.Key values are drawn from a finite alphabet once the
// mutual block is fixed), so it always terminates.
func Complete(g Graph) Graph {
	cur := g
	for {
		next := cur
		edges := cur.Edges()
		for _, a := range edges {
			for _, b := range edges {
				if a.Target != b.Source {
					continue
				}
				composed, err := matrix.Compose(b.Matrix, a.Matrix)
				if err != nil {
					// The two calls disagree on the intermediate function's
					// number of arguments. The pair is skipped: no composed
					// edge is added and no error is reported, so Decide
					// never sees this path.
					continue
				}
				next = Insert(Call{
					Source:  a.Source,
					Target:  b.Target,
					Matrix:  composed,
					Witness: a.Witness.Union(b.Witness),
				}, next)
			}
		}
		if next.equal(cur) {
			return next
		}
		cur = next
	}
}

// equal reports whether two graphs have exactly the same edges, including
// witnesses — used by Complete to detect the fixpoint.
func (g Graph) equal(other Graph) bool {
	if len(g.edges) != len(other.edges) {
		return false
	}
	for k, v := range g.edges {
		o, ok := other.edges[k]
		if !ok || !matrix.Equal(v.Matrix, o.Matrix) {
			return false
		}
		if len(v.Witness.Positions()) != len(o.Witness.Positions()) {
			return false
		}
	}
	return true
}

func keyOf(c Call) edgeKey {
	return edgeKey{source: c.Source, target: c.Target, matrixKey: c.Matrix.Key()}
}

func (g Graph) clone() Graph {
	out := make(map[edgeKey]Call, len(g.edges))
	for k, v := range g.edges {
		out[k] = v
	}
	return Graph{edges: out}
}

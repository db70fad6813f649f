package callgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecheck/internal/ast"
	"sizecheck/internal/host"
	"sizecheck/internal/matrix"
	"sizecheck/internal/order"
	"sizecheck/internal/term"
)

func mkMatrix(entries ...order.Order) matrix.Matrix {
	return matrix.Make(1, 1, func(r, c int) order.Order { return entries[0] })
}

func TestInsertDedupesAndUnionsWitness(t *testing.T) {
	f := term.NewName("f", 0)
	m := mkMatrix(order.LT)
	p1 := host.NewRangeSet(ast.Position{Filename: "a.sz", Offset: 1})
	p2 := host.NewRangeSet(ast.Position{Filename: "a.sz", Offset: 2})
	call1 := Call{Source: f, Target: f, Matrix: m, Witness: p1}
	call2 := Call{Source: f, Target: f, Matrix: m, Witness: p2}

	g := Insert(call1, Empty())
	g = Insert(call2, g)

	assert.Len(t, g.Edges(), 1)
	assert.Len(t, g.Edges()[0].Witness.Positions(), 2)
}

func TestUnionMergesTwoGraphs(t *testing.T) {
	f := term.NewName("f", 0)
	g1 := term.NewName("g", 0)
	a := Insert(Call{Source: f, Target: f, Matrix: mkMatrix(order.LT)}, Empty())
	b := Insert(Call{Source: g1, Target: g1, Matrix: mkMatrix(order.LT)}, Empty())

	merged := Union(a, b)
	assert.Len(t, merged.Edges(), 2)
}

// mutual f/g: f calls g with LE, g calls f with LT — composing f->g->f
// should yield a self-loop on f whose diagonal is LT (terminates).
func TestCompleteComposesMutualRecursion(t *testing.T) {
	f := term.NewName("f", 0)
	g := term.NewName("g", 0)

	fg := Call{Source: f, Target: g, Matrix: mkMatrix(order.LE)}
	gf := Call{Source: g, Target: f, Matrix: mkMatrix(order.LT)}

	graph := Insert(gf, Insert(fg, Empty()))
	closed := Complete(graph)

	found := false
	for _, c := range closed.Edges() {
		if c.Source == f && c.Target == f {
			found = true
			diag, err := matrix.Diagonal(c.Matrix)
			require.NoError(t, err)
			assert.Equal(t, order.LT, diag[0])
		}
	}
	assert.True(t, found, "expected a composed f->f self-loop")
}

func TestCompleteIsIdempotent(t *testing.T) {
	f := term.NewName("f", 0)
	graph := Insert(Call{Source: f, Target: f, Matrix: mkMatrix(order.LE)}, Empty())

	once := Complete(graph)
	twice := Complete(once)

	assert.True(t, once.equal(twice))
}

package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecheck/internal/diag"
	"sizecheck/internal/host"
	"sizecheck/internal/order"
	"sizecheck/internal/pattern"
	"sizecheck/internal/term"
)

// identityOracles reduces every term to itself and never finds a mutual
// block beyond what the test wires up directly via block.
type identityOracles struct{}

func (identityOracles) Reduce(t term.Term) (term.Term, error)                       { return t, nil }
func (identityOracles) DefOf(n term.Name) (host.DefKind, error)                      { return host.Other{}, nil }
func (identityOracles) MutualBlocksContaining(n term.Name) (host.MutualBlock, error) { return host.MutualBlock{}, nil }
func (identityOracles) RangesOf(n term.Name) host.RangeSet                          { return host.NewRangeSet() }

var sName = term.NewName("S", 0)

// f (Con S x) = f x: a single recursive call with matrix [[LT]].
func TestWalkStructuralRecursionEmitsStrictCall(t *testing.T) {
	f := term.NewName("f", 0)
	block := host.MutualBlock{Members: []term.Name{f}}
	p := []pattern.DeBruijn{pattern.PCon{Con: sName, Args: []pattern.DeBruijn{pattern.PVar{Index: 0}}}}
	rhs := term.Def{Name: f, Args: []term.Term{term.Var{Index: 0}}}

	g, err := Walk(rhs, p, block, f, 0, identityOracles{})
	require.NoError(t, err)
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, f, edges[0].Source)
	assert.Equal(t, f, edges[0].Target)
	assert.Equal(t, order.LT, edges[0].Matrix.At(0, 0))
}

// f x = f x: matrix [[LE]].
func TestWalkNonDecreasingCallIsLE(t *testing.T) {
	f := term.NewName("f", 0)
	block := host.MutualBlock{Members: []term.Name{f}}
	p := []pattern.DeBruijn{pattern.PVar{Index: 0}}
	rhs := term.Def{Name: f, Args: []term.Term{term.Var{Index: 0}}}

	g, err := Walk(rhs, p, block, f, 0, identityOracles{})
	require.NoError(t, err)
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, order.LE, edges[0].Matrix.At(0, 0))
}

// A Def applied to a name outside the block emits no top-level call, only
// whatever its arguments contribute.
func TestWalkCallOutsideBlockEmitsNoTopLevelCall(t *testing.T) {
	f := term.NewName("f", 0)
	other := term.NewName("other", 0)
	block := host.MutualBlock{Members: []term.Name{f}}
	p := []pattern.DeBruijn{pattern.PVar{Index: 0}}
	rhs := term.Def{Name: other, Args: []term.Term{term.Var{Index: 0}}}

	g, err := Walk(rhs, p, block, f, 0, identityOracles{})
	require.NoError(t, err)
	assert.Empty(t, g.Edges())
}

// Lam lifts the pattern vector: f x = \y -> f x (referring to the outer x
// at index 1 once inside the lambda) should still compare against the
// lifted pattern.
func TestWalkLamLiftsPatternVector(t *testing.T) {
	f := term.NewName("f", 0)
	block := host.MutualBlock{Members: []term.Name{f}}
	p := []pattern.DeBruijn{pattern.PVar{Index: 0}}
	rhs := term.Lam{Body: term.Def{Name: f, Args: []term.Term{term.Var{Index: 1}}}}

	g, err := Walk(rhs, p, block, f, 0, identityOracles{})
	require.NoError(t, err)
	edges := g.Edges()
	require.Len(t, edges, 1)
	// Index 1 now matches the lifted PVar{Index: 1}.
	assert.Equal(t, order.LE, edges[0].Matrix.At(0, 0))
}

func TestWalkBlockedAfterReduceIsImpossible(t *testing.T) {
	f := term.NewName("f", 0)
	block := host.MutualBlock{Members: []term.Name{f}}
	_, err := Walk(term.Blocked{Reason: "stuck"}, nil, block, f, 0, identityOracles{})
	require.Error(t, err)
	assert.True(t, diag.IsImpossible(err))
}

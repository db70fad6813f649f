package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecheck/internal/term"
)

func TestLiftInvariant(t *testing.T) {
	p := []DeBruijn{PVar{Index: 0}, PLit{Value: term.NewIntLiteral("1")}, PUnused{}}
	lifted := LiftVector(p)

	require.Len(t, lifted, 3)
	assert.Equal(t, PVar{Index: 1}, lifted[0])
	assert.Equal(t, PLit{Value: term.NewIntLiteral("1")}, lifted[1])
	assert.Equal(t, PUnused{}, lifted[2])
}

func TestLiftRecursesIntoCon(t *testing.T) {
	sName := term.NewName("S", 0)
	p := PCon{Con: sName, Args: []DeBruijn{PVar{Index: 2}}}
	lifted := Lift(p)
	assert.Equal(t, PCon{Con: sName, Args: []DeBruijn{PVar{Index: 3}}}, lifted)
}

// TestExtractSingleVar models `f x = x` — one head variable, one binder.
func TestExtractSingleVar(t *testing.T) {
	heads := []Source{VarP{Name: "x"}}
	body := Bind{Inner: RealBody{Term: term.Var{Index: 0}}}

	patterns, rhs, absurd, err := Extract(heads, body)
	require.NoError(t, err)
	require.False(t, absurd)
	require.Len(t, patterns, 1)
	assert.Equal(t, PVar{Index: 0}, patterns[0])
	assert.Equal(t, term.Var{Index: 0}, rhs)
}

// TestExtractConstructorNesting models `f (S x) = x`: one head pattern,
// a nested variable one level inside a constructor, one binder.
func TestExtractConstructorNesting(t *testing.T) {
	sName := term.NewName("S", 0)
	heads := []Source{ConP{Con: sName, Args: []Source{VarP{Name: "x"}}}}
	body := Bind{Inner: RealBody{Term: term.Var{Index: 0}}}

	patterns, _, absurd, err := Extract(heads, body)
	require.NoError(t, err)
	require.False(t, absurd)
	require.Len(t, patterns, 1)
	assert.Equal(t, PCon{Con: sName, Args: []DeBruijn{PVar{Index: 0}}}, patterns[0])
}

// TestExtractTwoVarsLevelConversion models `f x y = y`, checking the
// (n-1)-i conversion: the first-consumed variable (level 0) becomes the
// *higher* de Bruijn index once there are two binders.
func TestExtractTwoVarsLevelConversion(t *testing.T) {
	heads := []Source{VarP{Name: "x"}, VarP{Name: "y"}}
	body := Bind{Inner: Bind{Inner: RealBody{Term: term.Var{Index: 0}}}}

	patterns, _, absurd, err := Extract(heads, body)
	require.NoError(t, err)
	require.False(t, absurd)
	require.Len(t, patterns, 2)
	// x was assigned level 0, y was assigned level 1; n=2, so
	// x -> index (2-1)-0 = 1, y -> index (2-1)-1 = 0.
	assert.Equal(t, PVar{Index: 1}, patterns[0])
	assert.Equal(t, PVar{Index: 0}, patterns[1])
}

func TestExtractNoBindYieldsUnused(t *testing.T) {
	heads := []Source{VarP{Name: "_"}}
	body := NoBind{Inner: RealBody{Term: term.Sort{}}}

	patterns, _, absurd, err := Extract(heads, body)
	require.NoError(t, err)
	require.False(t, absurd)
	assert.Equal(t, PUnused{}, patterns[0])
}

func TestExtractAbsurdClauseYieldsNoCalls(t *testing.T) {
	heads := []Source{VarP{Name: "x"}}
	body := NoBody{}

	_, _, absurd, err := Extract(heads, body)
	require.NoError(t, err)
	assert.True(t, absurd)
}

func TestExtractMoreVarsThanBindersIsImpossible(t *testing.T) {
	heads := []Source{VarP{Name: "x"}}
	body := RealBody{Term: term.Sort{}}

	_, _, _, err := Extract(heads, body)
	require.Error(t, err)
}

func TestExtractEmptyHeadNoConversion(t *testing.T) {
	patterns, rhs, absurd, err := Extract(nil, RealBody{Term: term.Sort{}})
	require.NoError(t, err)
	require.False(t, absurd)
	assert.Empty(t, patterns)
	assert.Equal(t, term.Sort{}, rhs)
}

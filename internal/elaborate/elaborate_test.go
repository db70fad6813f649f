package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecheck/internal/ast"
	"sizecheck/internal/host"
	"sizecheck/internal/pattern"
)

func pos() ast.Position { return ast.Position{Filename: "t.sz", Line: 1, Column: 1} }

func ident(name string, args ...ast.Pattern) ast.Pattern {
	return &ast.IdentPattern{Pos: pos(), EndPos: pos(), Name: name, Args: args}
}

func wildcard() ast.Pattern { return &ast.WildcardPattern{Pos: pos(), EndPos: pos()} }

func call(name string, args ...ast.Expr) ast.Expr {
	return &ast.IdentExpr{Pos: pos(), EndPos: pos(), Name: name, Args: args}
}

func dataZ_S() *ast.DataDecl {
	return &ast.DataDecl{
		Pos: pos(), EndPos: pos(), Name: "Nat",
		Constructors: []ast.ConDecl{
			{Pos: pos(), EndPos: pos(), Name: "Z", Arity: 0},
			{Pos: pos(), EndPos: pos(), Name: "S", Arity: 1},
		},
	}
}

// `f(S(x)) = f(x)` should elaborate to a singleton mutual block for f with
// one strictly-decreasing self-loop clause.
func TestElaborateStructuralRecursion(t *testing.T) {
	mod := &ast.Module{
		Pos: pos(), EndPos: pos(), Name: "m",
		Datas: []*ast.DataDecl{dataZ_S()},
		Clauses: []*ast.FuncClause{
			{Pos: pos(), EndPos: pos(), Name: "f",
				Heads: []ast.Pattern{ident("S", ident("x"))},
				Body:  call("f", call("x")),
			},
		},
	}

	prog, err := Elaborate([]*ast.Module{mod})
	require.NoError(t, err)

	fNames := prog.Functions()
	require.Len(t, fNames, 1)
	f := fNames[0]

	block, err := prog.MutualBlocksContaining(f)
	require.NoError(t, err)
	require.Len(t, block.Members, 1)
	assert.Equal(t, f, block.Members[0])

	kind, err := prog.DefOf(f)
	require.NoError(t, err)
	fn, ok := kind.(host.Function)
	require.True(t, ok)
	require.Len(t, fn.Clauses, 1)
}

// `f(x) = g(x); g(S(y)) = f(y)` is mutually recursive: f and g must land
// in the same block.
func TestElaborateDiscoversMutualBlock(t *testing.T) {
	mod := &ast.Module{
		Pos: pos(), EndPos: pos(), Name: "m",
		Datas: []*ast.DataDecl{dataZ_S()},
		Clauses: []*ast.FuncClause{
			{Pos: pos(), EndPos: pos(), Name: "f",
				Heads: []ast.Pattern{ident("x")},
				Body:  call("g", call("x")),
			},
			{Pos: pos(), EndPos: pos(), Name: "g",
				Heads: []ast.Pattern{ident("S", ident("y"))},
				Body:  call("f", call("y")),
			},
		},
	}

	prog, err := Elaborate([]*ast.Module{mod})
	require.NoError(t, err)

	f, ok := prog.LookupFunction("f")
	require.True(t, ok)
	g, ok := prog.LookupFunction("g")
	require.True(t, ok)

	block, err := prog.MutualBlocksContaining(f)
	require.NoError(t, err)
	assert.True(t, block.Contains(f))
	assert.True(t, block.Contains(g))
	assert.Len(t, block.Members, 2)
}

// A wildcard head pattern binds no name and consumes no call-term index.
func TestElaborateWildcardConsumesNoBinder(t *testing.T) {
	mod := &ast.Module{
		Pos: pos(), EndPos: pos(), Name: "m",
		Datas: []*ast.DataDecl{dataZ_S()},
		Clauses: []*ast.FuncClause{
			{Pos: pos(), EndPos: pos(), Name: "const0",
				Heads: []ast.Pattern{wildcard()},
				Body:  call("Z"),
			},
		},
	}

	prog, err := Elaborate([]*ast.Module{mod})
	require.NoError(t, err)

	fn, ok := prog.LookupFunction("const0")
	require.True(t, ok)
	kind, err := prog.DefOf(fn)
	require.NoError(t, err)
	f := kind.(host.Function)
	require.Len(t, f.Clauses, 1)
	require.Len(t, f.Clauses[0].Patterns, 1)
	assert.Equal(t, pattern.PUnused{}, f.Clauses[0].Patterns[0])
}

// A call to an undefined function is reported as an elaboration error, not
// panicked or silently accepted.
func TestElaborateUndefinedFunctionErrors(t *testing.T) {
	mod := &ast.Module{
		Pos: pos(), EndPos: pos(), Name: "m",
		Clauses: []*ast.FuncClause{
			{Pos: pos(), EndPos: pos(), Name: "f",
				Heads: []ast.Pattern{ident("x")},
				Body:  call("undefinedThing", call("x")),
			},
		},
	}

	_, err := Elaborate([]*ast.Module{mod})
	assert.Error(t, err)
}

// A constructor applied to the wrong number of pattern arguments is an
// arity-mismatch error.
func TestElaborateConstructorArityMismatchErrors(t *testing.T) {
	mod := &ast.Module{
		Pos: pos(), EndPos: pos(), Name: "m",
		Datas: []*ast.DataDecl{dataZ_S()},
		Clauses: []*ast.FuncClause{
			{Pos: pos(), EndPos: pos(), Name: "f",
				Heads: []ast.Pattern{ident("S", ident("x"), ident("y"))},
				Body:  call("Z"),
			},
		},
	}

	_, err := Elaborate([]*ast.Module{mod})
	assert.Error(t, err)
}

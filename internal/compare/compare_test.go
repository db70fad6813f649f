package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sizecheck/internal/order"
	"sizecheck/internal/pattern"
	"sizecheck/internal/term"
)

var sName = term.NewName("S", 0)

func TestVarAgainstSameIndexIsLE(t *testing.T) {
	got := Term(term.Var{Index: 0}, pattern.PVar{Index: 0})
	assert.Equal(t, order.LE, got)
}

func TestVarAgainstDifferentIndexIsUnk(t *testing.T) {
	got := Term(term.Var{Index: 1}, pattern.PVar{Index: 0})
	assert.Equal(t, order.UNK, got)
}

// f (S x) = f x: the call argument is the variable bound strictly inside
// the constructor pattern, so LT.
func TestVarAgainstPCon_StrictlyInside(t *testing.T) {
	p := pattern.PCon{Con: sName, Args: []pattern.DeBruijn{pattern.PVar{Index: 0}}}
	got := Term(term.Var{Index: 0}, p)
	assert.Equal(t, order.LT, got)
}

func TestVarAgainstPCon_NotPresentInside(t *testing.T) {
	p := pattern.PCon{Con: sName, Args: []pattern.DeBruijn{pattern.PVar{Index: 5}}}
	got := Term(term.Var{Index: 0}, p)
	assert.Equal(t, order.UNK, got)
}

func TestSameConstructorComponentwise(t *testing.T) {
	// f (Con S x) = f (Con S x): argument is exactly the pattern, so LE.
	arg := term.Con{Name: sName, Args: []term.Term{term.Var{Index: 0}}}
	p := pattern.PCon{Con: sName, Args: []pattern.DeBruijn{pattern.PVar{Index: 0}}}
	got := Term(arg, p)
	assert.Equal(t, order.LE, got)
}

func TestDifferentConstructorIsUnk(t *testing.T) {
	other := term.NewName("Z", 0)
	arg := term.Con{Name: other, Args: nil}
	p := pattern.PCon{Con: sName, Args: []pattern.DeBruijn{pattern.PVar{Index: 0}}}
	got := Term(arg, p)
	assert.Equal(t, order.UNK, got)
}

func TestLitAgainstMatchingLit(t *testing.T) {
	lit := term.NewIntLiteral("3")
	got := Term(term.Lit{Value: lit}, pattern.PLit{Value: lit})
	assert.Equal(t, order.LE, got)
}

func TestArgsBuildsMatrixShape(t *testing.T) {
	p := []pattern.DeBruijn{pattern.PVar{Index: 0}, pattern.PVar{Index: 1}}
	args := []term.Term{term.Var{Index: 0}, term.Var{Index: 5}}
	m := Args(p, args)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 2, m.Cols)
	assert.Equal(t, order.LE, m.At(0, 0))
	assert.Equal(t, order.UNK, m.At(0, 1))
	assert.Equal(t, order.UNK, m.At(1, 0))
	assert.Equal(t, order.UNK, m.At(1, 1))
}

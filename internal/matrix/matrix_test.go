package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecheck/internal/order"
)

func constMatrix(rows, cols int, v order.Order) Matrix {
	return Make(rows, cols, func(r, c int) order.Order { return v })
}

func TestComposeShapeMismatch(t *testing.T) {
	a := constMatrix(2, 3, order.LT)
	b := constMatrix(2, 2, order.LE)
	_, err := Compose(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestComposeAssociative(t *testing.T) {
	a := Make(2, 2, func(r, c int) order.Order {
		if r == c {
			return order.LT
		}
		return order.UNK
	})
	b := Make(2, 2, func(r, c int) order.Order { return order.LE })
	c := Make(2, 2, func(r, c int) order.Order {
		if r == 0 {
			return order.LT
		}
		return order.LE
	})

	ab, err := Compose(a, b)
	require.NoError(t, err)
	abThenC, err := Compose(ab, c)
	require.NoError(t, err)

	bc, err := Compose(b, c)
	require.NoError(t, err)
	aThenBC, err := Compose(a, bc)
	require.NoError(t, err)

	assert.True(t, Equal(abThenC, aThenBC))
}

func TestEqualIsEquivalence(t *testing.T) {
	a := constMatrix(2, 2, order.LE)
	b := constMatrix(2, 2, order.LE)
	c := constMatrix(2, 2, order.LT)

	assert.True(t, Equal(a, a), "reflexive")
	assert.True(t, Equal(a, b), "symmetric pair")
	assert.True(t, Equal(b, a))
	assert.False(t, Equal(a, c))

	d := constMatrix(2, 2, order.LE)
	assert.True(t, Equal(a, b) && Equal(b, d) && Equal(a, d), "transitive")
}

func TestDiagonalRequiresSquare(t *testing.T) {
	m := constMatrix(2, 3, order.LT)
	_, err := Diagonal(m)
	require.ErrorIs(t, err, ErrShapeMismatch)

	sq := Make(2, 2, func(r, c int) order.Order {
		if r == c {
			return order.LT
		}
		return order.UNK
	})
	diag, err := Diagonal(sq)
	require.NoError(t, err)
	assert.Equal(t, []order.Order{order.LT, order.LT}, diag)
}

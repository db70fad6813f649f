package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allOrders() []Order { return []Order{LT, LE, UNK} }

func TestComposeAssociative(t *testing.T) {
	for _, a := range allOrders() {
		for _, b := range allOrders() {
			for _, c := range allOrders() {
				left := Compose(a, Compose(b, c))
				right := Compose(Compose(a, b), c)
				assert.Equal(t, left, right, "compose(%v,compose(%v,%v))", a, b, c)
			}
		}
	}
}

func TestComposeUnitIsLE(t *testing.T) {
	for _, a := range allOrders() {
		assert.Equal(t, a, Compose(LE, a), "LE is a left unit")
		assert.Equal(t, a, Compose(a, LE), "LE is a right unit")
	}
}

func TestComposeUnkAbsorbing(t *testing.T) {
	for _, a := range allOrders() {
		assert.Equal(t, UNK, Compose(UNK, a))
		assert.Equal(t, UNK, Compose(a, UNK))
	}
}

func TestComposeStrictTable(t *testing.T) {
	assert.Equal(t, LT, Compose(LT, LE))
	assert.Equal(t, LT, Compose(LE, LT))
	assert.Equal(t, LT, Compose(LT, LT))
	assert.Equal(t, LE, Compose(LE, LE))
}

func TestMinMaxLattice(t *testing.T) {
	for _, a := range allOrders() {
		for _, b := range allOrders() {
			assert.Equal(t, Min(a, b), Min(b, a), "min commutative")
			assert.Equal(t, Max(a, b), Max(b, a), "max commutative")
		}
		assert.Equal(t, a, Min(a, a), "min idempotent")
		assert.Equal(t, a, Max(a, a), "max idempotent")
		assert.Equal(t, a, Min(a, UNK), "UNK is min-identity (top)")
		assert.Equal(t, a, Max(a, LT), "LT is max-identity (bottom)")
	}
	for _, a := range allOrders() {
		for _, b := range allOrders() {
			for _, c := range allOrders() {
				assert.Equal(t, Min(a, Min(b, c)), Min(Min(a, b), c), "min associative")
				assert.Equal(t, Max(a, Max(b, c)), Max(Max(a, b), c), "max associative")
			}
		}
	}
}

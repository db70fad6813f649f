// Package matrix implements fixed-shape call matrices over the order
// semiring: section 4.2 of the specification. Matrices are value-typed and
// composition is pure; structurally equal matrices share a canonical Key
// string, which callers use to deduplicate them.
package matrix

import (
	"errors"
	"fmt"

	"sizecheck/internal/order"
)

// ErrShapeMismatch is returned by Compose when the inner dimensions of the
// two operand matrices disagree, and by Diagonal when the matrix is not
// square.
var ErrShapeMismatch = errors.New("matrix: shape mismatch")

// Matrix is a rows×cols table of order.Order entries, stored row-major.
// Entry (r, c) answers "how does argument r of the call relate to pattern
// c of the caller's clause".
type Matrix struct {
	Rows, Cols int
	entries    []order.Order
}

// Make builds a matrix from a function of (row, col), following the
// dense-matrix flat-slice convention used by gonum's mat.Dense and
// lvlath's adjacency matrix, adapted to order.Order entries.
func Make(rows, cols int, fn func(r, c int) order.Order) Matrix {
	entries := make([]order.Order, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			entries[r*cols+c] = fn(r, c)
		}
	}
	return Matrix{Rows: rows, Cols: cols, entries: entries}
}

// At returns the entry at (r, c).
func (m Matrix) At(r, c int) order.Order {
	return m.entries[r*m.Cols+c]
}

// Compose computes the matrix product of a (s×m shape, rows=target-of-a
// formals, cols=source-of-a formals) and b (m×t shape) over the semiring:
// product is order.Compose, sum is order.Min. Fails with ErrShapeMismatch
// when a.Cols != b.Rows.
func Compose(a, b Matrix) (Matrix, error) {
	if a.Cols != b.Rows {
		return Matrix{}, fmt.Errorf("%w: %dx%d · %dx%d", ErrShapeMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	return Make(a.Rows, b.Cols, func(r, c int) order.Order {
		acc := order.UNK
		for k := 0; k < a.Cols; k++ {
			acc = order.Min(acc, order.Compose(a.At(r, k), b.At(k, c)))
		}
		return acc
	}), nil
}

// Equal compares shape and entries.
func Equal(a, b Matrix) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.entries {
		if a.entries[i] != b.entries[i] {
			return false
		}
	}
	return true
}

// Diagonal returns entries (i, i) for a square matrix, else
// ErrShapeMismatch.
func Diagonal(m Matrix) ([]order.Order, error) {
	if m.Rows != m.Cols {
		return nil, fmt.Errorf("%w: diagonal of %dx%d", ErrShapeMismatch, m.Rows, m.Cols)
	}
	diag := make([]order.Order, m.Rows)
	for i := 0; i < m.Rows; i++ {
		diag[i] = m.At(i, i)
	}
	return diag, nil
}

// key returns a canonical string identifying a matrix's shape and entries,
// used by Equal-by-key callers (callgraph dedup).
func (m Matrix) key() string {
	buf := make([]byte, 0, 8+len(m.entries))
	buf = fmt.Appendf(buf, "%d,%d:", m.Rows, m.Cols)
	for _, e := range m.entries {
		buf = append(buf, byte('0'+e))
	}
	return string(buf)
}

// Key exposes the canonical identity string used to deduplicate matrices
// by shape+entries, e.g. as a map key in callgraph edge sets.
func (m Matrix) Key() string { return m.key() }

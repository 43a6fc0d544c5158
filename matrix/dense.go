// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/ring"
)

// Dense is a row-major matrix over the coefficient domain E.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[E ring.Element[E]] struct {
	r, c int // number of rows and columns
	data []E // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c matrix filled with the domain zero derived from
// the sample element (parameterized domains such as GF(p) carry their
// modulus in the value, so a sample is required to mint zeros).
// Stage 1 (Validate): rows and cols > 0.
// Stage 2 (Prepare): allocate and zero-fill the flat backing slice.
// Complexity: O(r*c).
func NewDense[E ring.Element[E]](rows, cols int, sample E) (*Dense[E], error) {
	// Validate dimensions.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate and fill with the domain zero.
	zero := sample.Zero()
	data := make([]E, rows*cols)
	for i := range data {
		data[i] = zero
	}

	return &Dense[E]{r: rows, c: cols, data: data}, nil
}

// FromRows builds a matrix from explicit rows. All rows must be non-empty
// and of equal length (ErrRaggedRows otherwise); the input slices are
// copied, never aliased.
func FromRows[E ring.Element[E]](rows [][]E) (*Dense[E], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	m := &Dense[E]{r: len(rows), c: c, data: make([]E, 0, len(rows)*c)}
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrRaggedRows
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Identity returns the n×n identity over the domain of the sample element.
func Identity[E ring.Element[E]](n int, sample E) (*Dense[E], error) {
	m, err := NewDense(n, n, sample)
	if err != nil {
		return nil, err
	}
	one := sample.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[E]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[E]) At(row, col int) (E, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero E

		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Set exists for the construction phase
// and for elimination engines that own their working copy; shared matrices
// are treated as immutable by convention.
func (m *Dense[E]) Set(row, col int, v E) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Dense[E]) Clone() *Dense[E] {
	cp := make([]E, len(m.data))
	copy(cp, m.data)

	return &Dense[E]{r: m.r, c: m.c, data: cp}
}

// Transpose returns a new matrix with rows and columns swapped.
// Deterministic i→j traversal. Complexity: O(r*c).
func (m *Dense[E]) Transpose() *Dense[E] {
	out := &Dense[E]{r: m.c, c: m.r, data: make([]E, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// SubColumn returns a copy of column j as a vector.
func (m *Dense[E]) SubColumn(j int) ([]E, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("SubColumn", 0, j, ErrOutOfRange)
	}
	out := make([]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// DropRowsBefore returns the sub-matrix consisting of rows k..Rows−1.
// k == 0 is a plain copy; k must leave at least one row.
func (m *Dense[E]) DropRowsBefore(k int) (*Dense[E], error) {
	if k < 0 || k >= m.r {
		return nil, denseErrorf("DropRowsBefore", k, 0, ErrOutOfRange)
	}
	cp := make([]E, (m.r-k)*m.c)
	copy(cp, m.data[k*m.c:])

	return &Dense[E]{r: m.r - k, c: m.c, data: cp}, nil
}

// MulVec computes y = m·x for a column vector x.
// Contract: len(x) == Cols (ErrDimensionMismatch otherwise).
// Determinism: fixed i→j loop order; zero x[j] entries are skipped.
// Complexity: O(r*c).
func (m *Dense[E]) MulVec(x []E) ([]E, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("MulVec: %w: len(x)=%d cols=%d", ErrDimensionMismatch, len(x), m.c)
	}
	zero := m.data[0].Zero()
	y := make([]E, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		acc := zero
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if x[j].IsZero() {
				continue // skip zero for performance
			}
			acc = acc.Add(m.data[base+j].Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line.
func (m *Dense[E]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// Operation name constants for unified error wrapping.
const (
	opDecompose = "Decompose"
	opNullspace = "Nullspace"
	opSolve     = "SolveUpperTriangular"
	opReplay    = "Replay"
	opDet       = "Det"
)

// solveErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with non-nil err.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Decomposition is the complete result of one elimination run.
//
// Invariants (established by Decompose, relied upon by every consumer):
//   - Ops applied in order to the original matrix yields U.
//   - Rank == len(StepCols) == number of pivots found.
//   - StepCols ∪ FreeCols partitions the column range 0..Cols−1, both in
//     ascending order.
//   - Every entry of U strictly below the staircase formed by StepCols is
//     zero; rows Rank..Rows−1 of U are entirely zero.
type Decomposition[E ring.Element[E]] struct {
	// U is the upper-triangular (staircase) form.
	U *matrix.Dense[E]
	// Ops is every elementary row operation in application order,
	// transpositions included.
	Ops []RowOp[E]
	// Swaps is the subsequence of pivot transpositions, in application
	// order, for assembling the permutation P.
	Swaps []SwapOp[E]
	// Rank is the number of pivots found.
	Rank int
	// StepCols are the pivot columns; FreeCols are the rest.
	StepCols, FreeCols []int

	sample E // any element of the domain, for minting identities
}

// Decompose runs Gaussian elimination on m, recording every step.
//
// Algorithm: process columns left to right, maintaining currentRow = number
// of pivots found so far. For each column ask the strategy for a usable row
// at or below currentRow (none ⇒ free column). Transpose if needed, then
// either normalize the pivot to one or apply the committed −1 scale, then
// eliminate every nonzero entry below the pivot with one add-multiple
// operation per affected row. A zero column is not an error: it simply
// lands in FreeCols.
//
// The input matrix is never mutated; the engine works on a private clone.
// Complexity: O(rows·cols·min(rows,cols)) ring operations.
func Decompose[E ring.Element[E]](m *matrix.Dense[E], opts Options[E]) (*Decomposition[E], error) {
	if m == nil {
		return nil, solveErrorf(opDecompose, ErrNilMatrix)
	}
	pivot := opts.Pivot
	if pivot == nil {
		pivot = FirstNonZero[E]()
	}

	work := m.Clone()
	rows, cols := work.Rows(), work.Cols()
	sample, err := work.At(0, 0)
	if err != nil {
		return nil, solveErrorf(opDecompose, err)
	}
	dec := &Decomposition[E]{sample: sample}

	// record applies op to the working matrix and appends it to the trail.
	record := func(op RowOp[E]) error {
		if err := op.Apply(work); err != nil {
			return err
		}
		dec.Ops = append(dec.Ops, op)

		return nil
	}

	currentRow := 0
	var j int
	for j = 0; j < cols; j++ {
		if currentRow >= rows {
			// No rows left to pivot on: every remaining column is free.
			dec.FreeCols = append(dec.FreeCols, j)
			continue
		}
		col, err := work.SubColumn(j)
		if err != nil {
			return nil, solveErrorf(opDecompose, err)
		}
		row, ok := pivot(col, currentRow)
		if !ok {
			dec.FreeCols = append(dec.FreeCols, j)
			continue
		}
		if row < currentRow || row >= rows || col[row].IsZero() {
			return nil, solveErrorf(opDecompose, fmt.Errorf("%w: row %d for column %d", ErrBadPivotRow, row, j))
		}

		// Bring the pivot into position.
		if row != currentRow {
			sw := SwapOp[E]{I: currentRow, J: row}
			if err = record(sw); err != nil {
				return nil, solveErrorf(opDecompose, err)
			}
			dec.Swaps = append(dec.Swaps, sw)
		}

		// Normalize the pivot to one, or flip its sign (the committed
		// convention when normalization is declined).
		pv, err := work.At(currentRow, j)
		if err != nil {
			return nil, solveErrorf(opDecompose, err)
		}
		if opts.NormalizePivot {
			if !pv.IsOne() {
				if err = record(ScaleOp[E]{Row: currentRow, By: pv.One().Div(pv)}); err != nil {
					return nil, solveErrorf(opDecompose, err)
				}
			}
		} else if err = record(ScaleOp[E]{Row: currentRow, By: pv.One().Neg()}); err != nil {
			return nil, solveErrorf(opDecompose, err)
		}

		// Eliminate below the pivot: one batched add-multiple per row.
		pv, err = work.At(currentRow, j) // refreshed after scaling
		if err != nil {
			return nil, solveErrorf(opDecompose, err)
		}
		for i := currentRow + 1; i < rows; i++ {
			entry, err := work.At(i, j)
			if err != nil {
				return nil, solveErrorf(opDecompose, err)
			}
			if entry.IsZero() {
				continue // nothing to eliminate
			}
			factor := entry.Neg().Div(pv)
			if err = record(AddMulOp[E]{Dst: i, Src: currentRow, Factor: factor}); err != nil {
				return nil, solveErrorf(opDecompose, err)
			}
		}

		dec.StepCols = append(dec.StepCols, j)
		currentRow++
	}

	dec.U = work
	dec.Rank = currentRow

	return dec, nil
}

// LInverse materializes L⁻¹, the composition of the recorded operations:
// the matrix M with M·A = U. Pure replay over an identity.
func (d *Decomposition[E]) LInverse() (*matrix.Dense[E], error) {
	m, err := matrix.Identity(d.U.Rows(), d.sample)
	if err != nil {
		return nil, solveErrorf(opReplay, err)
	}
	for _, op := range d.Ops { // application order
		if err = op.Apply(m); err != nil {
			return nil, solveErrorf(opReplay, err)
		}
	}

	return m, nil
}

// P assembles the permutation matrix from the recorded pivot
// transpositions, in application order.
func (d *Decomposition[E]) P() (*matrix.Dense[E], error) {
	m, err := matrix.Identity(d.U.Rows(), d.sample)
	if err != nil {
		return nil, solveErrorf(opReplay, err)
	}
	for _, sw := range d.Swaps {
		if err = sw.Apply(m); err != nil {
			return nil, solveErrorf(opReplay, err)
		}
	}

	return m, nil
}

// L materializes the left factor satisfying L·U = P·A: the permutation
// composed with the inverse replay of the recorded operations (inverses
// applied in reverse order — each operation knows its own inverse, so this
// never re-derives anything from matrix contents).
func (d *Decomposition[E]) L() (*matrix.Dense[E], error) {
	inv, err := matrix.Identity(d.U.Rows(), d.sample)
	if err != nil {
		return nil, solveErrorf(opReplay, err)
	}
	for i := len(d.Ops) - 1; i >= 0; i-- { // reverse order, inverted ops
		if err = d.Ops[i].Inverse().Apply(inv); err != nil {
			return nil, solveErrorf(opReplay, err)
		}
	}
	p, err := d.P()
	if err != nil {
		return nil, err
	}

	return matrix.Mul(p, inv)
}

// LP returns the pair (L, P) with L·U = P·A.
func (d *Decomposition[E]) LP() (*matrix.Dense[E], *matrix.Dense[E], error) {
	l, err := d.L()
	if err != nil {
		return nil, nil, err
	}
	p, err := d.P()
	if err != nil {
		return nil, nil, err
	}

	return l, p, nil
}

// Det returns the determinant of the original square matrix, a cheap
// byproduct of the recorded trail: det(A) = det(U)/det(M) where M is the
// operation composition, det(U) is the product of the diagonal, a swap
// contributes −1 and a scale contributes its factor (add-multiples
// contribute 1). Rank-deficient square inputs yield zero; non-square
// inputs yield ErrNotSquare.
func (d *Decomposition[E]) Det() (E, error) {
	one := d.sample.One()
	if d.U.Rows() != d.U.Cols() {
		var zero E

		return zero, solveErrorf(opDet, ErrNotSquare)
	}
	if d.Rank < d.U.Rows() {
		return d.sample.Zero(), nil
	}

	// det(M): product of the recorded operations' determinants.
	detM := one
	for _, op := range d.Ops {
		switch o := op.(type) {
		case SwapOp[E]:
			detM = detM.Neg()
		case ScaleOp[E]:
			detM = detM.Mul(o.By)
		}
	}

	// det(U): product of the diagonal on the step columns (full rank ⇒
	// StepCols[i] == i).
	detU := one
	for i := 0; i < d.U.Rows(); i++ {
		v, err := d.U.At(i, i)
		if err != nil {
			var zero E

			return zero, solveErrorf(opDet, err)
		}
		detU = detU.Mul(v)
	}

	return detU.Div(detM), nil
}

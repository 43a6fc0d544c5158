// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// Nullspace computes a basis of the nullspace of m and the rank.
//
// One basis vector is produced per free column: it carries a one at its own
// free-column index, the solved-for entries at the pivot-column indices,
// and zeros elsewhere. The basis is linearly independent by construction
// (each vector is the only one with a nonzero entry at its free column) and
// its size is Cols − Rank.
//
// Pivot normalization is forced on for this run regardless of opts. The
// elimination guarantees rows Rank..Rows−1 of U are zero; this is asserted
// (ErrRankAssertion), not merely assumed.
// Complexity: elimination + O((cols−rank)·rank²) for the solves.
func Nullspace[E ring.Element[E]](m *matrix.Dense[E], opts Options[E]) ([][]E, int, error) {
	opts.NormalizePivot = true // back-substitution expects unit pivots
	dec, err := Decompose(m, opts)
	if err != nil {
		return nil, 0, solveErrorf(opNullspace, err)
	}

	// Assert the zero tail below the rank.
	rows, cols := dec.U.Rows(), dec.U.Cols()
	var i, j int
	if dec.Rank < rows {
		tail, err := dec.U.DropRowsBefore(dec.Rank)
		if err != nil {
			return nil, 0, solveErrorf(opNullspace, err)
		}
		for i = 0; i < tail.Rows(); i++ {
			for j = 0; j < cols; j++ {
				v, err := tail.At(i, j)
				if err != nil {
					return nil, 0, solveErrorf(opNullspace, err)
				}
				if !v.IsZero() {
					return nil, 0, solveErrorf(opNullspace, fmt.Errorf("%w: row %d", ErrRankAssertion, dec.Rank+i))
				}
			}
		}
	}

	sample := dec.sample
	zero, one := sample.Zero(), sample.One()
	basis := make([][]E, 0, len(dec.FreeCols))
	for _, free := range dec.FreeCols { // ascending free-column order
		// Right-hand side: the negated free column restricted to pivot rows.
		col, err := dec.U.SubColumn(free)
		if err != nil {
			return nil, 0, solveErrorf(opNullspace, err)
		}
		rhs := make([]E, dec.Rank)
		for i = 0; i < dec.Rank; i++ {
			rhs[i] = col[i].Neg()
		}
		x, err := SolveUpperTriangular(dec.U, rhs, dec.StepCols)
		if err != nil {
			return nil, 0, solveErrorf(opNullspace, err)
		}

		// Embed into a full-length vector.
		v := make([]E, cols)
		for j = range v {
			v[j] = zero
		}
		v[free] = one
		for i = 0; i < dec.Rank; i++ {
			v[dec.StepCols[i]] = x[i]
		}
		basis = append(basis, v)
	}

	return basis, dec.Rank, nil
}

// SolveUpperTriangular solves the system restricted to the step columns of
// an eliminated matrix: for the triangular form U and right-hand side rhs
// (one entry per pivot row), it returns x with
//
//	Σ_k U[i, stepCols[k]]·x[k] = rhs[i]   for every pivot row i,
//
// processing from the last pivot to the first and accumulating already
// solved entries. Precondition: U restricted to stepCols is invertible —
// guaranteed by construction when U comes from Decompose; a zero diagonal
// entry reports ErrZeroPivot instead of dividing by zero.
// Complexity: O(rank²).
func SolveUpperTriangular[E ring.Element[E]](u *matrix.Dense[E], rhs []E, stepCols []int) ([]E, error) {
	if len(rhs) != len(stepCols) {
		return nil, solveErrorf(opSolve, fmt.Errorf("%w: rhs=%d steps=%d", ErrStepMismatch, len(rhs), len(stepCols)))
	}
	n := len(stepCols)
	x := make([]E, n)
	for i := n - 1; i >= 0; i-- { // last pivot first
		acc := rhs[i]
		for k := i + 1; k < n; k++ {
			v, err := u.At(i, stepCols[k])
			if err != nil {
				return nil, solveErrorf(opSolve, err)
			}
			if v.IsZero() {
				continue
			}
			acc = acc.Sub(v.Mul(x[k]))
		}
		piv, err := u.At(i, stepCols[i])
		if err != nil {
			return nil, solveErrorf(opSolve, err)
		}
		if piv.IsZero() {
			return nil, solveErrorf(opSolve, ErrZeroPivot)
		}
		x[i] = acc.Div(piv)
	}

	return x, nil
}

// SPDX-License-Identifier: MIT
// Package linsolve: sentinel error set. Algorithms return these sentinels
// (optionally wrapped with operation context) and tests match them via
// errors.Is.

package linsolve

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed to the engine.
	ErrNilMatrix = errors.New("linsolve: nil matrix")

	// ErrBadPivotRow indicates a pivot strategy returned a row outside the
	// still-unprocessed region of the column. Strategies must return a row
	// at or below the current elimination row.
	ErrBadPivotRow = errors.New("linsolve: pivot strategy returned invalid row")

	// ErrZeroPivot indicates back-substitution met a zero diagonal entry on
	// a step column. Cannot happen for triangular systems produced by
	// Decompose; standalone misuse reports it instead of dividing by zero.
	ErrZeroPivot = errors.New("linsolve: zero pivot in triangular solve")

	// ErrRankAssertion indicates the rows at or below the computed rank of
	// an eliminated matrix were not all zero. This is an internal invariant
	// of the elimination; seeing it means the input matrix was mutated
	// concurrently or a pivot strategy lied.
	ErrRankAssertion = errors.New("linsolve: nonzero row below computed rank")

	// ErrStepMismatch indicates SolveUpperTriangular received a right-hand
	// side whose length differs from the number of step columns.
	ErrStepMismatch = errors.New("linsolve: rhs length differs from step columns")

	// ErrNotSquare indicates Det was asked for on a non-square
	// decomposition. A rank-deficient square matrix is not an error: its
	// determinant is simply zero.
	ErrNotSquare = errors.New("linsolve: determinant of non-square matrix")
)

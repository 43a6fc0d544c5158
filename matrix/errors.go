// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. Algorithms return these sentinels and
// tests match them via errors.Is; public indexers never panic.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MulVec where len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows indicates FromRows received rows of unequal lengths.
	ErrRaggedRows = errors.New("matrix: ragged rows")
)

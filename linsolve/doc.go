// SPDX-License-Identifier: MIT

// Package linsolve is a generic Gaussian-elimination engine over any
// ring.Element domain: it produces an upper-triangular form together with
// the full audit trail of elementary row operations, the pivot
// transpositions, the numeric rank, and the partition of columns into pivot
// ("step") and free columns. On top of that it derives nullspace bases and
// upper-triangular back-substitution.
//
// Recording, not re-deriving
//
//	Every elementary operation (row swap, single-row scale, add-multiple) is
//	recorded in application order and knows its own inverse, so L, L⁻¹ and
//	the permutation P with L·U = P·A are pure replays over an identity
//	matrix — nothing is ever reconstructed from matrix contents.
//
// Pivot strategies
//
//	Pivot selection is a first-class strategy value, chosen per coefficient
//	domain: FirstNonZero for generic rings without a natural ordering,
//	MaxAbs for floating point, MaxHeight for exact rationals (bounds
//	coefficient growth), MinOrder for valuation rings where the smallest
//	order is the safest pivot. Strategy choice affects stability, never
//	correctness.
//
// Sign convention
//
//	When pivot normalization is declined, the pivot row is scaled by −1
//	instead. This is a committed design choice, not an accident: it keeps
//	downstream bookkeeping uniform and flips only the sign of U, never its
//	zero pattern, the rank, or the nullspace.
//
// All configuration travels in an explicit Options value; there is no
// ambient state.
package linsolve

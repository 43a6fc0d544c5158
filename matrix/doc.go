// SPDX-License-Identifier: MIT

// Package matrix provides a row-major dense matrix over any ring.Element
// domain, with the views the factorization stack needs: transpose, identity,
// column extraction and row trimming.
//
// Design
//
//	Dense stores its elements in a flat slice for cache friendliness, exactly
//	like a float64 dense matrix would, but parameterized by the coefficient
//	domain. Matrices are conceptually immutable values: operations produce
//	new matrices, except Set, which exists for the construction phase and for
//	the elimination engine that explicitly owns its working copy.
//
// Error policy
//
//	All user-triggered failures return package sentinels matched with
//	errors.Is; indexers return ErrOutOfRange rather than panic.
package matrix

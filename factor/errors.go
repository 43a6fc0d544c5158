// SPDX-License-Identifier: MIT
// Package factor: sentinel error set. All failures are local and
// non-recoverable: they mark malformed input and propagate to the caller.

package factor

import "errors"

var (
	// ErrInconsistentModulus indicates a polynomial whose coefficients do
	// not share a single modulus; the wrapped message names the polynomial.
	ErrInconsistentModulus = errors.New("factor: coefficients with inconsistent moduli")

	// ErrNotFrobeniusImage indicates FrobeniusCollapse was called on a
	// polynomial with a nonzero coefficient off the multiples-of-p lattice.
	// A checked precondition: the collapse would otherwise silently drop
	// terms.
	ErrNotFrobeniusImage = errors.New("factor: polynomial is not an image of x↦x^p")

	// ErrLength indicates a coefficient vector was asked to be padded to a
	// width shorter than its current length.
	ErrLength = errors.New("factor: pad width shorter than vector")

	// ErrEmptyList indicates MultiplyFactors received an empty factor list,
	// from which no coefficient domain can be recovered.
	ErrEmptyList = errors.New("factor: empty factor list")

	// ErrBadMultiplicity indicates an attempt to record a factor with a
	// non-positive multiplicity.
	ErrBadMultiplicity = errors.New("factor: multiplicity must be > 0")
)

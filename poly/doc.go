// SPDX-License-Identifier: MIT

// Package poly implements dense univariate polynomials over any ring.Element
// domain: construction, arithmetic, Euclidean division, gcd, the formal
// derivative and monic normalization.
//
// Representation
//
//	A polynomial is a variable label plus its coefficients ordered from the
//	leading term down to the constant term. Values are normalized on
//	construction: redundant leading zeros are trimmed, and the zero
//	polynomial keeps exactly one (zero) coefficient so the coefficient domain
//	is always recoverable from any value.
//
// Immutability
//
//	Polynomials are values created by one step and consumed by the next:
//	every operation returns a fresh polynomial and never mutates operands.
//
// Division policy
//
//	QuoRem and GCD assume the coefficient domain is a field (leading
//	coefficients are inverted via ring Div). Dividing by the zero polynomial
//	returns ErrDivisorZero; mixing variable labels in one binary operation
//	returns ErrVariableMismatch.
package poly

// SPDX-License-Identifier: MIT

// Package factor factors univariate polynomials over a prime field GF(p)
// into irreducible factors with multiplicities.
//
// Strategy
//
//	Factorise first normalizes to monic form, then classifies the input
//	into exactly one of four cases, in priority order:
//
//	  constant     — no factors (empty list);
//	  inseparable  — the derivative vanishes identically (characteristic p:
//	                 every exponent is a multiple of p), so f = g(x^p);
//	                 recurse on the collapsed g;
//	  repeated     — gcd(f, f′) is non-constant: split into gcd and
//	                 cofactor, factor both, merge multiplicities;
//	  square-free  — hand to Berlekamp's algorithm.
//
//	Berlekamp's method builds the matrix Q of the Frobenius endomorphism
//	x ↦ x^p acting on GF(p)[x]/(u), extracts the nullspace of Qᵗ − I with
//	the linsolve engine, and splits u by gcd trials against witness
//	polynomials built from nullspace basis vectors. The nullspace dimension
//	equals the number of irreducible factors, which bounds the search.
//
// Inseparable inputs
//
//	Over the prime field every scalar is fixed by Frobenius, so
//	g(x^p) = g(x)^p. Factorise therefore multiplies the multiplicities of
//	g's factors by p rather than re-expanding the factors through x ↦ x^p,
//	which keeps every returned factor irreducible (e.g. x⁴+1 over GF(2)
//	correctly reports (x+1)⁴, not the reducible x²+1 squared).
//
// Factor lists
//
//	FactorList maps distinct monic irreducible factors (compared under ring
//	equality, never structural equality) to positive multiplicities. Lists
//	are immutable: Add and Merge return fresh lists, so no aliasing hazard
//	can cross call boundaries. MultiplyFactors reconstructs the original
//	monic polynomial and serves as the round-trip oracle in tests.
//
// All failure conditions are sentinel errors (errors.Is); they indicate
// malformed input and are never retried internally.
package factor

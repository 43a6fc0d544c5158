// Package lvlalg is an in-memory computer-algebra toolkit for factoring
// univariate polynomials over prime fields GF(p), built on a reusable
// generic linear-algebra core.
//
// 🚀 What is lvlalg?
//
//	A pure-Go, deterministic library that brings together:
//		• Ring/field abstractions: one Element contract, many domains
//		  (GF(p), float64 reals, exact rationals)
//		• Dense matrices over any ring element
//		• A recording Gaussian-elimination engine: upper-triangular form,
//		  elementary row operations, rank, pivot/free column partition
//		• Nullspace extraction and triangular back-substitution
//		• Square-free splitting with Frobenius handling in characteristic p
//		• Berlekamp's factorization of square-free polynomials over GF(p)
//
// ✨ Why choose lvlalg?
//
//   - Deterministic – fixed traversal orders, no global state, stable output
//   - Rock-solid guarantees – checked preconditions, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Composable – the linear solver is usable on its own, over any domain
//
// Under the hood, everything is organized under six subpackages:
//
//	ring/     — generic ring/field element contract + Real and Rat domains
//	gf/       — modular integers over a checked prime modulus
//	poly/     — dense univariate polynomials over any ring element
//	matrix/   — row-major Dense matrices over any ring element
//	linsolve/ — recorded-op elimination, pivot strategies, nullspace
//	factor/   — square-free splitting + Berlekamp over GF(p)
//
// Quick example:
//
//	factoring x⁴+1 over GF(2) yields (x+1)⁴, since 1+1 = 0 there.
//
// Dive into the per-package docs for full examples and invariants.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg

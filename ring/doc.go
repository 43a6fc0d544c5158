// SPDX-License-Identifier: MIT

// Package ring defines the arithmetic contract shared by every coefficient
// domain in lvlalg, plus two ready-made field adapters (Real, Rat).
//
// What & Why
//
//	Generic algorithms (polynomial arithmetic, Gaussian elimination,
//	factorization) need +, −, ×, ÷, equality, zero/one tests and gcd over an
//	opaque element type. Element[T] captures exactly that capability set as a
//	Go generic constraint, so each domain implements the contract once and
//	every kernel works unchanged over GF(p), float64 reals, exact rationals,
//	or a caller-supplied domain.
//
// Capability interfaces
//
//	Pivot selection in the linear solver depends on per-domain notions of
//	"safest pivot". Rather than dispatching on the concrete type, domains opt
//	into small capability interfaces:
//
//	  Absolute — Abs() float64          (floating-point magnitude)
//	  Heighted — Height() *big.Int     (max(|num|,|den|) for exact rationals)
//	  Valued   — Order() int           (valuation; smaller = safer pivot)
//
// Error policy
//
//	Division by zero and cross-domain arithmetic are programmer errors: every
//	algorithm in lvlalg guards its divisions (pivot selectors skip zeros,
//	polynomial division validates the divisor), so these panic instead of
//	returning errors. User-triggered failures elsewhere in lvlalg use
//	sentinel errors matched with errors.Is.
//
// See also: gf for the prime-field domain used by factorization.
package ring

// SPDX-License-Identifier: MIT

// Package gf implements the prime-field domain GF(p): immutable modular
// integers with modulus introspection, satisfying the ring.Element contract.
//
// What & Why
//
//	Berlekamp factorization works over a finite field GF(p). This package is
//	that field: residues 0..p−1 under arithmetic mod p, with the modulus
//	carried by every element so generic code can recover it (Modulus) and
//	validate that a polynomial's coefficients all live in one field.
//
// Guarantees
//
//   - The modulus is verified prime at construction (ErrNotPrime): a checked
//     precondition, not an assumption. The check is deterministic for any
//     int64 modulus.
//   - Elements are immutable values; all operations return new elements.
//   - Arithmetic is exact for every int64 prime modulus: sums fold in
//     uint64 and products reduce through their full 128-bit form, so large
//     moduli never overflow silently.
//   - Division uses the extended Euclidean inverse; dividing by zero panics
//     (programmer error, see ring's error policy). Mixing moduli in one
//     operation also panics: it can only come from a broken caller.
//
// Determinism
//
//	Elements(p) enumerates the field in ascending residue order 0..p−1; all
//	callers that iterate the field (e.g. Berlekamp's shift trials) therefore
//	produce stable output.
package gf

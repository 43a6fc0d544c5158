// SPDX-License-Identifier: MIT

package gf

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// ErrNotPrime is returned when a requested modulus is not a prime number.
// Constructors must reject such moduli before any element exists.
var ErrNotPrime = errors.New("gf: modulus is not prime")

// Internal panic messages (no magic strings).
const (
	panicDivZero         = "gf: division by zero"
	panicModulusMismatch = "gf: mixed moduli in one operation"
	panicUninitialized   = "gf: element not built by New/MustNew"
)

// Int is an immutable residue modulo a prime p. The zero value is not a
// valid element; build elements with New or MustNew so the modulus is
// always present and checked.
type Int struct {
	v int64 // normalized residue, 0 ≤ v < p
	p int64 // prime modulus, ≥ 2
}

// New returns the element v mod p in GF(p).
// Stage 1 (Validate): p must be prime (ErrNotPrime otherwise).
// Stage 2 (Normalize): reduce v into [0, p).
// Complexity: primality is a deterministic Baillie–PSW check on an int64.
func New(v, p int64) (Int, error) {
	// Validate the modulus: deterministic and exact for any int64.
	if p < 2 || !big.NewInt(p).ProbablyPrime(0) {
		return Int{}, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	// Normalize the representative into [0, p).
	v %= p
	if v < 0 {
		v += p
	}

	return Int{v: v, p: p}, nil
}

// MustNew is New panicking on error; intended for literals in tests and
// examples where the modulus is a known prime.
func MustNew(v, p int64) Int {
	e, err := New(v, p)
	if err != nil {
		panic(err)
	}

	return e
}

// Elements returns the whole field 0..p−1 in ascending residue order.
// Used by factorization for its scalar shift trials; the fixed order keeps
// factor output deterministic.
func Elements(p int64) ([]Int, error) {
	// Validate once via the zero element, then step through residues.
	zero, err := New(0, p)
	if err != nil {
		return nil, err
	}
	out := make([]Int, p)
	out[0] = zero
	for v := int64(1); v < p; v++ {
		out[v] = Int{v: v, p: p}
	}

	return out, nil
}

// Value returns the normalized residue in [0, p).
func (e Int) Value() int64 { return e.v }

// Modulus returns the prime modulus p of the element's field.
func (e Int) Modulus() int64 { return e.p }

// sameField asserts both operands were built over the same prime.
// A mismatch is a programmer error, hence panic rather than error return.
func (e Int) sameField(x Int) {
	if e.p == 0 || x.p == 0 {
		panic(panicUninitialized)
	}
	if e.p != x.p {
		panic(panicModulusMismatch)
	}
}

// Add returns e + x mod p. The sum is formed in uint64, which cannot wrap
// for residues below an int64 prime, so every modulus New accepts is safe.
func (e Int) Add(x Int) Int {
	e.sameField(x)
	sum := uint64(e.v) + uint64(x.v)
	if sum >= uint64(e.p) {
		sum -= uint64(e.p)
	}

	return Int{v: int64(sum), p: e.p}
}

// Sub returns e − x mod p.
func (e Int) Sub(x Int) Int {
	e.sameField(x)
	d := e.v - x.v
	if d < 0 {
		d += e.p
	}

	return Int{v: d, p: e.p}
}

// Mul returns e × x mod p via the full 128-bit product, so the result is
// exact for every modulus New accepts — an int64 product would silently
// overflow for p above roughly 2³¹.
func (e Int) Mul(x Int) Int {
	e.sameField(x)
	// bits.Div64 requires hi < divisor: hi ≤ (p−1)²/2⁶⁴ < p since p < 2⁶⁴.
	hi, lo := bits.Mul64(uint64(e.v), uint64(x.v))
	_, rem := bits.Div64(hi, lo, uint64(e.p))

	return Int{v: int64(rem), p: e.p}
}

// Div returns e ÷ x mod p via the extended Euclidean inverse of x.
// Panics if x is zero.
func (e Int) Div(x Int) Int {
	e.sameField(x)

	return e.Mul(x.Inv())
}

// Inv returns the multiplicative inverse of e. Panics if e is zero.
// Stage 1 (Validate): nonzero operand.
// Stage 2 (Execute): extended Euclid on (v, p); gcd is 1 since p is prime.
// Complexity: O(log p) divisions.
func (e Int) Inv() Int {
	if e.p == 0 {
		panic(panicUninitialized)
	}
	if e.v == 0 {
		panic(panicDivZero)
	}
	// Extended Euclid: maintain r = old coefficients so that
	// t*v ≡ r (mod p) at every step; terminates with r == 1.
	var (
		t, newT int64 = 0, 1   // Bézout coefficients for v
		r, newR       = e.p, e.v // remainder sequence
	)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if t < 0 {
		t += e.p
	}

	return Int{v: t % e.p, p: e.p}
}

// Neg returns −e mod p.
func (e Int) Neg() Int {
	if e.p == 0 {
		panic(panicUninitialized)
	}

	return Int{v: (e.p - e.v) % e.p, p: e.p}
}

// Equal reports ring equality with x: same field and same residue.
func (e Int) Equal(x Int) bool {
	e.sameField(x)

	return e.v == x.v
}

// IsZero reports whether e is the additive identity.
func (e Int) IsZero() bool { return e.v == 0 }

// IsOne reports whether e is the multiplicative identity.
func (e Int) IsOne() bool { return e.v == 1 }

// Zero returns 0 in the receiver's field.
func (e Int) Zero() Int {
	if e.p == 0 {
		panic(panicUninitialized)
	}

	return Int{v: 0, p: e.p}
}

// One returns 1 in the receiver's field.
func (e Int) One() Int {
	if e.p == 0 {
		panic(panicUninitialized)
	}

	return Int{v: 1, p: e.p}
}

// GCD returns the field gcd: Zero when both operands are zero, One
// otherwise. Defined so generic code can call gcd uniformly on any domain.
func (e Int) GCD(x Int) Int {
	e.sameField(x)
	if e.v == 0 && x.v == 0 {
		return e.Zero()
	}

	return e.One()
}

// String implements fmt.Stringer as the bare residue (the field is implied
// by context in polynomial and matrix printing).
func (e Int) String() string { return strconv.FormatInt(e.v, 10) }

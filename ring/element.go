// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
)

// Internal panic messages (no magic strings).
const (
	panicDivZero = "ring: division by zero"
)

// Element is the arithmetic capability set every coefficient domain must
// provide. T is the concrete element type itself (the usual self-referential
// constraint pattern), so implementations stay fully typed with no boxing.
//
// Contract:
//   - All operations are pure: receivers and arguments are never mutated.
//   - Div panics on a zero divisor (programmer error; callers must guard).
//   - Zero/One return the additive and multiplicative identities of the
//     receiver's domain; for parameterized domains (e.g. GF(p)) the receiver
//     supplies the parameter.
//   - GCD must be total. Fields return a unit (One) for any nonzero pair and
//     Zero only when both operands are zero, which is all generic code needs.
//   - Equal is the ring-equality predicate; it is the comparison used for
//     factor-list keys, never structural equality.
type Element[T any] interface {
	// Add returns receiver + x.
	Add(x T) T
	// Sub returns receiver − x.
	Sub(x T) T
	// Mul returns receiver × x.
	Mul(x T) T
	// Div returns receiver ÷ x. Panics if x is the domain zero.
	Div(x T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Equal reports ring equality with x.
	Equal(x T) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// IsOne reports whether the receiver is the multiplicative identity.
	IsOne() bool
	// Zero returns the additive identity of the receiver's domain.
	Zero() T
	// One returns the multiplicative identity of the receiver's domain.
	One() T
	// GCD returns a greatest common divisor of receiver and x.
	GCD(x T) T

	fmt.Stringer
}

// Absolute is implemented by domains with a floating-point magnitude,
// enabling the max-absolute-value pivot strategy.
type Absolute interface {
	// Abs returns the magnitude of the element as a float64.
	Abs() float64
}

// Heighted is implemented by exact domains with a notion of coefficient
// height, enabling the max-height pivot strategy that bounds growth during
// exact elimination.
type Heighted interface {
	// Height returns max(|numerator|, |denominator|) as a big integer.
	Height() *big.Int
}

// Valued is implemented by domains carrying a (p-adic style) valuation,
// enabling the minimal-order pivot strategy: the element of smallest order
// is the safest pivot when solving over such rings.
type Valued interface {
	// Order returns the valuation of the element. Order of zero is
	// conventionally large; strategies skip zero elements regardless.
	Order() int
}

// ScaleInt returns n·x computed in the element's own domain via binary
// doubling, using only Add/Neg. It is how generic code (e.g. the formal
// derivative) multiplies a ring element by a machine integer without the
// domain exposing an integer-embedding method.
//
// Complexity: O(log |n|) ring additions.
func ScaleInt[T Element[T]](x T, n int) T {
	// Negative multiples reduce to the positive case.
	if n < 0 {
		return ScaleInt(x.Neg(), -n)
	}
	acc := x.Zero() // running sum
	add := x        // current power-of-two multiple of x
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Add(add)
		}
		add = add.Add(add)
		n >>= 1
	}

	return acc
}

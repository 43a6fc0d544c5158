// SPDX-License-Identifier: MIT

package ring

import (
	"math"
	"strconv"
)

// Real is the float64 field adapter. It implements Element[Real] and
// Absolute, making it a valid domain for the linear solver with the
// max-absolute-value pivot strategy.
//
// Equality is exact float64 comparison: Real is intended for small, exactly
// representable test systems and for callers who manage their own tolerance;
// no epsilon policy is hidden inside the arithmetic.
type Real float64

// Add returns r + x.
func (r Real) Add(x Real) Real { return r + x }

// Sub returns r − x.
func (r Real) Sub(x Real) Real { return r - x }

// Mul returns r × x.
func (r Real) Mul(x Real) Real { return r * x }

// Div returns r ÷ x. Panics if x is zero.
func (r Real) Div(x Real) Real {
	if x == 0 {
		panic(panicDivZero)
	}

	return r / x
}

// Neg returns −r.
func (r Real) Neg() Real { return -r }

// Equal reports exact equality with x.
func (r Real) Equal(x Real) bool { return r == x }

// IsZero reports whether r is 0.
func (r Real) IsZero() bool { return r == 0 }

// IsOne reports whether r is 1.
func (r Real) IsOne() bool { return r == 1 }

// Zero returns the additive identity.
func (Real) Zero() Real { return 0 }

// One returns the multiplicative identity.
func (Real) One() Real { return 1 }

// GCD returns the field gcd: Zero when both operands are zero, One otherwise.
func (r Real) GCD(x Real) Real {
	if r == 0 && x == 0 {
		return 0
	}

	return 1
}

// Abs returns |r|, enabling the MaxAbs pivot strategy.
func (r Real) Abs() float64 { return math.Abs(float64(r)) }

// String implements fmt.Stringer.
func (r Real) String() string { return strconv.FormatFloat(float64(r), 'g', -1, 64) }

// SPDX-License-Identifier: MIT

package ring

import "math/big"

// Rat is the exact-rational field adapter over math/big.Rat. It implements
// Element[Rat] and Heighted, making it a valid domain for the linear solver
// with the max-height pivot strategy (picking the pivot of largest
// max(|num|,|den|) bounds coefficient growth during exact elimination).
//
// Rat values are immutable: every operation allocates a fresh big.Rat. The
// zero value of Rat is the rational 0, so Rat is safe to use uninitialized.
type Rat struct {
	v *big.Rat // nil means 0; never mutated after construction
}

// NewRat returns the rational num/den. Panics if den is zero (programmer
// error, same policy as Div).
func NewRat(num, den int64) Rat {
	if den == 0 {
		panic(panicDivZero)
	}

	return Rat{v: big.NewRat(num, den)}
}

// RatFromBig wraps an existing big.Rat, copying it so later mutation of the
// argument cannot alias into the immutable Rat.
func RatFromBig(x *big.Rat) Rat {
	if x == nil {
		return Rat{}
	}

	return Rat{v: new(big.Rat).Set(x)}
}

// rat returns the backing value, mapping the nil (zero-value) case to 0.
func (r Rat) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// Add returns r + x.
func (r Rat) Add(x Rat) Rat { return Rat{v: new(big.Rat).Add(r.rat(), x.rat())} }

// Sub returns r − x.
func (r Rat) Sub(x Rat) Rat { return Rat{v: new(big.Rat).Sub(r.rat(), x.rat())} }

// Mul returns r × x.
func (r Rat) Mul(x Rat) Rat { return Rat{v: new(big.Rat).Mul(r.rat(), x.rat())} }

// Div returns r ÷ x. Panics if x is zero.
func (r Rat) Div(x Rat) Rat {
	if x.IsZero() {
		panic(panicDivZero)
	}

	return Rat{v: new(big.Rat).Quo(r.rat(), x.rat())}
}

// Neg returns −r.
func (r Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(r.rat())} }

// Equal reports exact equality with x.
func (r Rat) Equal(x Rat) bool { return r.rat().Cmp(x.rat()) == 0 }

// IsZero reports whether r is 0.
func (r Rat) IsZero() bool { return r.rat().Sign() == 0 }

// IsOne reports whether r is 1.
func (r Rat) IsOne() bool { return r.rat().Cmp(big.NewRat(1, 1)) == 0 }

// Zero returns the additive identity.
func (Rat) Zero() Rat { return Rat{} }

// One returns the multiplicative identity.
func (Rat) One() Rat { return Rat{v: big.NewRat(1, 1)} }

// GCD returns the field gcd: Zero when both operands are zero, One otherwise.
func (r Rat) GCD(x Rat) Rat {
	if r.IsZero() && x.IsZero() {
		return Rat{}
	}

	return r.One()
}

// Height returns max(|num|, |den|), the classic height of a rational.
// Used by the MaxHeight pivot strategy.
func (r Rat) Height() *big.Int {
	v := r.rat()
	num := new(big.Int).Abs(v.Num())
	den := new(big.Int).Abs(v.Denom())
	if num.Cmp(den) >= 0 {
		return num
	}

	return den
}

// String implements fmt.Stringer (e.g. "3/4", "-2/1" prints as "-2").
func (r Rat) String() string { return r.rat().RatString() }

// SPDX-License-Identifier: MIT
// Package poly: arithmetic kernels. All kernels are pure (operands are never
// mutated), deterministic (fixed loop orders) and return fresh values.

package poly

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opQuoRem     = "QuoRem"
	opMod        = "Mod"
	opGCD        = "GCD"
	opDerivative = "Derivative"
)

// polyErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with non-nil err.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sameVariable validates that two operands share one variable label.
func sameVariable[E ring.Element[E]](p, q *Poly[E]) error {
	if p.variable != q.variable {
		return fmt.Errorf("%w: %q vs %q", ErrVariableMismatch, p.variable, q.variable)
	}

	return nil
}

// Add returns p + q.
// Complexity: O(max(deg p, deg q)).
func (p *Poly[E]) Add(q *Poly[E]) (*Poly[E], error) {
	if err := sameVariable(p, q); err != nil {
		return nil, polyErrorf(opAdd, err)
	}
	// Align tails: the shorter operand is implicitly zero-padded at the front.
	long, short := p.coeffs, q.coeffs
	if len(short) > len(long) {
		long, short = short, long
	}
	out := make([]E, len(long))
	offset := len(long) - len(short)
	copy(out, long[:offset])
	for i := 0; i < len(short); i++ { // fixed ascending order
		out[offset+i] = long[offset+i].Add(short[i])
	}

	return newTrimmed(p.variable, out), nil
}

// Sub returns p − q.
func (p *Poly[E]) Sub(q *Poly[E]) (*Poly[E], error) {
	r, err := p.Add(q.Neg())
	if err != nil {
		return nil, polyErrorf(opSub, err)
	}

	return r, nil
}

// Neg returns −p.
func (p *Poly[E]) Neg() *Poly[E] {
	out := make([]E, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Neg()
	}

	return &Poly[E]{variable: p.variable, coeffs: out}
}

// Mul returns p × q by schoolbook convolution.
// Complexity: O(deg p · deg q).
func (p *Poly[E]) Mul(q *Poly[E]) (*Poly[E], error) {
	if err := sameVariable(p, q); err != nil {
		return nil, polyErrorf(opMul, err)
	}
	if p.IsZero() || q.IsZero() {
		return p.zero(), nil
	}
	zero := p.coeffs[0].Zero()
	out := make([]E, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = zero
	}
	var i, j int // deterministic i→j order
	for i = 0; i < len(p.coeffs); i++ {
		if p.coeffs[i].IsZero() {
			continue // skip zero for performance
		}
		for j = 0; j < len(q.coeffs); j++ {
			out[i+j] = out[i+j].Add(p.coeffs[i].Mul(q.coeffs[j]))
		}
	}

	return newTrimmed(p.variable, out), nil
}

// MulScalar returns s·p.
func (p *Poly[E]) MulScalar(s E) *Poly[E] {
	if s.IsZero() {
		return p.zero()
	}
	out := make([]E, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(s)
	}

	return newTrimmed(p.variable, out)
}

// QuoRem returns quotient and remainder of p ÷ d with deg r < deg d.
// The coefficient domain must be a field (the leading coefficient of d is
// inverted). Dividing by the zero polynomial yields ErrDivisorZero.
// Stage 1 (Validate): same variable, nonzero divisor.
// Stage 2 (Execute): synthetic long division on a working copy, leading
// coefficient first; each step clears one leading term of the remainder.
// Complexity: O(deg p · deg d).
func (p *Poly[E]) QuoRem(d *Poly[E]) (*Poly[E], *Poly[E], error) {
	if err := sameVariable(p, d); err != nil {
		return nil, nil, polyErrorf(opQuoRem, err)
	}
	if d.IsZero() {
		return nil, nil, polyErrorf(opQuoRem, ErrDivisorZero)
	}
	if len(p.coeffs) < len(d.coeffs) {
		// deg p < deg d: quotient 0, remainder p itself.
		return p.zero(), &Poly[E]{variable: p.variable, coeffs: p.Coefficients()}, nil
	}

	// Working copy of the dividend; entries become the running remainder.
	num := p.Coefficients()
	dlen := len(d.coeffs)
	lead := d.coeffs[0]
	quo := make([]E, len(num)-dlen+1)
	var i, j int
	for i = 0; i < len(quo); i++ { // clear leading terms left to right
		factor := num[i].Div(lead)
		quo[i] = factor
		if factor.IsZero() {
			continue
		}
		num[i] = num[i].Zero()
		for j = 1; j < dlen; j++ {
			num[i+j] = num[i+j].Sub(factor.Mul(d.coeffs[j]))
		}
	}

	rem := num[len(quo):]
	if len(rem) == 0 {
		return newTrimmed(p.variable, quo), p.zero(), nil
	}

	return newTrimmed(p.variable, quo), newTrimmed(p.variable, rem), nil
}

// Mod returns the remainder of p ÷ d.
func (p *Poly[E]) Mod(d *Poly[E]) (*Poly[E], error) {
	_, r, err := p.QuoRem(d)
	if err != nil {
		return nil, polyErrorf(opMod, err)
	}

	return r, nil
}

// GCD returns the monic greatest common divisor of p and q by the Euclidean
// algorithm. GCD(0, 0) is the zero polynomial.
// Complexity: O(deg² ) field operations.
func (p *Poly[E]) GCD(q *Poly[E]) (*Poly[E], error) {
	if err := sameVariable(p, q); err != nil {
		return nil, polyErrorf(opGCD, err)
	}
	a := &Poly[E]{variable: p.variable, coeffs: p.Coefficients()}
	b := &Poly[E]{variable: q.variable, coeffs: q.Coefficients()}
	for !b.IsZero() {
		_, r, err := a.QuoRem(b)
		if err != nil {
			return nil, polyErrorf(opGCD, err)
		}
		a, b = b, r
	}

	return a.Monic(), nil
}

// Derivative returns the formal derivative dp/dx. In characteristic p the
// integer factors reduce through the ring itself, so an inseparable
// polynomial (all exponents multiples of the characteristic) correctly
// yields the zero polynomial.
// Complexity: O(deg · log deg) ring additions via binary scaling.
func (p *Poly[E]) Derivative() *Poly[E] {
	deg := p.Degree()
	if deg == 0 {
		return p.zero()
	}
	out := make([]E, deg) // one shorter than the source
	for i := 0; i < deg; i++ {
		// coeffs[i] multiplies x^(deg−i); its derivative term is (deg−i)·c.
		out[i] = ring.ScaleInt(p.coeffs[i], deg-i)
	}

	return newTrimmed(p.variable, out)
}

// Monic returns p scaled so its leading coefficient is one. The zero
// polynomial is returned unchanged.
func (p *Poly[E]) Monic() *Poly[E] {
	if p.IsZero() || p.coeffs[0].IsOne() {
		return &Poly[E]{variable: p.variable, coeffs: p.Coefficients()}
	}
	inv := p.coeffs[0].One().Div(p.coeffs[0])

	return p.MulScalar(inv)
}

// Content returns the gcd of all coefficients (a unit for field domains
// unless p is zero), defined so generic callers can normalize uniformly.
func (p *Poly[E]) Content() E {
	acc := p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		acc = acc.GCD(c)
	}
	if len(p.coeffs) == 1 {
		// Single coefficient: its self-gcd is the defined content.
		acc = acc.GCD(acc)
	}

	return acc
}

// Eval returns p(x) by Horner's rule in the leading-first order.
// Complexity: O(deg).
func (p *Poly[E]) Eval(x E) E {
	acc := p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		acc = acc.Mul(x).Add(c)
	}

	return acc
}

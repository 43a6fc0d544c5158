// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/ring"
)

// Poly is a dense univariate polynomial over the coefficient domain E.
// Coefficients run from the leading term down to the constant term and are
// normalized: coeffs[0] is nonzero unless the value is the zero polynomial,
// which keeps exactly one zero coefficient.
type Poly[E ring.Element[E]] struct {
	variable string
	coeffs   []E // leading term first, len ≥ 1
}

// New builds a polynomial from coefficients ordered leading term first.
// Stage 1 (Validate): at least one coefficient must be supplied.
// Stage 2 (Normalize): trim redundant leading zeros.
// Complexity: O(len(coeffs)).
func New[E ring.Element[E]](variable string, coeffs ...E) (*Poly[E], error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	return newTrimmed(variable, append([]E(nil), coeffs...)), nil
}

// MustNew is New panicking on error; intended for literals in tests and
// examples.
func MustNew[E ring.Element[E]](variable string, coeffs ...E) *Poly[E] {
	p, err := New(variable, coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// Monomial returns c·x^degree in the given variable.
func Monomial[E ring.Element[E]](variable string, c E, degree int) (*Poly[E], error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDegree, degree)
	}
	coeffs := make([]E, degree+1)
	coeffs[0] = c
	for i := 1; i <= degree; i++ {
		coeffs[i] = c.Zero()
	}

	return newTrimmed(variable, coeffs), nil
}

// newTrimmed normalizes an owned coefficient slice in place.
// The slice must be non-empty; callers transfer ownership.
func newTrimmed[E ring.Element[E]](variable string, coeffs []E) *Poly[E] {
	i := 0
	for i < len(coeffs)-1 && coeffs[i].IsZero() {
		i++ // skip redundant leading zeros, keep at least one coefficient
	}

	return &Poly[E]{variable: variable, coeffs: coeffs[i:]}
}

// zero returns the zero polynomial of the receiver's domain and variable.
func (p *Poly[E]) zero() *Poly[E] {
	return &Poly[E]{variable: p.variable, coeffs: []E{p.coeffs[0].Zero()}}
}

// Variable returns the polynomial's variable label.
func (p *Poly[E]) Variable() string { return p.variable }

// Degree returns the degree: the highest power with a nonzero coefficient.
// The zero polynomial reports degree 0.
func (p *Poly[E]) Degree() int { return len(p.coeffs) - 1 }

// LeadingCoefficient returns the coefficient of the highest power.
func (p *Poly[E]) LeadingCoefficient() E { return p.coeffs[0] }

// Coefficient returns the coefficient of x^k; powers beyond the degree
// yield the domain zero.
func (p *Poly[E]) Coefficient(k int) E {
	if k < 0 || k > p.Degree() {
		return p.coeffs[0].Zero()
	}

	return p.coeffs[len(p.coeffs)-1-k]
}

// Coefficients returns a copy of the coefficients, leading term first.
func (p *Poly[E]) Coefficients() []E { return append([]E(nil), p.coeffs...) }

// IsZero reports whether p is the zero polynomial.
func (p *Poly[E]) IsZero() bool { return len(p.coeffs) == 1 && p.coeffs[0].IsZero() }

// IsConstant reports whether p has degree 0 (including the zero polynomial).
func (p *Poly[E]) IsConstant() bool { return len(p.coeffs) == 1 }

// IsMonic reports whether the leading coefficient is the domain one.
func (p *Poly[E]) IsMonic() bool { return p.coeffs[0].IsOne() }

// Equal reports ring equality: same variable, same degree, and coefficient-
// wise ring equality. This is the predicate factor lists key on.
func (p *Poly[E]) Equal(q *Poly[E]) bool {
	if p.variable != q.variable || len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}

	return true
}

// String renders the polynomial in conventional descending-power notation,
// e.g. "x^2 + 2x + 1"; the zero polynomial prints as "0". Negative
// coefficients of signed domains join with " - " and print their magnitude
// ("x - 2", never "x + -2"); a negative leading term keeps its bare sign.
func (p *Poly[E]) String() string {
	if p.IsZero() {
		return p.coeffs[0].String()
	}
	var b strings.Builder
	deg := p.Degree()
	first := true
	for i, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		mag := c.String()
		neg := strings.HasPrefix(mag, "-")
		if neg {
			mag = mag[1:]
		}
		switch {
		case first && neg:
			b.WriteString("-")
		case !first && neg:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false
		pow := deg - i
		switch {
		case pow == 0:
			b.WriteString(mag)
		case mag == "1":
			b.WriteString(p.variable)
		default:
			b.WriteString(mag)
			b.WriteString(p.variable)
		}
		if pow > 1 {
			fmt.Fprintf(&b, "^%d", pow)
		}
	}

	return b.String()
}

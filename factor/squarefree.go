// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/poly"
)

// splitCase classifies a monic polynomial for the square-free splitting
// recursion. Exactly one case applies; Factorise computes it once and
// switches.
type splitCase int

const (
	caseConstant    splitCase = iota // degree 0: nothing to factor
	caseInseparable                  // derivative vanishes: f = g(x^p)
	caseRepeated                     // gcd(f, f′) non-constant: repeated factors
	caseSquareFree                   // gcd(f, f′) constant: hand to Berlekamp
)

// Prime returns the common prime modulus of f's coefficients. Every
// coefficient must carry the same modulus; a polynomial assembled from
// mixed fields is rejected with ErrInconsistentModulus naming f.
func Prime(f *poly.Poly[gf.Int]) (int64, error) {
	cs := f.Coefficients()
	p := cs[0].Modulus()
	for _, c := range cs[1:] {
		if c.Modulus() != p {
			return 0, fmt.Errorf("%w: %s", ErrInconsistentModulus, f)
		}
	}

	return p, nil
}

// FrobeniusExpand substitutes x ↦ x^p, where p is the coefficient modulus:
// the coefficient of x^k moves to x^(pk). Constants are returned as-is.
// Complexity: O(p · deg f).
func FrobeniusExpand(f *poly.Poly[gf.Int]) (*poly.Poly[gf.Int], error) {
	p, err := Prime(f)
	if err != nil {
		return nil, err
	}
	cs := f.Coefficients()
	if len(cs) == 1 {
		return poly.New(f.Variable(), cs...)
	}
	zero := cs[0].Zero()
	pi := int(p)
	out := make([]gf.Int, (len(cs)-1)*pi+1)
	for i := range out {
		out[i] = zero
	}
	for i, c := range cs {
		// x^(deg−i) maps to x^(p(deg−i)); in leading-first storage that is
		// slot p·i of the expanded vector.
		out[i*pi] = c
	}

	return poly.New(f.Variable(), out...)
}

// FrobeniusCollapse inverts FrobeniusExpand: given f whose nonzero terms
// all sit at exponents divisible by p, it returns g with f = g(x^p).
// The divisibility precondition is checked term by term — a silent collapse
// would drop coefficients — and its violation is ErrNotFrobeniusImage.
// Complexity: O(deg f).
func FrobeniusCollapse(f *poly.Poly[gf.Int]) (*poly.Poly[gf.Int], error) {
	p, err := Prime(f)
	if err != nil {
		return nil, err
	}
	cs := f.Coefficients()
	if len(cs) == 1 {
		return poly.New(f.Variable(), cs...)
	}
	pi := int(p)
	deg := len(cs) - 1
	for i, c := range cs {
		if !c.IsZero() && (deg-i)%pi != 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFrobeniusImage, f)
		}
	}
	out := make([]gf.Int, deg/pi+1)
	for k := range out {
		out[k] = cs[k*pi]
	}

	return poly.New(f.Variable(), out...)
}

// Factorise factors f over its prime field into monic irreducible factors
// with multiplicities. The leading coefficient is discarded by monic
// normalization, so Factorise(c·f) == Factorise(f) for any nonzero scalar c;
// constants (including zero) yield the empty list.
//
// Stage 1 (Validate): all coefficients share one prime modulus.
// Stage 2 (Normalize): scale to monic form.
// Stage 3 (Split): recursive square-free splitting, one case per call:
//
//	constant    → empty list;
//	inseparable → f = g(x^p) = g(x)^p over the prime field, so factor the
//	              collapsed g and multiply every multiplicity by p;
//	repeated    → d = gcd(f, f′) is a proper divisor; factor d and f/d
//	              independently and merge;
//	square-free → Berlekamp's nullspace method.
//
// Determinism: recursion order, witness order and scalar shift order are
// all fixed, so equal inputs produce identical lists.
func Factorise(f *poly.Poly[gf.Int]) (*FactorList, error) {
	p, err := Prime(f)
	if err != nil {
		return nil, err
	}

	return factorise(f.Monic(), p)
}

// factorise is the splitting recursion. u is monic (or constant).
func factorise(u *poly.Poly[gf.Int], p int64) (*FactorList, error) {
	c, d, err := classify(u)
	if err != nil {
		return nil, err
	}
	switch c {
	case caseConstant:
		return NewFactorList(), nil

	case caseInseparable:
		g, err := FrobeniusCollapse(u)
		if err != nil {
			return nil, err
		}
		inner, err := factorise(g, p)
		if err != nil {
			return nil, err
		}
		out := NewFactorList()
		for _, e := range inner.Entries() {
			// g(x^p) = g(x)^p in GF(p)[x]: every scalar is a Frobenius fixed
			// point, so the factors stay irreducible and only the
			// multiplicities scale.
			if out, err = out.Add(e.Factor, e.Multiplicity*int(p)); err != nil {
				return nil, err
			}
		}

		return out, nil

	case caseRepeated:
		// u = d · (u/d) with 1 ≤ deg d < deg u; both parts recurse.
		quo, _, err := u.QuoRem(d)
		if err != nil {
			return nil, err
		}
		left, err := factorise(d, p)
		if err != nil {
			return nil, err
		}
		right, err := factorise(quo.Monic(), p)
		if err != nil {
			return nil, err
		}

		return left.Merge(right), nil

	default: // caseSquareFree
		irr, err := berlekamp(u, p)
		if err != nil {
			return nil, err
		}
		out := NewFactorList()
		for _, f := range irr {
			if out, err = out.Add(f, 1); err != nil {
				return nil, err
			}
		}

		return out, nil
	}
}

// classify picks the splitting case for monic u. For caseRepeated it also
// returns the non-constant gcd(u, u′), nil otherwise.
func classify(u *poly.Poly[gf.Int]) (splitCase, *poly.Poly[gf.Int], error) {
	if u.IsConstant() {
		return caseConstant, nil, nil
	}
	du := u.Derivative()
	if du.IsZero() {
		return caseInseparable, nil, nil
	}
	d, err := u.GCD(du)
	if err != nil {
		return 0, nil, err
	}
	if !d.IsConstant() {
		return caseRepeated, d, nil
	}

	return caseSquareFree, nil, nil
}

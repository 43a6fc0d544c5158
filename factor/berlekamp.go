// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/linsolve"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/poly"
)

// leftPad returns v widened to n entries by prepending zeros. Vectors longer
// than n are rejected with ErrLength.
func leftPad(v []gf.Int, n int, zero gf.Int) ([]gf.Int, error) {
	if len(v) > n {
		return nil, fmt.Errorf("%w: have %d, want ≤ %d", ErrLength, len(v), n)
	}
	out := make([]gf.Int, n)
	for i := 0; i < n-len(v); i++ {
		out[i] = zero
	}
	copy(out[n-len(v):], v)

	return out, nil
}

// frobeniusMatrix builds the n×n matrix Q of the Frobenius endomorphism
// h ↦ h^p on GF(p)[x]/(u), n = deg u. Basis vectors are the residues of
// x^k read in leading-first coefficient order, so the row holding x^(pk)
// mod u sits at index n−1−k and is left-padded to width n.
// Stage 1 (Prepare): reduce x^p mod u once; it steps x^(pk) to x^(p(k+1)).
// Stage 2 (Fill): successive modular multiplications, one per row.
// Complexity: O(n² · p + n³) field operations.
func frobeniusMatrix(u *poly.Poly[gf.Int], p int64) (*matrix.Dense[gf.Int], error) {
	n := u.Degree()
	one := u.LeadingCoefficient().One()
	zero := one.Zero()

	xp, err := poly.Monomial(u.Variable(), one, int(p))
	if err != nil {
		return nil, err
	}
	if xp, err = xp.Mod(u); err != nil {
		return nil, err
	}

	r, err := poly.New(u.Variable(), one) // x^0 mod u
	if err != nil {
		return nil, err
	}
	rows := make([][]gf.Int, n)
	for k := 0; k < n; k++ {
		if k > 0 {
			if r, err = r.Mul(xp); err != nil {
				return nil, err
			}
			if r, err = r.Mod(u); err != nil {
				return nil, err
			}
		}
		if rows[n-1-k], err = leftPad(r.Coefficients(), n, zero); err != nil {
			return nil, err
		}
	}

	return matrix.FromRows(rows)
}

// berlekamp factors a monic square-free non-constant u into its distinct
// monic irreducible factors (each with multiplicity one by square-freeness).
//
// The fixed space of Frobenius on GF(p)[x]/(u) — the nullspace of Qᵗ − I —
// has dimension equal to the number of irreducible factors of u. Dimension
// one means u is irreducible. Otherwise each nullspace basis vector, read
// as a witness polynomial g, satisfies g^p ≡ g (mod u), so u splits into
// gcd(g − s, u) over the field scalars s; witnesses are applied in basis
// order until the factor count reaches the nullspace dimension.
// Complexity: O(n³ + r·p·n²) field operations for r factors.
func berlekamp(u *poly.Poly[gf.Int], p int64) ([]*poly.Poly[gf.Int], error) {
	q, err := frobeniusMatrix(u, p)
	if err != nil {
		return nil, err
	}

	// A = Qᵗ − I.
	a := q.Transpose()
	one := u.LeadingCoefficient().One()
	for i := 0; i < a.Rows(); i++ {
		v, err := a.At(i, i)
		if err != nil {
			return nil, err
		}
		if err = a.Set(i, i, v.Sub(one)); err != nil {
			return nil, err
		}
	}

	basis, _, err := linsolve.Nullspace(a, linsolve.DefaultOptions[gf.Int]())
	if err != nil {
		return nil, err
	}
	if len(basis) == 1 {
		return []*poly.Poly[gf.Int]{u}, nil
	}

	shifts, err := gf.Elements(p)
	if err != nil {
		return nil, err
	}
	factors := []*poly.Poly[gf.Int]{u}
	for _, vec := range basis {
		if len(factors) == len(basis) {
			break // fully split: factor count equals nullspace dimension
		}
		next := make([]*poly.Poly[gf.Int], 0, len(basis))
		for _, f := range factors {
			parts, err := splitWithWitness(vec, f, shifts)
			if err != nil {
				return nil, err
			}
			next = append(next, parts...)
		}
		factors = next
	}

	out := make([]*poly.Poly[gf.Int], len(factors))
	for i, f := range factors {
		out[i] = f.Monic()
	}

	return out, nil
}

// splitWithWitness refines one factor f against the witness polynomial read
// from vec (leading-first): it collects every non-constant gcd(g − s, f)
// over the scalar shifts s. For a Frobenius fixed point g the collected
// parts are pairwise coprime and multiply to f. When no shift produces a
// proper divisor the factor is returned unchanged, never an empty split.
func splitWithWitness(vec []gf.Int, f *poly.Poly[gf.Int], shifts []gf.Int) ([]*poly.Poly[gf.Int], error) {
	g, err := poly.New(f.Variable(), vec...)
	if err != nil {
		return nil, err
	}
	var out []*poly.Poly[gf.Int]
	for _, s := range shifts {
		c, err := poly.New(f.Variable(), s)
		if err != nil {
			return nil, err
		}
		shifted, err := g.Sub(c)
		if err != nil {
			return nil, err
		}
		d, err := shifted.GCD(f)
		if err != nil {
			return nil, err
		}
		if !d.IsConstant() {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return []*poly.Poly[gf.Int]{f}, nil
	}

	return out, nil
}

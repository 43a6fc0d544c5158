// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/poly"
)

// Entry pairs one distinct monic factor with its multiplicity (> 0).
type Entry struct {
	Factor       *poly.Poly[gf.Int]
	Multiplicity int
}

// FactorList is an immutable multiset of polynomial factors. Factors are
// keyed by ring equality (Poly.Equal), never by pointer or structural
// identity, so two independently computed copies of the same factor merge
// into one entry. Add and Merge return fresh lists; no caller ever observes
// a mutation through a shared reference.
type FactorList struct {
	entries []Entry
}

// NewFactorList returns an empty factor list.
func NewFactorList() *FactorList { return &FactorList{} }

// Len returns the number of distinct factors.
func (l *FactorList) Len() int { return len(l.entries) }

// Multiplicity returns the recorded multiplicity of f, or 0 when f is not
// present. Lookup is by ring equality.
func (l *FactorList) Multiplicity(f *poly.Poly[gf.Int]) int {
	for _, e := range l.entries {
		if e.Factor.Equal(f) {
			return e.Multiplicity
		}
	}

	return 0
}

// Add returns a new list with f's multiplicity raised by m.
// Stage 1 (Validate): m must be positive (ErrBadMultiplicity otherwise).
// Stage 2 (Merge): an existing ring-equal entry absorbs m; otherwise a new
// entry is appended.
// Complexity: O(Len · deg f) comparisons.
func (l *FactorList) Add(f *poly.Poly[gf.Int], m int) (*FactorList, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMultiplicity, m)
	}
	out := &FactorList{entries: append([]Entry(nil), l.entries...)}
	for i, e := range out.entries {
		if e.Factor.Equal(f) {
			out.entries[i].Multiplicity += m

			return out, nil
		}
	}
	out.entries = append(out.entries, Entry{Factor: f, Multiplicity: m})

	return out, nil
}

// Merge returns a new list combining both operands; multiplicities of
// ring-equal factors sum. Neither operand is modified.
// Complexity: O(Len(l) · Len(o)) comparisons.
func (l *FactorList) Merge(o *FactorList) *FactorList {
	out := &FactorList{entries: append([]Entry(nil), l.entries...)}
	var err error
	for _, e := range o.entries {
		// Multiplicities in a list are positive by construction, so Add
		// cannot fail here.
		if out, err = out.Add(e.Factor, e.Multiplicity); err != nil {
			panic(err)
		}
	}

	return out
}

// Entries returns the factors in a deterministic order: ascending degree,
// ties broken by the printed form. The returned slice is a copy.
func (l *FactorList) Entries() []Entry {
	out := append([]Entry(nil), l.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Factor.Degree(), out[j].Factor.Degree()
		if di != dj {
			return di < dj
		}

		return out[i].Factor.String() < out[j].Factor.String()
	})

	return out
}

// String renders the list as "(f1)^m1 (f2)^m2 ..." in Entries order.
func (l *FactorList) String() string {
	if len(l.entries) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(l.entries))
	for _, e := range l.Entries() {
		if e.Multiplicity == 1 {
			parts = append(parts, fmt.Sprintf("(%s)", e.Factor))
			continue
		}
		parts = append(parts, fmt.Sprintf("(%s)^%d", e.Factor, e.Multiplicity))
	}

	return strings.Join(parts, " ")
}

// MultiplyFactors expands a factor list back into a single polynomial: the
// product of every factor raised to its multiplicity. It is the inverse of
// Factorise up to monic normalization and serves as the round-trip oracle.
// An empty list carries no coefficient domain to build 1 in, hence
// ErrEmptyList.
// Complexity: O(deg² ) field operations for the final product.
func MultiplyFactors(l *FactorList) (*poly.Poly[gf.Int], error) {
	if l.Len() == 0 {
		return nil, ErrEmptyList
	}
	entries := l.Entries()
	one := entries[0].Factor.LeadingCoefficient().One()
	acc, err := poly.New(entries[0].Factor.Variable(), one)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		for k := 0; k < e.Multiplicity; k++ {
			if acc, err = acc.Mul(e.Factor); err != nil {
				return nil, err
			}
		}
	}

	return acc, nil
}

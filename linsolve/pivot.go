// SPDX-License-Identifier: MIT

package linsolve

import "github.com/katalvlaran/lvlalg/ring"

// PivotStrategy chooses the pivot row for one column. It receives the whole
// column and the first still-unprocessed row index, and returns the chosen
// row at or below from, or ok=false when no usable pivot exists (the column
// then becomes a free column). Strategies must never pick a zero entry.
//
// Strategy choice affects numerical/algebraic stability only, never
// correctness: any zero-skipping strategy yields the same rank and the same
// pivot/free column partition.
type PivotStrategy[E ring.Element[E]] func(col []E, from int) (row int, ok bool)

// FirstNonZero returns the default strategy for generic rings without a
// natural ordering: the first nonzero entry at or below the current row.
func FirstNonZero[E ring.Element[E]]() PivotStrategy[E] {
	return func(col []E, from int) (int, bool) {
		for i := from; i < len(col); i++ { // fixed ascending scan
			if !col[i].IsZero() {
				return i, true
			}
		}

		return 0, false
	}
}

// MaxAbs returns the floating-point strategy: the entry of largest absolute
// value, the classic partial-pivoting rule.
func MaxAbs[E interface {
	ring.Element[E]
	ring.Absolute
}]() PivotStrategy[E] {
	return func(col []E, from int) (int, bool) {
		best, bestAbs, found := 0, 0.0, false
		for i := from; i < len(col); i++ {
			if col[i].IsZero() {
				continue
			}
			if a := col[i].Abs(); !found || a > bestAbs {
				best, bestAbs, found = i, a, true
			}
		}

		return best, found
	}
}

// MaxHeight returns the exact-rational strategy: the entry of largest
// height max(|num|,|den|), which bounds coefficient growth during exact
// elimination.
func MaxHeight[E interface {
	ring.Element[E]
	ring.Heighted
}]() PivotStrategy[E] {
	return func(col []E, from int) (int, bool) {
		best, found := 0, false
		for i := from; i < len(col); i++ {
			if col[i].IsZero() {
				continue
			}
			if !found || col[i].Height().Cmp(col[best].Height()) > 0 {
				best, found = i, true
			}
		}

		return best, found
	}
}

// MinOrder returns the valuation-ring strategy: the nonzero entry of
// minimal order (valuation). Over p-adic style rings the smallest valuation
// is the safest pivot, since dividing by it introduces no precision loss.
func MinOrder[E interface {
	ring.Element[E]
	ring.Valued
}]() PivotStrategy[E] {
	return func(col []E, from int) (int, bool) {
		best, found := 0, false
		for i := from; i < len(col); i++ {
			if col[i].IsZero() {
				continue
			}
			if !found || col[i].Order() < col[best].Order() {
				best, found = i, true
			}
		}

		return best, found
	}
}

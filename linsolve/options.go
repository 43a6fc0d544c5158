// SPDX-License-Identifier: MIT

package linsolve

import "github.com/katalvlaran/lvlalg/ring"

// Options configures one elimination run. Configuration is an explicit
// value threaded into each call — there is no package-level state.
//
//   - NormalizePivot: scale each pivot to the domain one (requires division;
//     forced on by Nullspace). When declined, the pivot row is scaled by −1
//     instead — the committed sign convention documented in the package doc.
//   - Pivot: the pivot-selection strategy; nil means FirstNonZero.
type Options[E ring.Element[E]] struct {
	NormalizePivot bool
	Pivot          PivotStrategy[E]
}

// DefaultOptions returns the defaults: normalized pivots, first-nonzero
// selection. Suitable for any field domain.
func DefaultOptions[E ring.Element[E]]() Options[E] {
	return Options[E]{
		NormalizePivot: true,
		Pivot:          FirstNonZero[E](),
	}
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Contract: a.Cols == b.Rows (ErrDimensionMismatch otherwise).
// Determinism: fixed i→k→j loop order with row-major strides; zero A[i,k]
// entries are skipped.
// Complexity: O(r·n·c), Space O(r·c).
func Mul[E ring.Element[E]](a, b *Dense[E]) (*Dense[E], error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %w: %dx%d × %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}
	out, err := NewDense(a.r, b.c, a.data[0])
	if err != nil {
		return nil, err
	}
	var i, j, k int
	for i = 0; i < a.r; i++ {
		baseA := i * a.c
		baseR := i * b.c
		for k = 0; k < a.c; k++ {
			av := a.data[baseA+k]
			if av.IsZero() {
				continue // skip zero for performance
			}
			baseB := k * b.c
			for j = 0; j < b.c; j++ {
				out.data[baseR+j] = out.data[baseR+j].Add(av.Mul(b.data[baseB+j]))
			}
		}
	}

	return out, nil
}

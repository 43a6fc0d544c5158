// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// RowOp is one invertible elementary row operation. Operations are recorded
// by Decompose in application order; applied in that order to the original
// matrix (left-multiplication, composed as applied) they reproduce the
// triangular form. Each operation computes its own inverse from its
// parameters alone — never from a matrix.
type RowOp[E ring.Element[E]] interface {
	// Apply performs the operation on m in place. The caller owns m.
	Apply(m *matrix.Dense[E]) error
	// Inverse returns the operation undoing the receiver.
	Inverse() RowOp[E]

	fmt.Stringer
}

// SwapOp transposes rows I and J.
type SwapOp[E ring.Element[E]] struct {
	I, J int
}

// Apply swaps rows I and J of m in place.
func (op SwapOp[E]) Apply(m *matrix.Dense[E]) error {
	for j := 0; j < m.Cols(); j++ {
		a, err := m.At(op.I, j)
		if err != nil {
			return err
		}
		b, err := m.At(op.J, j)
		if err != nil {
			return err
		}
		if err = m.Set(op.I, j, b); err != nil {
			return err
		}
		if err = m.Set(op.J, j, a); err != nil {
			return err
		}
	}

	return nil
}

// Inverse of a transposition is itself.
func (op SwapOp[E]) Inverse() RowOp[E] { return op }

func (op SwapOp[E]) String() string { return fmt.Sprintf("swap(%d,%d)", op.I, op.J) }

// ScaleOp multiplies row Row by the nonzero factor By.
type ScaleOp[E ring.Element[E]] struct {
	Row int
	By  E
}

// Apply scales row Row of m in place.
func (op ScaleOp[E]) Apply(m *matrix.Dense[E]) error {
	for j := 0; j < m.Cols(); j++ {
		v, err := m.At(op.Row, j)
		if err != nil {
			return err
		}
		if err = m.Set(op.Row, j, v.Mul(op.By)); err != nil {
			return err
		}
	}

	return nil
}

// Inverse scales by the reciprocal factor.
func (op ScaleOp[E]) Inverse() RowOp[E] {
	return ScaleOp[E]{Row: op.Row, By: op.By.One().Div(op.By)}
}

func (op ScaleOp[E]) String() string { return fmt.Sprintf("scale(%d,×%v)", op.Row, op.By) }

// AddMulOp adds Factor × row Src to row Dst (Src ≠ Dst).
type AddMulOp[E ring.Element[E]] struct {
	Dst, Src int
	Factor   E
}

// Apply adds Factor times row Src into row Dst of m in place.
// Zero entries of the source row are skipped.
func (op AddMulOp[E]) Apply(m *matrix.Dense[E]) error {
	for j := 0; j < m.Cols(); j++ {
		s, err := m.At(op.Src, j)
		if err != nil {
			return err
		}
		if s.IsZero() {
			continue
		}
		d, err := m.At(op.Dst, j)
		if err != nil {
			return err
		}
		if err = m.Set(op.Dst, j, d.Add(op.Factor.Mul(s))); err != nil {
			return err
		}
	}

	return nil
}

// Inverse subtracts what Apply added.
func (op AddMulOp[E]) Inverse() RowOp[E] {
	return AddMulOp[E]{Dst: op.Dst, Src: op.Src, Factor: op.Factor.Neg()}
}

func (op AddMulOp[E]) String() string {
	return fmt.Sprintf("addmul(r%d += %v·r%d)", op.Dst, op.Factor, op.Src)
}

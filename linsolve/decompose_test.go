package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/linsolve"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// gfMat builds a GF(p) matrix from integer rows.
func gfMat(t require.TestingT, p int64, rows [][]int64) *matrix.Dense[gf.Int] {
	out := make([][]gf.Int, len(rows))
	for i, row := range rows {
		out[i] = make([]gf.Int, len(row))
		for j, v := range row {
			out[i][j] = gf.MustNew(v, p)
		}
	}
	m, err := matrix.FromRows(out)
	require.NoError(t, err)

	return m
}

// realMat builds a Real matrix from float64 rows.
func realMat(t require.TestingT, rows [][]float64) *matrix.Dense[ring.Real] {
	out := make([][]ring.Real, len(rows))
	for i, row := range rows {
		out[i] = make([]ring.Real, len(row))
		for j, v := range row {
			out[i][j] = ring.Real(v)
		}
	}
	m, err := matrix.FromRows(out)
	require.NoError(t, err)

	return m
}

// requireMatEqual asserts element-wise ring equality of two matrices.
func requireMatEqual[E ring.Element[E]](t require.TestingT, want, got *matrix.Dense[E]) {
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.True(t, w.Equal(g), "mismatch at (%d,%d): want %v got %v", i, j, w, g)
		}
	}
}

// DecomposeSuite exercises the elimination engine under various scenarios.
type DecomposeSuite struct {
	suite.Suite
}

// TestFullRankSquare verifies rank, column partition and the staircase on
// an invertible GF(5) matrix.
func (s *DecomposeSuite) TestFullRankSquare() {
	a := gfMat(s.T(), 5, [][]int64{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 1},
	})
	dec, err := linsolve.Decompose(a, linsolve.DefaultOptions[gf.Int]())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, dec.Rank)
	require.Equal(s.T(), []int{0, 1, 2}, dec.StepCols)
	require.Empty(s.T(), dec.FreeCols)

	// All pivots normalized to one, everything below them zero.
	for i := 0; i < 3; i++ {
		piv, err := dec.U.At(i, i)
		require.NoError(s.T(), err)
		require.True(s.T(), piv.IsOne())
		for k := i + 1; k < 3; k++ {
			below, err := dec.U.At(k, i)
			require.NoError(s.T(), err)
			require.True(s.T(), below.IsZero())
		}
	}
}

// TestOpsReplayReproducesU verifies the core recording invariant: applying
// the recorded operations in order to the original matrix yields U.
func (s *DecomposeSuite) TestOpsReplayReproducesU() {
	a := gfMat(s.T(), 7, [][]int64{
		{0, 2, 1},
		{3, 1, 4},
		{6, 2, 1},
	})
	dec, err := linsolve.Decompose(a, linsolve.DefaultOptions[gf.Int]())
	require.NoError(s.T(), err)

	replay := a.Clone()
	for _, op := range dec.Ops {
		require.NoError(s.T(), op.Apply(replay))
	}
	requireMatEqual(s.T(), dec.U, replay)
}

// TestLUEqualsPA verifies L·U = P·A, including a case that forces a swap.
func (s *DecomposeSuite) TestLUEqualsPA() {
	a := gfMat(s.T(), 7, [][]int64{
		{0, 2, 1},
		{3, 1, 4},
		{6, 2, 1},
	})
	dec, err := linsolve.Decompose(a, linsolve.DefaultOptions[gf.Int]())
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), dec.Swaps, "leading zero must force a transposition")

	l, p, err := dec.LP()
	require.NoError(s.T(), err)
	lu, err := matrix.Mul(l, dec.U)
	require.NoError(s.T(), err)
	pa, err := matrix.Mul(p, a)
	require.NoError(s.T(), err)
	requireMatEqual(s.T(), pa, lu)
}

// TestLInverseTimesAIsU verifies M·A = U for the composed operation matrix.
func (s *DecomposeSuite) TestLInverseTimesAIsU() {
	a := realMat(s.T(), [][]float64{
		{2, 4, -2},
		{4, 9, -3},
		{-2, -3, 7},
	})
	dec, err := linsolve.Decompose(a, linsolve.DefaultOptions[ring.Real]())
	require.NoError(s.T(), err)

	m, err := dec.LInverse()
	require.NoError(s.T(), err)
	ma, err := matrix.Mul(m, a)
	require.NoError(s.T(), err)
	requireMatEqual(s.T(), dec.U, ma)
}

// TestRankDeficient verifies free-column bookkeeping on a singular matrix.
func (s *DecomposeSuite) TestRankDeficient() {
	// Row 2 = row 0 + row 1 over GF(5); column 2 = col 0 + col 1.
	a := gfMat(s.T(), 5, [][]int64{
		{1, 2, 3},
		{2, 0, 2},
		{3, 2, 0},
	})
	dec, err := linsolve.Decompose(a, linsolve.DefaultOptions[gf.Int]())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, dec.Rank)
	require.Equal(s.T(), []int{0, 1}, dec.StepCols)
	require.Equal(s.T(), []int{2}, dec.FreeCols)
	require.Len(s.T(), dec.StepCols, dec.Rank)
}

// TestZeroColumn verifies a zero column lands in FreeCols without error.
func (s *DecomposeSuite) TestZeroColumn() {
	a := gfMat(s.T(), 5, [][]int64{
		{1, 0, 2},
		{3, 0, 1},
	})
	dec, err := linsolve.Decompose(a, linsolve.DefaultOptions[gf.Int]())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1}, dec.FreeCols)
	require.Equal(s.T(), []int{0, 2}, dec.StepCols)
	require.Equal(s.T(), 2, dec.Rank)
}

// TestPivotNegationConvention verifies the committed −1 scale when
// normalization is declined: the zero pattern of U matches the normalized
// run, only signs differ, and the replay invariant still holds.
func (s *DecomposeSuite) TestPivotNegationConvention() {
	a := realMat(s.T(), [][]float64{
		{2, 1},
		{4, 5},
	})
	opts := linsolve.DefaultOptions[ring.Real]()
	opts.NormalizePivot = false
	dec, err := linsolve.Decompose(a, opts)
	require.NoError(s.T(), err)

	// Pivot row scaled by −1: U[0,0] = −2, not 1.
	u00, err := dec.U.At(0, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ring.Real(-2), u00)
	require.Equal(s.T(), 2, dec.Rank)

	replay := a.Clone()
	for _, op := range dec.Ops {
		require.NoError(s.T(), op.Apply(replay))
	}
	requireMatEqual(s.T(), dec.U, replay)
}

// TestWideAndTall verifies rectangular shapes.
func (s *DecomposeSuite) TestWideAndTall() {
	wide := gfMat(s.T(), 5, [][]int64{
		{1, 2, 3, 4},
		{0, 1, 1, 1},
	})
	dec, err := linsolve.Decompose(wide, linsolve.DefaultOptions[gf.Int]())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, dec.Rank)
	require.Len(s.T(), dec.FreeCols, 2)

	tall := gfMat(s.T(), 5, [][]int64{
		{1, 1},
		{2, 2},
		{3, 3},
	})
	dec, err = linsolve.Decompose(tall, linsolve.DefaultOptions[gf.Int]())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, dec.Rank)
	require.Equal(s.T(), []int{1}, dec.FreeCols)
}

// TestNilMatrix verifies the nil guard.
func (s *DecomposeSuite) TestNilMatrix() {
	_, err := linsolve.Decompose[gf.Int](nil, linsolve.DefaultOptions[gf.Int]())
	require.ErrorIs(s.T(), err, linsolve.ErrNilMatrix)
}

// TestBadStrategy verifies the guard against misbehaving strategies.
func (s *DecomposeSuite) TestBadStrategy() {
	a := gfMat(s.T(), 5, [][]int64{{1, 2}, {3, 4}})
	opts := linsolve.DefaultOptions[gf.Int]()
	opts.Pivot = func(col []gf.Int, from int) (int, bool) { return from - 1, true }
	_, err := linsolve.Decompose(a, opts)
	require.ErrorIs(s.T(), err, linsolve.ErrBadPivotRow)
}

func TestDecomposeSuite(t *testing.T) {
	suite.Run(t, new(DecomposeSuite))
}

// TestDet verifies the determinant byproduct on known cases.
func TestDet(t *testing.T) {
	// det = 2·5 − 1·4 = 6.
	a := realMat(t, [][]float64{
		{2, 1},
		{4, 5},
	})
	dec, err := linsolve.Decompose(a, linsolve.DefaultOptions[ring.Real]())
	require.NoError(t, err)
	det, err := dec.Det()
	require.NoError(t, err)
	require.Equal(t, ring.Real(6), det)

	// Same determinant under the declined-normalization convention.
	opts := linsolve.DefaultOptions[ring.Real]()
	opts.NormalizePivot = false
	dec, err = linsolve.Decompose(a, opts)
	require.NoError(t, err)
	det, err = dec.Det()
	require.NoError(t, err)
	require.Equal(t, ring.Real(6), det)

	// Singular square matrix: determinant zero.
	sing := realMat(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	dec, err = linsolve.Decompose(sing, linsolve.DefaultOptions[ring.Real]())
	require.NoError(t, err)
	det, err = dec.Det()
	require.NoError(t, err)
	require.True(t, det.IsZero())

	// Non-square input: ErrNotSquare.
	rect := realMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	dec, err = linsolve.Decompose(rect, linsolve.DefaultOptions[ring.Real]())
	require.NoError(t, err)
	_, err = dec.Det()
	require.ErrorIs(t, err, linsolve.ErrNotSquare)
}

package linsolve_test

import (
	"math/bits"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/linsolve"
	"github.com/katalvlaran/lvlalg/ring"
)

// dyadic is a minimal valuation-ring element for exercising MinOrder: an
// integer whose order is its 2-adic valuation. Arithmetic is plain integer
// arithmetic; Div is only called by code paths this test never reaches.
type dyadic int64

func (d dyadic) Add(x dyadic) dyadic { return d + x }
func (d dyadic) Sub(x dyadic) dyadic { return d - x }
func (d dyadic) Mul(x dyadic) dyadic { return d * x }
func (d dyadic) Div(x dyadic) dyadic {
	if x == 0 {
		panic("dyadic: division by zero")
	}

	return d / x
}
func (d dyadic) Neg() dyadic          { return -d }
func (d dyadic) Equal(x dyadic) bool  { return d == x }
func (d dyadic) IsZero() bool         { return d == 0 }
func (d dyadic) IsOne() bool          { return d == 1 }
func (dyadic) Zero() dyadic           { return 0 }
func (dyadic) One() dyadic            { return 1 }
func (d dyadic) GCD(x dyadic) dyadic {
	if d == 0 && x == 0 {
		return 0
	}

	return 1
}
func (d dyadic) String() string { return strconv.FormatInt(int64(d), 10) }

// Order returns the 2-adic valuation: the number of factors of two.
func (d dyadic) Order() int {
	if d == 0 {
		return 1 << 30 // conventionally huge; strategies skip zeros anyway
	}
	v := uint64(d)
	if d < 0 {
		v = uint64(-d)
	}

	return bits.TrailingZeros64(v)
}

// TestFirstNonZero verifies the default scan, including the from offset.
func TestFirstNonZero(t *testing.T) {
	col := []gf.Int{
		gf.MustNew(0, 5), gf.MustNew(3, 5), gf.MustNew(0, 5), gf.MustNew(2, 5),
	}
	strat := linsolve.FirstNonZero[gf.Int]()

	row, ok := strat(col, 0)
	require.True(t, ok)
	require.Equal(t, 1, row)

	row, ok = strat(col, 2)
	require.True(t, ok)
	require.Equal(t, 3, row)

	_, ok = strat(col, 4)
	require.False(t, ok)

	zeros := []gf.Int{gf.MustNew(0, 5), gf.MustNew(0, 5)}
	_, ok = strat(zeros, 0)
	require.False(t, ok)
}

// TestMaxAbs verifies largest-magnitude selection for floats.
func TestMaxAbs(t *testing.T) {
	col := []ring.Real{0.5, -4, 2, 0}
	strat := linsolve.MaxAbs[ring.Real]()

	row, ok := strat(col, 0)
	require.True(t, ok)
	require.Equal(t, 1, row) // |−4| is the largest

	row, ok = strat(col, 2)
	require.True(t, ok)
	require.Equal(t, 2, row)
}

// TestMaxHeight verifies largest-height selection for exact rationals.
func TestMaxHeight(t *testing.T) {
	col := []ring.Rat{
		ring.NewRat(1, 2),  // height 2
		ring.NewRat(3, 7),  // height 7
		ring.NewRat(-5, 1), // height 5
	}
	strat := linsolve.MaxHeight[ring.Rat]()

	row, ok := strat(col, 0)
	require.True(t, ok)
	require.Equal(t, 1, row)

	row, ok = strat(col, 2)
	require.True(t, ok)
	require.Equal(t, 2, row)

	_, ok = strat([]ring.Rat{{}, {}}, 0)
	require.False(t, ok)
}

// TestMinOrder verifies smallest-valuation selection on a 2-adic stand-in.
func TestMinOrder(t *testing.T) {
	col := []dyadic{8, 0, 6, 12} // orders 3, (zero), 1, 2
	strat := linsolve.MinOrder[dyadic]()

	row, ok := strat(col, 0)
	require.True(t, ok)
	require.Equal(t, 2, row) // order(6) = 1 is minimal

	row, ok = strat(col, 3)
	require.True(t, ok)
	require.Equal(t, 3, row)

	_, ok = strat([]dyadic{0, 0}, 0)
	require.False(t, ok)
}

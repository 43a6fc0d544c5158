package linsolve_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/linsolve"
	"github.com/katalvlaran/lvlalg/matrix"
)

// benchMatrix builds a deterministic n×n GF(p) matrix with a small linear
// congruential fill (no randomness: stable benchmarks).
func benchMatrix(n int, p int64) *matrix.Dense[gf.Int] {
	rows := make([][]gf.Int, n)
	seed := int64(1)
	for i := range rows {
		rows[i] = make([]gf.Int, n)
		for j := range rows[i] {
			seed = (seed*31 + 17) % 97
			rows[i][j] = gf.MustNew(seed, p)
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

func BenchmarkDecomposeGF(b *testing.B) {
	m := benchMatrix(32, 101)
	opts := linsolve.DefaultOptions[gf.Int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linsolve.Decompose(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNullspaceGF(b *testing.B) {
	m := benchMatrix(32, 101)
	opts := linsolve.DefaultOptions[gf.Int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := linsolve.Nullspace(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

package linsolve_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/linsolve"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Compute the nullspace of a rank-one matrix over GF(5): the single
// equation x + 2y = 0 leaves one free column, so the basis has one vector
// carrying 1 at that column.
func ExampleNullspace() {
	c := func(v int64) gf.Int { return gf.MustNew(v, 5) }
	a, err := matrix.FromRows([][]gf.Int{
		{c(1), c(2)},
		{c(2), c(4)},
	})
	if err != nil {
		fmt.Println("matrix:", err)
		return
	}

	basis, rank, err := linsolve.Nullspace(a, linsolve.DefaultOptions[gf.Int]())
	if err != nil {
		fmt.Println("nullspace:", err)
		return
	}
	fmt.Println("rank:", rank)
	for _, v := range basis {
		fmt.Println(v)
	}
	// Output:
	// rank: 1
	// [3 1]
}

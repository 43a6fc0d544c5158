package poly_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/poly"
)

// Compute the monic gcd of x²−1 and (x+1)² over GF(5): the shared root −1
// yields x+1.
func ExamplePoly_GCD() {
	c := func(v int64) gf.Int { return gf.MustNew(v, 5) }
	a := poly.MustNew("x", c(1), c(0), c(4)) // x² − 1
	b := poly.MustNew("x", c(1), c(2), c(1)) // (x+1)²

	g, err := a.GCD(b)
	if err != nil {
		fmt.Println("gcd:", err)
		return
	}
	fmt.Println(g)
	// Output:
	// x + 1
}

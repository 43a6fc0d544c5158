package factor_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/factor"
	"github.com/katalvlaran/lvlalg/gf"
	"github.com/katalvlaran/lvlalg/poly"
)

// Factor x⁵−x over GF(5): by Fermat's little theorem every field element is
// a root, so the result is the product of all five monic linear factors.
func ExampleFactorise() {
	c := func(v int64) gf.Int { return gf.MustNew(v, 5) }
	f := poly.MustNew("x", c(1), c(0), c(0), c(0), c(4), c(0))

	list, err := factor.Factorise(f)
	if err != nil {
		fmt.Println("factorise:", err)
		return
	}
	fmt.Println(list)

	back, err := factor.MultiplyFactors(list)
	if err != nil {
		fmt.Println("multiply:", err)
		return
	}
	fmt.Println("product:", back)
	// Output:
	// (x) (x + 1) (x + 2) (x + 3) (x + 4)
	// product: x^5 + 4x
}

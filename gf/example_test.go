package gf_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/gf"
)

// Invert 3 in GF(7) and verify the product reduces to one.
func ExampleInt_Inv() {
	a := gf.MustNew(3, 7)
	inv := a.Inv()
	fmt.Println(inv)
	fmt.Println(a.Mul(inv))
	// Output:
	// 5
	// 1
}

package resultant_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/resultant"
	"github.com/katalvlaran/algebraics/roots"
)

// ExampleSum builds the polynomial whose roots are ±√2 ± √3.
func ExampleSum() {
	r, err := resultant.Sum(poly.New(1, 0, -2), poly.New(1, 0, -3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output: x^4 - 10x^2 + 1
}

// ExampleCombineProduct keeps the factor of the product resultant that
// carries √2·√3.
func ExampleCombineProduct() {
	b := roots.Ball{Center: math.Sqrt(6), Radius: 1e-6}
	r, err := resultant.CombineProduct(poly.New(1, 0, -2), poly.New(1, 0, -3), b, resultant.SquareFreeFactorer{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output: x^2 - 6
}

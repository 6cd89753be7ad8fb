package subsetsum_test

import (
	"fmt"

	"github.com/katalvlaran/algebraics/subsetsum"
)

func ExampleCertificate() {
	p := subsetsum.Problem{Items: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512}, Target: 100.1}
	res, err := subsetsum.Certificate(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	sum := 0.0
	for i, in := range res.Include {
		if in {
			sum += p.Items[i]
		}
	}
	fmt.Printf("sum %.0f, error %.1f\n", sum, res.Error)
	// Output: sum 100, error 0.1
}

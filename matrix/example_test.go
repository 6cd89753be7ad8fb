package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/algebraics/matrix"
)

// ExampleDet computes a Sylvester-style determinant through both strategies.
func ExampleDet() {
	// Sylvester matrix of x² − 2 and x − 1
	m, _ := matrix.FromInts([][]int64{
		{1, 0, -2},
		{1, -1, 0},
		{0, 1, -1},
	})
	cofactor, _ := matrix.Det(m)
	lu, _ := matrix.Det(m, matrix.WithCofactorCutoff(0))
	fmt.Println(cofactor.Text('f', 0), lu.Text('f', 0))

	// Output:
	// -1 -1
}

// ExampleInverse inverts a matrix that requires a row exchange.
func ExampleInverse() {
	m, _ := matrix.FromInts([][]int64{{0, 2}, {4, 0}})
	inv, _ := matrix.Inverse(m)
	fmt.Print(inv)

	// Output:
	// [0, 0.25]
	// [0.5, 0]
}

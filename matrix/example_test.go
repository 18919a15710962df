// Package matrix_test: runnable examples for the package surface.
package matrix_test

import (
	"fmt"

	"github.com/pbinns/matcache/matrix"
)

// ExampleInverse inverts a diagonal matrix; the entries are powers of two,
// so the printed result is exact.
func ExampleInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{0, 4},
	})

	inv, _ := matrix.Inverse(m)
	fmt.Print(inv)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
}

// ExampleEqual shows that equality is exact: the tiniest nudge breaks it.
func ExampleEqual() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b := a.Clone()

	fmt.Println(matrix.Equal(a, b))
	_ = b.Set(0, 0, 1.000000001)
	fmt.Println(matrix.Equal(a, b))
	// Output:
	// true
	// false
}

// ExampleMul multiplies by the identity, which leaves the matrix unchanged.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	id, _ := matrix.NewIdentity(2)

	p, _ := matrix.Mul(a, id)
	fmt.Print(p)
	// Output:
	// [1, 2]
	// [3, 4]
}

package invcache_test

import (
	"fmt"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/pbinns/matcache/invcache"
	"github.com/pbinns/matcache/matrix"
)

// quietLogger suppresses the hit and miss signals so examples print only
// their own output.
func quietLogger() *log.Logger {
	return &log.Logger{Handler: discard.New(), Level: log.InfoLevel}
}

func ExampleComputeInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})

	cell := invcache.New(m)
	inv, _ := invcache.ComputeInverse(cell, invcache.WithLogger(quietLogger()))
	fmt.Print(inv)

	// Output:
	// [0.5, 0]
	// [0, 0.5]
}

func ExampleComputeInverse_memoized() {
	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})

	inversions := 0
	counted := invcache.InverterFunc(func(x matrix.Matrix) (matrix.Matrix, error) {
		inversions++
		return matrix.Inverse(x)
	})

	cell := invcache.New(m)
	for i := 0; i < 3; i++ {
		if _, err := invcache.ComputeInverse(cell,
			invcache.WithInverter(counted),
			invcache.WithLogger(quietLogger()),
		); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println("inversions:", inversions)

	// Output:
	// inversions: 1
}

func ExampleCachedMatrix_SetCurrent() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})

	cell := invcache.New(m)
	if _, err := invcache.ComputeInverse(cell, invcache.WithLogger(quietLogger())); err != nil {
		fmt.Println(err)
		return
	}

	// Replacing the value clears the cached inverse eagerly.
	next, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 4}})
	cell.SetCurrent(next)

	inv, _ := invcache.ComputeInverse(cell, invcache.WithLogger(quietLogger()))
	fmt.Print(inv)

	// Output:
	// [1, 0]
	// [0, 0.25]
}

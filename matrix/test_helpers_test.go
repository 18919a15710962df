// Package matrix_test contains shared fixtures and helpers for matrix tests.
package matrix_test

import (
	"testing"

	"github.com/pbinns/matcache/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels under test onto their generic (non-*Dense) paths.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from a row literal or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// CompareExact asserts strict equality between a 2D literal and a matrix,
// reporting the first mismatching coordinate. Use only for values that are
// exactly representable; for computed floats prefer matrix.AllClose.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("Rows = %d; want %d", m.Rows(), len(want))
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if v != want[i][j] {
				t.Fatalf("m[%d,%d] = %v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// Package invcache_test: shared fixtures for the cache tests.
package invcache_test

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/pbinns/matcache/invcache"
	"github.com/pbinns/matcache/matrix"
)

// MustFromRows builds a Dense matrix from rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// ExpectPanic runs fn and fails the test unless it panics with want.
func ExpectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("expected panic %q, got %v", want, r)
		}
	}()
	fn()
}

// countingInverter counts Invert invocations and delegates to the real
// solver, so tests can prove how often recomputation happened.
type countingInverter struct {
	calls int
}

func (ci *countingInverter) Invert(m matrix.Matrix) (matrix.Matrix, error) {
	ci.calls++
	return matrix.Inverse(m)
}

var _ invcache.Inverter = (*countingInverter)(nil)

// newMemoryLogger returns an apex logger backed by the memory handler, so
// tests can assert on the emitted entries.
func newMemoryLogger() (*log.Logger, *memory.Handler) {
	h := memory.New()
	return &log.Logger{Handler: h, Level: log.InfoLevel}, h
}

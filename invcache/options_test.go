package invcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbinns/matcache/invcache"
	"github.com/pbinns/matcache/matrix"
)

// TestWithInverter_PanicsOnNil: a nil inverter is programmer error and
// must fail loudly at construction, not at call time.
func TestWithInverter_PanicsOnNil(t *testing.T) {
	ExpectPanic(t, "invcache: WithInverter: inverter must be non-nil", func() {
		invcache.WithInverter(nil)
	})
}

// TestWithLogger_PanicsOnNil mirrors the inverter check for the logger.
func TestWithLogger_PanicsOnNil(t *testing.T) {
	ExpectPanic(t, "invcache: WithLogger: logger must be non-nil", func() {
		invcache.WithLogger(nil)
	})
}

// TestOptions_LastWriterWins confirms setters apply in order, so the last
// WithInverter is the one ComputeInverse uses.
func TestOptions_LastWriterWins(t *testing.T) {
	ignored := &countingInverter{}
	used := &countingInverter{}
	cell := invcache.New(MustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	_, err := invcache.ComputeInverse(cell,
		invcache.WithInverter(ignored),
		invcache.WithInverter(used),
	)

	assert.NoError(t, err)
	assert.Equal(t, 0, ignored.calls, "overridden inverter must not run")
	assert.Equal(t, 1, used.calls, "last inverter must win")
}

// TestOptions_DefaultInverter: with no options the real solver runs, so a
// singular value surfaces matrix.ErrSingular.
func TestOptions_DefaultInverter(t *testing.T) {
	cell := invcache.New(MustFromRows(t, [][]float64{{3, 6}, {1, 2}}))

	got, err := invcache.ComputeInverse(cell)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

package invcache

import (
	"github.com/pbinns/matcache/matrix"
)

// CachedMatrix couples one matrix value with the memoization state for its
// inverse:
//
//   - current:  the value presently of interest.
//   - snapshot: the value as of the last successful inversion, or absent.
//   - inverse:  the inverse computed for snapshot, or absent.
//
// A nil field means absent. CachedMatrix performs no shape or content
// validation; a malformed value surfaces later, through the inversion
// routine. One goroutine owns a CachedMatrix at a time.
type CachedMatrix struct {
	current  matrix.Matrix
	snapshot matrix.Matrix
	inverse  matrix.Matrix
}

// New wraps initial in a CachedMatrix with no snapshot and no cached
// inverse. The value is stored as given, nil included.
func New(initial matrix.Matrix) *CachedMatrix {
	return &CachedMatrix{current: initial}
}

// Current returns the matrix value presently of interest.
func (c *CachedMatrix) Current() matrix.Matrix { return c.current }

// SetCurrent replaces the current value with next. The value being
// replaced becomes the snapshot and the cached inverse is cleared, so the
// next ComputeInverse call recomputes even when next equals the replaced
// value.
func (c *CachedMatrix) SetCurrent(next matrix.Matrix) {
	c.snapshot = c.current
	c.current = next
	c.inverse = nil
}

// Snapshot returns the value recorded at the last successful inversion.
// The second result is false when no snapshot is present.
func (c *CachedMatrix) Snapshot() (matrix.Matrix, bool) {
	return c.snapshot, c.snapshot != nil
}

// SetSnapshot overwrites the snapshot directly. ComputeInverse maintains
// the snapshot on its own; the mutator stays exported for callers that
// manage cache state by hand, such as test doubles or state restoration.
func (c *CachedMatrix) SetSnapshot(m matrix.Matrix) { c.snapshot = m }

// CachedInverse returns the memoized inverse. The second result is false
// when no inverse is cached.
func (c *CachedMatrix) CachedInverse() (matrix.Matrix, bool) {
	return c.inverse, c.inverse != nil
}

// SetCachedInverse overwrites the cached inverse directly. See SetSnapshot
// for when to reach for it.
func (c *CachedMatrix) SetCachedInverse(m matrix.Matrix) { c.inverse = m }

// Inverter computes the inverse of a matrix. Implementations report a
// matrix without an inverse through an error; ComputeInverse passes such
// errors through unchanged.
type Inverter interface {
	Invert(m matrix.Matrix) (matrix.Matrix, error)
}

// InverterFunc adapts a plain function to the Inverter interface.
type InverterFunc func(m matrix.Matrix) (matrix.Matrix, error)

// Invert calls f(m).
func (f InverterFunc) Invert(m matrix.Matrix) (matrix.Matrix, error) { return f(m) }

var _ Inverter = (InverterFunc)(nil)

package invcache

import (
	"github.com/apex/log"

	"github.com/pbinns/matcache/matrix"
)

// ComputeInverse returns the inverse of the cell's current matrix, serving
// it from the cache while the cache is still valid.
//
// Description:
//
//	The cached inverse is valid when a snapshot is present, a cached
//	inverse is present, and the snapshot equals the current value element
//	for element (matrix.Equal, no tolerance). Validity is decided by
//	value rather than by a change flag, so an in-place edit that restores
//	the snapshotted contents makes the cache valid again.
//
// Algorithm Outline:
//  1. Resolve options (inverter, logger) against the defaults.
//  2. If the cache is valid, log "returning cached inverse" and return
//     the cached inverse unchanged. The cell is not mutated.
//  3. Otherwise invoke the inverter on the current value. On failure the
//     error is returned as is and the cell is not mutated.
//  4. On success record a copy of the current value as the snapshot,
//     store the fresh inverse, log "returning newly computed inverse",
//     and return it.
//
// The snapshot written in step 4 is a copy (Clone), not a reference, so
// later in-place edits to the current matrix cannot silently match it.
//
// Complexity:
//
//	Hit  = O(n²), one exact matrix comparison.
//	Miss = the inverter's cost, O(n³) for the default matrix.Inverse,
//	       plus O(n²) for the snapshot copy.
//
// Errors:
//   - ErrNilCell when c is nil.
//   - Inverter failures propagate unchanged. The default inverter reports
//     matrix.ErrSingular for a matrix without an inverse, and
//     matrix.ErrNilMatrix or matrix.ErrNonSquare for malformed input.
//
// Example:
//
//	cell := invcache.New(m)
//	inv, err := invcache.ComputeInverse(cell) // computes and caches
//	inv, err = invcache.ComputeInverse(cell)  // served from the cache
func ComputeInverse(c *CachedMatrix, opts ...Option) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	o := gatherOptions(opts...)

	cur := c.Current()
	snap, snapOK := c.Snapshot()
	inv, invOK := c.CachedInverse()
	if snapOK && invOK && matrix.Equal(snap, cur) {
		o.logger.WithFields(log.Fields{
			"rows": cur.Rows(),
			"cols": cur.Cols(),
		}).Info("returning cached inverse")

		return inv, nil
	}

	fresh, err := o.inverter.Invert(cur)
	if err != nil {
		return nil, err
	}
	c.SetSnapshot(cur.Clone())
	c.SetCachedInverse(fresh)
	o.logger.WithFields(log.Fields{
		"rows": cur.Rows(),
		"cols": cur.Cols(),
	}).Info("returning newly computed inverse")

	return fresh, nil
}

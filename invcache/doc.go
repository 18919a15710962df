// Package invcache memoizes the inverse of a square matrix, recomputing
// only when the matrix value actually changes.
//
// What:
//
//   - CachedMatrix wraps one matrix value together with the snapshot taken
//     at the last successful inversion and the inverse computed for it.
//   - ComputeInverse returns the cached inverse while the snapshot still
//     matches the current value element for element, and otherwise invokes
//     the inversion routine and records the fresh result.
//   - Staleness is decided by value, not by a dirty flag. The snapshot is
//     an independent copy of the inverted value, so in-place edits to the
//     current matrix are detected, and an edit that restores the previous
//     contents makes the cache valid again.
//
// Why:
//
//   - Inversion is O(n³) while the validity check is O(n²). Repeated
//     queries against an unchanged matrix pay for inversion once.
//   - Solver and simulation loops often re-read an inverse many times
//     between infrequent coefficient updates.
//
// Cache life cycle:
//
//   - New starts with an empty cache (no snapshot, no inverse).
//   - A successful ComputeInverse fills both fields.
//   - SetCurrent records the replaced value as the snapshot and clears the
//     cached inverse eagerly, so replacing the value and then restoring it
//     through SetCurrent still recomputes once.
//
// Errors:
//
//   - ErrNilCell: ComputeInverse was handed a nil *CachedMatrix.
//   - Failures from the inversion routine (for example matrix.ErrSingular)
//     propagate unchanged, and the cache is left untouched on failure.
//
// A CachedMatrix has one logical owner at a time; there is no locking
// inside. Wrap ComputeInverse and the mutators in one critical section if
// sharing across goroutines.
package invcache

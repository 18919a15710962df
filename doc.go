// Package matcache memoizes matrix inversion: the inverse of a square
// matrix is computed once and served from a cache for as long as the
// matrix keeps its value, with transparent recomputation the moment it
// changes.
//
// 🚀 What is matcache?
//
//	A small, single-purpose library built from two pieces:
//		• A cache cell holding one matrix, the value it was last
//		  inverted at, and that inverse
//		• A lookup routine that compares the two values and decides
//		  between "return the cache" and "invert again"
//
// ✨ Why choose matcache?
//
//   - Value-based staleness – the cache survives pointless churn; only a
//     genuinely different matrix triggers recomputation
//   - Honest failures – singular input surfaces as a sentinel error and
//     never poisons the cache
//   - Pure Go – the LU-based inversion ships in-repo, no cgo
//   - Observable – every lookup reports "cached" or "newly computed"
//     through an injectable logger
//
// Everything is organized under two subpackages:
//
//	matrix/   — dense storage, Inverse, Mul, exact & tolerant equality
//	invcache/ — the CachedMatrix cell and the ComputeInverse routine
//
// Quick example:
//
//	cell := invcache.New(m)
//	inv, _ := invcache.ComputeInverse(cell) // inverts m
//	inv, _ = invcache.ComputeInverse(cell)  // cache hit, no arithmetic
//
//	go get github.com/pbinns/matcache
package matcache

package invcache

import "errors"

// ErrNilCell reports a ComputeInverse call against a nil *CachedMatrix.
// It is the only error this package produces on its own; failures from the
// inversion routine reach the caller unchanged.
var ErrNilCell = errors.New("invcache: nil cached matrix")

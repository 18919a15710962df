package invcache

import (
	"github.com/apex/log"

	"github.com/pbinns/matcache/matrix"
)

// Panic messages for option constructors. Constructors panic only on
// programmer error (nil collaborators), never on data.
const (
	panicNilInverter = "invcache: WithInverter: inverter must be non-nil"
	panicNilLogger   = "invcache: WithLogger: logger must be non-nil"
)

// Option mutates the configuration consumed by ComputeInverse.
type Option func(*Options)

// Options carries the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option and
// resolve them through gatherOptions.
type Options struct {
	inverter Inverter
	logger   log.Interface
}

// WithInverter substitutes the inversion routine, for example a pivoting
// solver for ill-conditioned input or an instrumented double in tests.
// Panics when inv is nil.
func WithInverter(inv Inverter) Option {
	if inv == nil {
		panic(panicNilInverter)
	}

	return func(o *Options) { o.inverter = inv }
}

// WithLogger routes the per-call hit and miss signals to l instead of the
// process-wide apex logger. Panics when l is nil.
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters over the defaults, last writer wins.
// Defaults: matrix.Inverse as the inverter, log.Log as the logger.
func gatherOptions(user ...Option) Options {
	o := Options{
		inverter: InverterFunc(matrix.Inverse),
		logger:   log.Log,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

package correlate

import (
	"github.com/shardmath/shardmath"
)

// DegeneratePolicy selects how zero-magnitude (constant) vectors are
// handled. The chosen policy applies identically to the sequential and
// parallel paths.
type DegeneratePolicy int

const (
	// DegenerateError rejects the batch with *ErrDegenerateVector before
	// any pair is computed. This is the default.
	DegenerateError DegeneratePolicy = iota

	// DegeneratePropagate lets the zero-magnitude division produce NaN,
	// which flows through the dot product and survives the clamp.
	DegeneratePropagate
)

type options struct {
	policy DegeneratePolicy
	packed bool
	logger *shardmath.Logger
}

// Option configures a correlation computation.
type Option func(*options)

// WithDegeneratePolicy sets the zero-magnitude vector policy.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithPacked enables the packed fast path in CoefficientsParallel: all
// normalized vectors are copied into one 64-byte-aligned contiguous buffer
// and pairs are dotted with the accelerated kernel. Results are equivalent
// to the default path within floating-point reassociation tolerance.
//
// Coefficients ignores this option; the sequential path always uses the
// reference summation order.
func WithPacked() Option {
	return func(o *options) {
		o.packed = true
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *shardmath.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		policy: DegenerateError,
		logger: shardmath.NoopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

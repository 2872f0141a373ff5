package blur

import (
	"github.com/shardmath/shardmath"
)

type options struct {
	logger *shardmath.Logger
}

// Option configures a blur computation.
type Option func(*options)

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
		logger: shardmath.NoopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

package engine

import "github.com/rs/zerolog"

// Options holds the engine's tunables. Never required for correctness;
// the zero value behaves exactly like no options were given.
type Options struct {
	logger zerolog.Logger
}

// Option sets a field of Options. Following the functional-option
// pattern this module's teacher uses for its own parser (Debug,
// Memoize, Recover), each Option returns the previous value as an
// Option so calls compose and are reversible.
type Option func(*Options) Option

// WithLogger sets the logger used for per-Advance debug tracing. The
// default is a disabled (zerolog.Nop) logger, so logging has zero cost
// unless a caller opts in.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) Option {
		old := o.logger
		o.logger = l
		return WithLogger(old)
	}
}

func defaultOptions() Options {
	return Options{logger: zerolog.Nop()}
}

func applyOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

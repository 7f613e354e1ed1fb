package ninja

import "github.com/ardnew/ninjagen/log"

// Option applies a configuration option to a [File].
type Option func(config) config

type config struct {
	mode   Mode
	logger log.Logger
}

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithMode selects how the statement list is guarded.
// The default is [ModeSingle].
func WithMode(mode Mode) Option {
	return func(c config) config {
		c.mode = mode

		return c
	}
}

// WithShared is shorthand for WithMode(ModeShared) when shared is true.
func WithShared(shared bool) Option {
	if shared {
		return WithMode(ModeShared)
	}

	return WithMode(ModeSingle)
}

// WithLogger sets the logger that traces statement insertion.
// The zero [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

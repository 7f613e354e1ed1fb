package manifest

import (
	"maps"

	"github.com/ardnew/ninjagen/log"
	"github.com/ardnew/ninjagen/ninja"
)

// Option configures how a [Manifest] is turned into a [ninja.File].
type Option func(config) config

type config struct {
	env    map[string]any
	escape *bool
	logger log.Logger
	mode   ninja.Mode
}

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithEnv adds values visible to when expressions. They override the
// manifest's own env entries of the same name.
func WithEnv(env map[string]any) Option {
	return func(c config) config {
		merged := maps.Clone(c.env)
		if merged == nil {
			merged = make(map[string]any, len(env))
		}

		maps.Copy(merged, env)
		c.env = merged

		return c
	}
}

// WithEscape overrides the manifest's escape setting.
func WithEscape(escape bool) Option {
	return func(c config) config {
		c.escape = &escape

		return c
	}
}

// WithMode selects the ownership mode of the generated file.
func WithMode(mode ninja.Mode) Option {
	return func(c config) config {
		c.mode = mode

		return c
	}
}

// WithLogger sets the logger used while loading and generating.
// It is passed on to the generated file.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

package pool

import "go.uber.org/zap"

type config struct {
	logger *zap.SugaredLogger
	name   string
}

func defaultConfig() config {
	return config{
		logger: zap.NewNop().Sugar(),
	}
}

// Option configures a pool at creation time.
type Option func(*config)

// WithLogger attaches a logger to the pool. The pool logs at debug level
// only; without this option it is silent.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) { c.logger = l }
}

// WithName sets the name used in the pool's log fields. A random ID is
// generated when unset.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

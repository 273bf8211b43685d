package movable

import "io"

// Option configures a movable wrapper.
type Option[T any] func(*config[T])

type config[T any] struct {
	release func(T) error
}

// WithRelease sets the function used to release elements that are still owned
// by the wrapper when it is closed.
func WithRelease[T any](fn func(T) error) Option[T] {
	if fn == nil {
		panic("movable.WithRelease: release function cannot be nil")
	}
	return func(cfg *config[T]) {
		cfg.release = fn
	}
}

func newConfig[T any](opts []Option[T]) *config[T] {
	cfg := &config[T]{
		release: closeRelease[T],
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// closeRelease closes elements implementing io.Closer, everything else is
// left to the GC.
func closeRelease[T any](v T) error {
	if c, ok := any(v).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Package dfs defines errors and options for simple-path enumeration.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrBadCriterion is returned for a criterion outside Distance/Time/Cost.
	ErrBadCriterion = errors.New("dfs: unknown criterion")

	// errEnough stops the walk once MaxPaths routes were collected.
	errEnough = errors.New("dfs: path limit reached")
)

// Option configures optional behavior of the enumeration.
type Option func(*Options)

// Options holds configurable parameters for SimplePaths / AlternativePaths.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, is the maximum number of edges per route.
	// A depth of 0 admits only the from == to route. Default is -1 (no limit).
	MaxDepth int

	// MaxPaths, if positive, stops the walk after that many complete routes.
	// Default is 0 (no limit).
	MaxPaths int
}

// DefaultOptions returns Options with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - No path limit (MaxPaths = 0)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		MaxPaths: 0,
	}
}

// WithContext sets the Context for the walk. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits routes to at most limit edges.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithMaxPaths stops enumeration after n complete routes.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

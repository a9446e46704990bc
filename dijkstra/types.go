// File: types.go
// Role: Sentinel errors and functional options for ShortestPath.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadCriterion indicates a criterion outside Distance/Time/Cost.
	ErrBadCriterion = errors.New("dijkstra: unknown criterion")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative value or NaN,
	// which would close every edge including zero-weight ones.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a single ShortestPath call.
//
// MaxDistance      – tentative weights above this cap are never expanded. Default +Inf.
// InfEdgeThreshold – edges whose selected weight is ≥ this value are skipped. Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance caps exploration. Must be ≥ 0; invalid values panic.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if !(limit >= 0) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold closes every edge whose selected weight is ≥ threshold.
// Must be > 0; invalid values panic.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no closed edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

package network

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/core"
)

// Option configures a Network.
type Option func(*Network)

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithSearchTimeout bounds every AlternativePaths enumeration. Zero disables the bound.
func WithSearchTimeout(d time.Duration) Option {
	return func(n *Network) {
		n.searchTimeout = max(d, 0)
	}
}

// WithMaxDepth limits alternative routes to at most depth edges. Negative means unlimited.
func WithMaxDepth(depth int) Option {
	return func(n *Network) {
		n.maxDepth = depth
	}
}

// WithGraph wraps an existing graph instead of creating an empty one.
func WithGraph(g *core.Graph) Option {
	return func(n *Network) {
		if g != nil {
			n.graph = g
		}
	}
}

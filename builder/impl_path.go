// SPDX-License-Identifier: MIT
//
// File: impl_path.go
// Role: Path(n), a two-way chain.
// Determinism:
//   - Vertices idFn(0..n-1); for each i emit i→i+1 then i+1→i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that builds a two-way chain of n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		keys, err := addIndexedVertices(g, methodPath, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addTwoWay(g, methodPath, cfg, keys[i], keys[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

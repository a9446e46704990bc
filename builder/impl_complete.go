// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete(n), every ordered pair of distinct vertices.
// Determinism:
//   - For i asc, j asc (j ≠ i) emit i→j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that builds n vertices and n·(n-1) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		keys, err := addIndexedVertices(g, methodComplete, cfg, n)
		if err != nil {
			return err
		}
		for i := range keys {
			for j := range keys {
				if i == j {
					continue
				}
				if err := addEdge(g, methodComplete, cfg, keys[i], keys[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

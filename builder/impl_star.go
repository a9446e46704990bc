// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n), a hub-and-spoke network.
// Model:
//   - Hub key "HUB" (group "hub"), leaves idFn(0..n-2) (group "spoke").
//   - For each leaf in index order emit HUB→leaf then leaf→HUB.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodStar      = "Star"
	minStarVertices = 2

	// HubKey is the fixed key of the Star centre.
	HubKey = "HUB"

	groupHub   = "hub"
	groupSpoke = "spoke"
)

// Star returns a Constructor that builds a hub with n-1 two-way spokes.
// Leaves are placed on the unit circle around the hub.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		if err := addVertex(g, methodStar, core.Vertex{Key: HubKey, Group: groupHub}); err != nil {
			return err
		}

		leaves := n - 1
		for i := 0; i < leaves; i++ {
			angle := 2 * math.Pi * float64(i) / float64(leaves)
			leaf := core.Vertex{Key: cfg.idFn(i), Group: groupSpoke, X: math.Cos(angle), Y: math.Sin(angle)}
			if err := addVertex(g, methodStar, leaf); err != nil {
				return err
			}
			if err := addTwoWay(g, methodStar, cfg, HubKey, leaf.Key); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// addVertex inserts v and maps a refused insert to ErrConstructFailed.
func addVertex(g *core.Graph, method string, v core.Vertex) error {
	if v.Name == "" {
		v.Name = v.Key
	}
	if !g.AddVertex(v) {
		return fmt.Errorf("%s: AddVertex(%q): %w", method, v.Key, ErrConstructFailed)
	}

	return nil
}

// addIndexedVertices inserts cfg.idFn(0..n-1) laid out on a line and returns the keys.
func addIndexedVertices(g *core.Graph, method string, cfg builderConfig, n int) ([]string, error) {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = cfg.idFn(i)
		if err := addVertex(g, method, core.Vertex{Key: keys[i], X: float64(i)}); err != nil {
			return nil, err
		}
	}

	return keys, nil
}

// addEdge draws one weight from cfg and adds u→v.
func addEdge(g *core.Graph, method string, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, ok := g.AddEdge(u, v, w); !ok {
		return fmt.Errorf("%s: AddEdge(%s→%s, %+v): %w", method, u, v, w, ErrConstructFailed)
	}

	return nil
}

// addTwoWay adds u→v then v→u, each with its own weight draw.
func addTwoWay(g *core.Graph, method string, cfg builderConfig, u, v string) error {
	if err := addEdge(g, method, cfg, u, v); err != nil {
		return err
	}

	return addEdge(g, method, cfg, v, u)
}

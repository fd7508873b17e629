// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/core"
)

// Components labels every vertex with a 1-based component id by a
// breadth-first forest over the underlying graph, rooted at each unlabelled
// vertex in index order, and returns the labels together with the number of
// components.
func Components(g *core.Graph, opts ...Option) (ids []int, count int, err error) {
	if err = g.Require(); err != nil {
		return nil, 0, fmt.Errorf("Components: %w", err)
	}
	o := buildOptions(opts)

	res, err := bfs.Forest(g, bfs.WithContext(o.Ctx), bfs.WithUnderlying())
	if err != nil {
		return nil, 0, err
	}
	ids = make([]int, g.NodeCount())
	for _, v := range res.Order {
		if res.Parent[v] < 0 {
			count++
		}
		ids[v] = count
	}
	return ids, count, nil
}

// ComponentSets returns the vertex sets of the components, ordered by their
// smallest vertex, each in ascending order.
func ComponentSets(g *core.Graph, opts ...Option) ([][]int, error) {
	ids, count, err := Components(g, opts...)
	if err != nil {
		return nil, err
	}
	sets := make([][]int, count)
	for v, id := range ids {
		sets[id-1] = append(sets[id-1], v)
	}
	return sets, nil
}

// IsConnected reports whether g has at most one component. The empty graph
// is connected.
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	_, count, err := Components(g, opts...)
	if err != nil {
		return false, err
	}
	return count <= 1, nil
}

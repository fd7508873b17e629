// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/graphkit/core"

// Maximal returns a greedy maximal matching: each still-exposed vertex, in
// index order, is matched with its first exposed neighbour.
//
// Complexity: O(V + E).
func Maximal(g *core.Graph) (Matching, error) {
	if err := checkGraph("Maximal", g); err != nil {
		return nil, err
	}
	return fromMates(greedy(g)), nil
}

// greedy returns the mate array of the greedy matching.
func greedy(g *core.Graph) []int {
	n := g.NodeCount()
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	for i := 0; i < n; i++ {
		if mate[i] >= 0 {
			continue
		}
		for _, j := range g.AdjacentNodes(i) {
			if mate[j] < 0 {
				mate[i], mate[j] = j, i
				break
			}
		}
	}
	return mate
}

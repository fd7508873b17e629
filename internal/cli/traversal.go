// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/prim_kruskal"
	"github.com/katalvlaran/graphkit/value"
)

// vertexArg resolves a command-line label to a vertex index.
func vertexArg(g *core.Graph, s string) (int, error) {
	if i := g.NodeIndex(value.Parse(s)); i >= 0 {
		return i, nil
	}
	if i := g.NodeIndex(value.Str(s)); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("vertex %q: %w", s, core.ErrVertexNotFound)
}

func newPathCommand(input *Input) *cobra.Command {
	var hops bool
	cmd := &cobra.Command{
		Use:   "path <graph> <from> <to>",
		Short: "Print a shortest path; weighted graphs use edge weights unless --hops",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			from, err := vertexArg(g, args[1])
			if err != nil {
				return err
			}
			to, err := vertexArg(g, args[2])
			if err != nil {
				return err
			}

			var (
				path []int
				cost float64
			)
			if g.Weighted() && !hops {
				res, err := dijkstra.Dijkstra(g, from, dijkstra.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				if path, err = res.PathTo(to); err != nil {
					return err
				}
				cost = res.Dist[to]
			} else {
				res, err := bfs.BFS(g, from, bfs.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				if path, err = res.PathTo(to); err != nil {
					return err
				}
				cost = float64(res.Depth[to])
			}
			fmt.Fprintln(cmd.OutOrStdout(), labels(g, path))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "length %v\n", cost)
			return err
		},
	}
	cmd.Flags().BoolVar(&hops, "hops", false, "count edges even on weighted graphs")
	return cmd
}

func newTopoSortCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "toposort <graph>",
		Short: "Print the vertices of a directed acyclic graph in topological order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			order, err := dfs.TopologicalSort(g, dfs.WithContext(cmd.Context()))
			if err != nil {
				if cyc := dfs.FindCycle(g); cyc != nil {
					return fmt.Errorf("%w (%s)", err, labels(g, cyc))
				}
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), labels(g, order))
			return err
		},
	}
}

func newMSTCommand(input *Input) *cobra.Command {
	var (
		method string
		root   string
		forest bool
	)
	cmd := &cobra.Command{
		Use:   "mst <graph>",
		Short: "Print a minimum spanning tree of an undirected weighted graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			var (
				tree  []core.Edge
				total float64
			)
			switch {
			case forest:
				tree, total, err = prim_kruskal.Forest(g)
			case method == prim_kruskal.MethodPrim:
				start := 0
				if root != "" {
					if start, err = vertexArg(g, root); err != nil {
						return err
					}
				}
				tree, total, err = prim_kruskal.Prim(g, start)
			case method == prim_kruskal.MethodKruskal:
				tree, total, err = prim_kruskal.Kruskal(g)
			default:
				return fmt.Errorf("unknown method %q", method)
			}
			if err != nil {
				return err
			}
			if err = printEdges(cmd.OutOrStdout(), g, tree); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "weight %v\n", total)
			return err
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", prim_kruskal.MethodKruskal, "kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "start vertex for prim (default: first vertex)")
	cmd.Flags().BoolVar(&forest, "forest", false, "spanning forest of a disconnected graph")
	return cmd
}

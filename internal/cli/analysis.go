// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/clique"
	"github.com/katalvlaran/graphkit/connectivity"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
	"github.com/katalvlaran/graphkit/matching"
)

func newConvertCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <graph>",
		Short: "Convert between DOT and .gk, or copy into the store with -o @name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			return writeGraph(cmd, input, g)
		},
	}
	addOutputFlag(cmd.Flags(), input)
	return cmd
}

func newInfoCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph>",
		Short: "Print the mode, size and connectivity of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			_, count, err := connectivity.Components(g, connectivity.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if g.Name() != "" {
				fmt.Fprintf(w, "name:       %s\n", g.Name())
			}
			fmt.Fprintf(w, "directed:   %t\n", g.Directed())
			fmt.Fprintf(w, "weighted:   %t\n", g.Weighted())
			fmt.Fprintf(w, "vertices:   %d\n", g.NodeCount())
			fmt.Fprintf(w, "edges:      %d\n", g.EdgeCount())
			fmt.Fprintf(w, "components: %d\n", count)
			fmt.Fprintf(w, "acyclic:    %t\n", dfs.FindCycle(g) == nil)
			if tags := g.UserTags(); len(tags) > 0 {
				fmt.Fprintf(w, "tags:       %v\n", tags)
			}
			return nil
		},
	}
}

func newMatchCommand(input *Input) *cobra.Command {
	var greedy bool
	cmd := &cobra.Command{
		Use:   "match <graph>",
		Short: "Print a maximum cardinality matching of an undirected graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			if err = g.Require(core.NeedUndirected); err != nil {
				return err
			}
			var m matching.Matching
			if greedy {
				m, err = matching.Maximal(g)
			} else {
				m, err = matching.Maximum(g, matching.WithContext(cmd.Context()))
			}
			if err != nil {
				return err
			}
			if err = printEdges(cmd.OutOrStdout(), g, m); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "size %d\n", m.Size())
			return err
		},
	}
	cmd.Flags().BoolVar(&greedy, "maximal", false, "greedy maximal matching instead of maximum")
	return cmd
}

func newComponentsCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "components <graph>",
		Short: "Print the connected components, one per line (weak for directed graphs)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			sets, err := connectivity.ComponentSets(g, connectivity.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			for _, s := range sets {
				fmt.Fprintln(cmd.OutOrStdout(), labels(g, s))
			}
			return nil
		},
	}
}

func newCutVerticesCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:     "cut-vertices <graph>",
		Aliases: []string{"articulation-points"},
		Short:   "Print the cut vertices of an undirected graph",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			cut, err := connectivity.CutVertices(g, connectivity.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), labels(g, cut))
			return err
		},
	}
}

func newBlocksCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks <graph>",
		Short: "Print the biconnected components, one vertex set per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			blocks, err := connectivity.Blocks(g, connectivity.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			for _, b := range blocks {
				fmt.Fprintln(cmd.OutOrStdout(), labels(g, b.Vertices))
			}
			return nil
		},
	}
}

func newBridgesCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "bridges <graph>",
		Short: "Print the bridges of an undirected graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			br, err := connectivity.Bridges(g, connectivity.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			return printEdges(cmd.OutOrStdout(), g, br)
		},
	}
}

func newCliquesCommand(input *Input) *cobra.Command {
	var (
		minSize int
		largest bool
	)
	cmd := &cobra.Command{
		Use:   "cliques <graph>",
		Short: "Print the maximal cliques of an undirected graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			opts := []clique.Option{clique.WithContext(cmd.Context())}
			if largest {
				c, err := clique.MaximumClique(g, opts...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), labels(g, c))
				return err
			}
			if minSize > 1 {
				opts = append(opts, clique.WithMinSize(minSize))
			}
			return clique.Enumerate(g, func(c []int) bool {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), labels(g, c))
				return err == nil
			}, opts...)
		},
	}
	cmd.Flags().IntVar(&minSize, "min", 1, "only cliques with at least this many vertices")
	cmd.Flags().BoolVar(&largest, "max", false, "print one maximum clique only")
	return cmd
}

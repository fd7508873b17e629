// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/store"
)

func newStoreCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the graph database",
	}
	cmd.AddCommand(
		newStorePutCommand(input),
		newStoreGetCommand(input),
		newStoreListCommand(input),
		newStoreDeleteCommand(input),
	)
	return cmd
}

func newStorePutCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "put <name> <graph>",
		Short: "Store a graph under a name, replacing any previous one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[1])
			if err != nil {
				return err
			}
			return withStore(input, func(s *store.Store) error {
				return s.Put(args[0], g)
			})
		},
	}
}

func newStoreGetCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a stored graph as DOT, or write it with -o",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, storeRef+args[0])
			if err != nil {
				return err
			}
			return writeGraph(cmd, input, g)
		},
	}
	addOutputFlag(cmd.Flags(), input)
	return cmd
}

func newStoreListCommand(input *Input) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored graphs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(input, func(s *store.Store) error {
				names, err := s.List()
				if err != nil {
					return err
				}
				if !long {
					for _, n := range names {
						fmt.Fprintln(cmd.OutOrStdout(), n)
					}
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tVERTICES\tEDGES\tDIRECTED\tWEIGHTED\tBYTES")
				for _, n := range names {
					e, err := s.Stat(n)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%d\t%d\t%t\t%t\t%d\n", e.Name, e.Vertices, e.Edges, e.Directed, e.Weighted, e.Size)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show sizes and modes")
	return cmd
}

func newStoreDeleteCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>...",
		Aliases: []string{"rm"},
		Short:   "Remove stored graphs",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(input, func(s *store.Store) error {
				for _, n := range args {
					if err := s.Delete(n); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

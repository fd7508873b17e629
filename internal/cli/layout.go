// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/config"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/layout"
	"github.com/katalvlaran/graphkit/value"
)

type layoutFlags struct {
	method    string
	seed      int64
	dimension int
	unique    bool
	diameter  float64
}

func newLayoutCommand(input *Input) *cobra.Command {
	var f layoutFlags
	cmd := &cobra.Command{
		Use:   "layout <graph>",
		Short: "Compute vertex positions and store them in the pos attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, input, args[0])
			if err != nil {
				return err
			}
			lc := input.cfg.Layout
			if cmd.Flags().Changed("method") {
				lc.Method = f.method
			}
			if cmd.Flags().Changed("seed") {
				lc.Seed = f.seed
			}
			if cmd.Flags().Changed("dimension") {
				lc.Dimension = f.dimension
			}
			cfg := input.cfg
			cfg.Layout = lc
			if err = cfg.Validate(); err != nil {
				return err
			}
			x, err := runLayout(cmd, g, lc)
			if err != nil {
				return err
			}
			if f.diameter > 0 {
				layout.Scale(x, f.diameter)
			}
			if f.unique {
				if lc.Dimension != 2 {
					return fmt.Errorf("layout: --unique needs a 2D layout")
				}
				if err = layout.MakeUnique(x); err != nil {
					return err
				}
			}
			setPositions(g, x)
			return writeGraph(cmd, input, g)
		},
	}
	cmd.Flags().StringVarP(&f.method, "method", "m", config.MethodMultilevel, "multilevel or force")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().IntVarP(&f.dimension, "dimension", "d", 2, "2 or 3")
	cmd.Flags().BoolVar(&f.unique, "unique", false, "normalize a 2D layout up to rotation and reflection")
	cmd.Flags().Float64Var(&f.diameter, "diameter", 0, "scale the layout to this diameter")
	addOutputFlag(cmd.Flags(), input)
	return cmd
}

func runLayout(cmd *cobra.Command, g *core.Graph, lc config.LayoutConfig) (layout.Layout, error) {
	opts := append(lc.Options(),
		layout.WithContext(cmd.Context()),
		layout.WithLogger(log.StandardLogger()),
	)
	if lc.Method == config.MethodForce {
		x := layout.RandomLayout(g.NodeCount(), lc.Dimension, rand.New(rand.NewSource(lc.Seed)))
		st, err := layout.ForceDirected(g, x, opts...)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"iterations": st.Iterations,
			"converged":  st.Converged,
		}).Debug("force-directed layout")
		return x, nil
	}
	return layout.Multilevel(g, opts...)
}

// setPositions stores x[i] under core.KeyPosition as a list of floats.
func setPositions(g *core.Graph, x layout.Layout) {
	for i, p := range x {
		coords := make([]value.Value, len(p))
		for k, c := range p {
			coords[k] = value.Float(c)
		}
		g.NodeAttributes(i).Set(core.KeyPosition, value.List(coords...))
	}
}

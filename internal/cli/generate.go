// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

// family turns positional arguments into a constructor.
type family struct {
	usage string
	make  func(args []string) (builder.Constructor, error)
}

var families = map[string]family{
	"cycle":    {"n", intArgs(1, func(a []int) builder.Constructor { return builder.Cycle(a[0]) })},
	"path":     {"n", intArgs(1, func(a []int) builder.Constructor { return builder.Path(a[0]) })},
	"star":     {"n", intArgs(1, func(a []int) builder.Constructor { return builder.Star(a[0]) })},
	"wheel":    {"n", intArgs(1, func(a []int) builder.Constructor { return builder.Wheel(a[0]) })},
	"grid":     {"rows cols", intArgs(2, func(a []int) builder.Constructor { return builder.Grid(a[0], a[1]) })},
	"complete": {"n", intArgs(1, func(a []int) builder.Constructor { return builder.Complete(a[0]) })},
	"bipartite": {"n1 n2", intArgs(2, func(a []int) builder.Constructor {
		return builder.CompleteBipartite(a[0], a[1])
	})},
	"multipartite": {"n1 n2 ...", intArgs(-1, func(a []int) builder.Constructor {
		return builder.CompleteMultipartite(a...)
	})},
	"petersen":   {"n k", intArgs(2, func(a []int) builder.Constructor { return builder.Petersen(a[0], a[1]) })},
	"hypercube":  {"n", intArgs(1, func(a []int) builder.Constructor { return builder.Hypercube(a[0]) })},
	"sierpinski": {"n k", intArgs(2, func(a []int) builder.Constructor { return builder.Sierpinski(a[0], a[1]) })},
	"triangle":   {"n", intArgs(1, func(a []int) builder.Constructor { return builder.SierpinskiTriangle(a[0]) })},
	"random-regular": {"n d", intArgs(2, func(a []int) builder.Constructor {
		return builder.RandomRegular(a[0], a[1])
	})},
	"lcf": {"notation", func(args []string) (builder.Constructor, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("want 1 argument, got %d", len(args))
		}
		return builder.LCFNotation(args[0]), nil
	}},
	"named": {"name", func(args []string) (builder.Constructor, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("want 1 argument, got %d", len(args))
		}
		return builder.Named(args[0]), nil
	}},
	"platonic": {"name [center]", platonic},
	"random-sparse": {"n p", func(args []string) (builder.Constructor, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("want 2 arguments, got %d", len(args))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, err
		}
		return builder.RandomSparse(n, p), nil
	}},
}

// intArgs parses exactly want integers (any positive number when want < 0).
func intArgs(want int, fn func([]int) builder.Constructor) func([]string) (builder.Constructor, error) {
	return func(args []string) (builder.Constructor, error) {
		if (want >= 0 && len(args) != want) || (want < 0 && len(args) == 0) {
			return nil, fmt.Errorf("want %d integer arguments, got %d", want, len(args))
		}
		a := make([]int, len(args))
		for i, s := range args {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, err
			}
			a[i] = v
		}
		return fn(a), nil
	}
}

func platonic(args []string) (builder.Constructor, error) {
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "center") {
		return nil, fmt.Errorf("want a solid name and optionally \"center\"")
	}
	for p := builder.Tetrahedron; p <= builder.Icosahedron; p++ {
		if strings.EqualFold(p.String(), args[0]) {
			return builder.PlatonicSolid(p, len(args) == 2), nil
		}
	}
	return nil, fmt.Errorf("unknown solid %q", args[0])
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for n := range families {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type generateFlags struct {
	directed bool
	weighted bool
	seed     int64
	symbols  bool
	minW     float64
	maxW     float64
	name     string
}

func newGenerateCommand(input *Input) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate <family> [args...]",
		Short: "Generate a graph from a builder family",
		Long:  "Families: " + strings.Join(familyNames(), ", ") + ".\nNamed graphs: " + strings.Join(builder.NamedGraphs(), ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, ok := families[args[0]]
			if !ok {
				return fmt.Errorf("generate: unknown family %q", args[0])
			}
			cons, err := fam.make(args[1:])
			if err != nil {
				return fmt.Errorf("generate %s %s: %w", args[0], fam.usage, err)
			}
			if f.minW > f.maxW {
				return fmt.Errorf("generate: --min-weight %v > --max-weight %v", f.minW, f.maxW)
			}

			gopts := []core.GraphOption{core.WithDirected(f.directed)}
			if f.name != "" {
				gopts = append(gopts, core.WithName(f.name))
			}
			bopts := []builder.BuilderOption{builder.WithSeed(f.seed)}
			if f.weighted {
				gopts = append(gopts, core.WithWeighted())
				if f.minW == f.maxW {
					bopts = append(bopts, builder.WithConstantWeight(f.minW))
				} else {
					bopts = append(bopts, builder.WithUniformWeight(f.minW, f.maxW))
				}
			}
			if f.symbols {
				bopts = append(bopts, builder.WithLabelFn(builder.SymbolLabelFn))
			}
			g, err := builder.BuildGraph(gopts, bopts, cons)
			if err != nil {
				return err
			}
			return writeGraph(cmd, input, g)
		},
	}
	cmd.Flags().BoolVar(&f.directed, "directed", false, "build a directed graph")
	cmd.Flags().BoolVar(&f.weighted, "weighted", false, "attach a weight to every edge")
	cmd.Flags().Float64Var(&f.minW, "min-weight", builder.DefaultEdgeWeight, "lower bound of edge weights")
	cmd.Flags().Float64Var(&f.maxW, "max-weight", builder.DefaultEdgeWeight, "upper bound of edge weights")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&f.symbols, "symbols", false, "label vertices A, B, ..., Z, AA, ...")
	cmd.Flags().StringVar(&f.name, "name", "", "graph name")
	addOutputFlag(cmd.Flags(), input)
	return cmd
}

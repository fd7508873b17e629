// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkit/codec"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dot"
	"github.com/katalvlaran/graphkit/store"
)

// storeRef marks a graph source that names a stored graph ("@petersen").
const storeRef = "@"

// readGraph loads src: "-" is DOT on stdin, "@name" a stored graph, a
// ".gk" path the binary format and anything else a DOT file.
func readGraph(cmd *cobra.Command, input *Input, src string) (*core.Graph, error) {
	log.Debugf("reading graph from %s", src)
	switch {
	case src == "-":
		return dot.Read(cmd.InOrStdin())
	case strings.HasPrefix(src, storeRef):
		var g *core.Graph
		err := withStore(input, func(s *store.Store) error {
			var err error
			g, err = s.Get(strings.TrimPrefix(src, storeRef))
			return err
		})
		return g, err
	case strings.EqualFold(filepath.Ext(src), codec.FileExt):
		return codec.ReadFile(src)
	default:
		return dot.ReadFile(src)
	}
}

// writeGraph emits g to input.output, or as DOT on stdout.
func writeGraph(cmd *cobra.Command, input *Input, g *core.Graph) error {
	dst := input.output
	switch {
	case dst == "" || dst == "-":
		return dot.Write(cmd.OutOrStdout(), g)
	case strings.HasPrefix(dst, storeRef):
		return withStore(input, func(s *store.Store) error {
			return s.Put(strings.TrimPrefix(dst, storeRef), g)
		})
	case strings.EqualFold(filepath.Ext(dst), codec.FileExt):
		log.Debugf("writing %s", dst)
		return codec.WriteFile(dst, g)
	default:
		log.Debugf("writing %s", dst)
		return dot.WriteFile(dst, g)
	}
}

// withStore opens the configured database for the duration of fn.
func withStore(input *Input, fn func(*store.Store) error) error {
	opts := append(input.cfg.Store.Options(), store.WithLogger(log.StandardLogger()))
	s, err := store.Open(input.storeFile(), opts...)
	if err != nil {
		return err
	}
	if err = fn(s); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}

// labels renders vertex indices as their labels.
func labels(g *core.Graph, idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = g.Node(v).String()
	}
	return strings.Join(parts, " ")
}

func printEdges(w io.Writer, g *core.Graph, edges []core.Edge) error {
	op := " -- "
	if g.Directed() {
		op = " -> "
	}
	for _, e := range edges {
		if _, err := fmt.Fprintln(w, g.Node(e.From).String()+op+g.Node(e.To).String()); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}

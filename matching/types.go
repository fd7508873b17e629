// SPDX-License-Identifier: MIT

package matching

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// ErrInvalidMatching indicates a set of edges that is not a matching of the graph.
var ErrInvalidMatching = errors.New("matching: not a valid matching")

// Matching is a set of disjoint edges, each with From < To.
type Matching []core.Edge

// Size returns the number of matched pairs.
func (m Matching) Size() int { return len(m) }

// Mates returns mate[i] = partner of i, or -1, for a graph on n vertices.
func (m Matching) Mates(n int) []int {
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	for _, e := range m {
		mate[e.From] = e.To
		mate[e.To] = e.From
	}
	return mate
}

// Validate checks that every pair is an edge of g and no vertex is covered twice.
func (m Matching) Validate(g *core.Graph) error {
	used := make(map[int]bool, 2*len(m))
	for _, e := range m {
		if !g.HasEdge(e.From, e.To) {
			return fmt.Errorf("Validate: (%d,%d) is not an edge: %w", e.From, e.To, ErrInvalidMatching)
		}
		if used[e.From] || used[e.To] {
			return fmt.Errorf("Validate: vertex of (%d,%d) already matched: %w", e.From, e.To, ErrInvalidMatching)
		}
		used[e.From], used[e.To] = true, true
	}
	return nil
}

// fromMates builds a Matching ordered by From from a mate array.
func fromMates(mate []int) Matching {
	m := Matching{}
	for i, j := range mate {
		if j > i {
			m = append(m, core.Edge{From: i, To: j})
		}
	}
	return m
}

// Option configures Maximum.
type Option func(*Options)

// Options holds the parameters of Maximum.
type Options struct {
	// Ctx allows cancellation between augmentation phases.
	Ctx context.Context
	// Initial is a matching to extend; nil starts from a greedy matching.
	Initial Matching
}

// DefaultOptions returns background context and no initial matching.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("matching: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithInitial starts the search from m instead of a greedy matching.
func WithInitial(m Matching) Option {
	return func(o *Options) { o.Initial = m }
}

func checkGraph(method string, g *core.Graph) error {
	if err := g.Require(core.NeedUndirected); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

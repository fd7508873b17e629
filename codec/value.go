// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// flag renders a boolean graph flag as 0/1.
func flag(b bool) value.Value {
	if b {
		return value.Int(1)
	}
	return value.Int(0)
}

// attrsValue renders an attribute store as {{key, value}, ...} in key order.
func attrsValue(a *core.Attributes) value.Value {
	keys := a.Keys()
	items := make([]value.Value, len(keys))
	for i, k := range keys {
		v, _ := a.Get(k)
		items[i] = value.List(value.Int(int64(k)), v)
	}
	return value.List(items...)
}

// ToValue returns the list representation of g. A nil graph yields the
// zero Value.
func ToValue(g *core.Graph) value.Value {
	if g == nil {
		return value.Value{}
	}
	ga := g.Attributes().Clone()
	if g.Name() != "" {
		ga.Set(core.KeyName, value.Str(g.Name()))
	}
	ga.Set(core.KeyDirected, flag(g.Directed()))
	ga.Set(core.KeyWeighted, flag(g.Weighted()))

	tags := g.UserTags()
	tagItems := make([]value.Value, len(tags))
	for i, t := range tags {
		tagItems[i] = value.Str(t)
	}

	n := g.NodeCount()
	nbrs := make([][]value.Value, n)
	g.ForEachEdge(func(e core.Edge, a *core.Attributes) bool {
		nbrs[e.From] = append(nbrs[e.From], value.List(value.Int(int64(e.To)), attrsValue(a)))
		return true
	})

	items := make([]value.Value, 0, n+2)
	items = append(items, attrsValue(ga), value.List(tagItems...))
	for i := 0; i < n; i++ {
		items = append(items, value.List(g.Node(i), attrsValue(g.NodeAttributes(i)), value.List(nbrs[i]...)))
	}
	return value.List(items...)
}

// FromValue rebuilds a graph from the representation produced by ToValue.
func FromValue(v value.Value) (*core.Graph, error) {
	const method = "FromValue"
	items := v.Items()
	if v.Kind() != value.KindList || len(items) < 2 {
		return nil, fmt.Errorf("%s: expected a list of at least 2 items: %w", method, ErrMalformed)
	}

	tags := items[1]
	if tags.Kind() != value.KindList {
		return nil, fmt.Errorf("%s: tag list: %w", method, ErrMalformed)
	}
	names := make([]string, 0, tags.Len())
	for _, t := range tags.Items() {
		name, ok := t.AsString()
		if !ok || name == "" {
			return nil, fmt.Errorf("%s: tag %s: %w", method, t, ErrMalformed)
		}
		names = append(names, name)
	}
	maxKey := core.KeyUser + core.Key(len(names))

	ga, err := readAttrs(items[0], maxKey)
	if err != nil {
		return nil, fmt.Errorf("%s: graph attributes: %w", method, err)
	}
	directed, err := takeFlag(ga, core.KeyDirected)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	weighted, err := takeFlag(ga, core.KeyWeighted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	g := core.NewGraph(core.WithDirected(directed))
	g.SetWeighted(weighted)
	if nv, ok := ga.Get(core.KeyName); ok {
		g.SetName(nv.Text())
		ga.Delete(core.KeyName)
	}
	for _, name := range names {
		g.RegisterTag(name)
	}
	g.Attributes().Merge(ga)

	verts := items[2:]
	for i, vv := range verts {
		rec := vv.Items()
		if vv.Kind() != value.KindList || len(rec) != 3 {
			return nil, fmt.Errorf("%s: vertex %d: %w", method, i, ErrMalformed)
		}
		if rec[0].IsZero() {
			return nil, fmt.Errorf("%s: vertex %d: empty label: %w", method, i, ErrMalformed)
		}
		if g.NodeIndex(rec[0]) >= 0 {
			return nil, fmt.Errorf("%s: vertex %d: duplicate label %s: %w", method, i, rec[0], ErrMalformed)
		}
		attrs, err := readAttrs(rec[1], maxKey)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %d: %w", method, i, err)
		}
		g.AddNodeAttrs(rec[0], attrs)
	}
	for i, vv := range verts {
		adj := vv.Items()[2]
		if adj.Kind() != value.KindList {
			return nil, fmt.Errorf("%s: vertex %d: neighbour list: %w", method, i, ErrMalformed)
		}
		for _, nv := range adj.Items() {
			pair := nv.Items()
			if nv.Kind() != value.KindList || len(pair) != 2 {
				return nil, fmt.Errorf("%s: vertex %d: neighbour %s: %w", method, i, nv, ErrMalformed)
			}
			j, ok := pair[0].AsInt()
			if !ok || j < 0 || int(j) >= len(verts) || int(j) == i {
				return nil, fmt.Errorf("%s: vertex %d: neighbour %s: %w", method, i, pair[0], core.ErrMalformedEdge)
			}
			attrs, err := readAttrs(pair[1], maxKey)
			if err != nil {
				return nil, fmt.Errorf("%s: edge %d-%d: %w", method, i, j, err)
			}
			if !g.AddEdgeAttrs(i, int(j), attrs) {
				return nil, fmt.Errorf("%s: duplicate edge %d-%d: %w", method, i, j, core.ErrMalformedEdge)
			}
		}
	}
	return g, nil
}

// takeFlag removes the 0/1 flag stored under k; a missing flag is false.
func takeFlag(a *core.Attributes, k core.Key) (bool, error) {
	v, ok := a.Get(k)
	if !ok {
		return false, nil
	}
	a.Delete(k)
	b, ok := v.AsInt()
	if !ok || (b != 0 && b != 1) {
		return false, fmt.Errorf("flag %s: %w", v, ErrMalformed)
	}
	return b == 1, nil
}

// readAttrs parses {{key, value}, ...}; keys must lie below maxKey.
func readAttrs(v value.Value, maxKey core.Key) (*core.Attributes, error) {
	if v.Kind() != value.KindList {
		return nil, fmt.Errorf("attribute list %s: %w", v, ErrMalformed)
	}
	a := core.NewAttributes()
	for _, p := range v.Items() {
		pair := p.Items()
		if p.Kind() != value.KindList || len(pair) != 2 {
			return nil, fmt.Errorf("attribute %s: %w", p, ErrMalformed)
		}
		k, ok := pair[0].AsInt()
		if !ok || k < 0 || core.Key(k) >= maxKey {
			return nil, fmt.Errorf("attribute key %s: %w", pair[0], ErrMalformed)
		}
		a.Set(core.Key(k), pair[1])
	}
	return a, nil
}

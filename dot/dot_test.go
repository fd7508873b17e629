package dot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dot"
	"github.com/katalvlaran/graphkit/value"
)

// labelOf returns the printed label of vertex i.
func labelOf(g *core.Graph, i int) string { return g.Node(i).String() }

// edgeSet renders the edges of g as "a-b" strings over printed labels.
func edgeSet(g *core.Graph) []string {
	var out []string
	g.ForEachEdge(func(e core.Edge, _ *core.Attributes) bool {
		out = append(out, labelOf(g, e.From)+"-"+labelOf(g, e.To))
		return true
	})
	return out
}

// attrText renders an attribute store through the graph's tag names.
func attrText(g *core.Graph, a *core.Attributes) map[string]string {
	out := map[string]string{}
	for _, k := range a.Keys() {
		name, _ := g.TagName(k)
		v, _ := a.Get(k)
		out[name] = v.String()
	}
	return out
}

// assertSameGraph compares labels, edges and attributes by printed form.
func assertSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.Equal(t, want.NodeCount(), got.NodeCount())
	assert.Equal(t, want.Directed(), got.Directed())
	assert.Equal(t, want.Weighted(), got.Weighted())
	for i := 0; i < want.NodeCount(); i++ {
		assert.Equal(t, labelOf(want, i), labelOf(got, i))
		assert.Equal(t, attrText(want, want.NodeAttributes(i)), attrText(got, got.NodeAttributes(i)))
	}
	assert.ElementsMatch(t, edgeSet(want), edgeSet(got))
	want.ForEachEdge(func(e core.Edge, a *core.Attributes) bool {
		b, ok := got.EdgeAttributes(e.From, e.To)
		require.True(t, ok)
		assert.Equal(t, attrText(want, a), attrText(got, b))
		return true
	})
}

func TestParse_Scenario(t *testing.T) {
	g, err := dot.Parse(`graph { A; B; A -- B [color=red]; }`)
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.Directed())
	assert.Equal(t, "A", labelOf(g, 0))
	assert.Equal(t, "B", labelOf(g, 1))

	a, ok := g.EdgeAttributes(0, 1)
	require.True(t, ok)
	c, ok := a.Get(core.KeyColor)
	require.True(t, ok)
	assert.Equal(t, "red", c.Text())

	back, err := dot.Parse(dot.Marshal(g))
	require.NoError(t, err)
	assertSameGraph(t, g, back)
}

func TestMarshal_Format(t *testing.T) {
	g := core.NewGraph(core.WithName("G"))
	a := g.AddNode(value.Ident("a"))
	b := g.AddNode(value.Ident("b"))
	c := g.AddNode(value.Ident("c"))
	d := g.AddNode(value.Str("d e"))
	g.NodeAttributes(a).Set(core.KeyColor, value.Ident("blue"))
	g.AddEdge(a, b)
	g.AddEdge(a, c)
	attrs := core.NewAttributes()
	attrs.Set(core.KeyStyle, value.Ident("dashed"))
	g.AddEdgeAttrs(a, d, attrs)

	want := strings.Join([]string{
		"graph G {",
		"  a [color=blue];",
		"  b;",
		"  c;",
		`  "d e";`,
		"  a -- { b c };",
		`  a -- "d e" [style=dashed];`,
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, dot.Marshal(g))
}

func TestRoundTrip_WeightedDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 1; i <= 4; i++ {
		g.AddNode(value.Int(int64(i)))
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	g.SetWeight(0, 1, 2.5)
	g.SetWeight(1, 0, 1)
	g.SetWeight(2, 3, -3)
	g.SetWeight(3, 1, 7)
	tag := g.RegisterTag("capacity")
	ea, _ := g.EdgeAttributes(2, 3)
	ea.Set(tag, value.Int(10))
	g.Attributes().Set(core.KeyLabel, value.Str("flow net"))

	text := dot.Marshal(g)
	assert.Contains(t, text, `graph [label="flow net",weighted=true];`)

	back, err := dot.Parse(text)
	require.NoError(t, err)
	assertSameGraph(t, g, back)
	assert.Equal(t, []string{"capacity"}, back.UserTags())
}

func TestRoundTrip_Isolated(t *testing.T) {
	g := core.FromVertices([]value.Value{value.Ident("x"), value.Float(1.5), value.Str("d e")})
	g.AddEdge(2, 0)
	back, err := dot.Parse(dot.Marshal(g))
	require.NoError(t, err)
	assertSameGraph(t, g, back)
}

func TestParse_QuotedAndBareIDsMatch(t *testing.T) {
	g, err := dot.Parse(`graph { "A" -- B; A -- C; "B" -- "3"; 3 -- C }`)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.ElementsMatch(t, []string{"A-B", "A-C", "B-3", "C-3"}, edgeSet(g))
	assert.Equal(t, 0, g.NodeIndex(value.Ident("A")))
	assert.Equal(t, value.KindInt, g.Node(g.NodeIndex(value.Int(3))).Kind())

	g, err = dot.Parse(`graph { "011" -- 11; "1.50" -- 1.5 }`)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.True(t, g.Node(0).Equal(value.Str("011")))
	assert.True(t, g.Node(2).Equal(value.Str("1.50")))
}

func TestRoundTrip_KeywordLabels(t *testing.T) {
	labels := []value.Value{value.Ident("node"), value.Ident("Graph"), value.Ident("x")}
	g := core.FromVertices(labels)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)

	text := dot.Marshal(g)
	assert.Contains(t, text, `"node" -- { x };`)
	back, err := dot.Parse(text)
	require.NoError(t, err)
	assertSameGraph(t, g, back)
	for i, l := range labels {
		assert.Equal(t, i, back.NodeIndex(l), "label %s", l)
	}
}

func TestRoundTrip_Backslashes(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(value.Str(`C:\`))
	b := g.AddNode(value.Str(`say "hi" \n`))
	x := g.AddNode(value.Ident("x"))
	g.AddEdge(a, x)
	g.AddEdge(b, x)
	g.NodeAttributes(x).Set(core.KeyLabel, value.Str(`a\b\`))

	text := dot.Marshal(g)
	assert.Contains(t, text, `"C:\\"`)
	back, err := dot.Parse(text)
	require.NoError(t, err)
	assertSameGraph(t, g, back)
	assert.True(t, back.Node(0).Equal(value.Str(`C:\`)))

	g, err = dot.Parse(`graph { "l\\n" -- "a\\\\b" }`)
	require.NoError(t, err)
	assert.Equal(t, `l\n`, g.Node(0).Text())
	assert.Equal(t, `a\\b`, g.Node(1).Text())
}

func TestParse_Chains(t *testing.T) {
	g, err := dot.Parse(`
		digraph chain {
			a -> b -> c -> d
			e
		}`)
	require.NoError(t, err)
	assert.Equal(t, "chain", g.Name())
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, []string{"a-b", "b-c", "c-d"}, edgeSet(g))
}

func TestParse_SubgraphCrossProduct(t *testing.T) {
	g, err := dot.Parse(`graph {
		subgraph left { a b }
		-- { c d };
		e -- { f g } [color=green]
	}`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a-c", "a-d", "b-c", "b-d", "e-f", "e-g"}, edgeSet(g))
	a, ok := g.EdgeAttributes(g.NodeIndex(value.Ident("e")), g.NodeIndex(value.Ident("g")))
	require.True(t, ok)
	assert.Equal(t, map[string]string{"color": "green"}, attrText(g, a))
}

func TestParse_Defaults(t *testing.T) {
	g, err := dot.Parse(`graph {
		node [shape=box]
		edge [style=bold, weight=2]
		a -- b
		{ node [shape=circle]; c }
		c -- d [weight=5]
	}`)
	require.NoError(t, err)
	shape := func(label string) string {
		v, _ := g.NodeAttributes(g.NodeIndex(value.Ident(label))).Get(core.KeyShape)
		return v.String()
	}
	assert.Equal(t, "box", shape("a"))
	assert.Equal(t, "circle", shape("c"))
	assert.Equal(t, "box", shape("d"))

	assert.True(t, g.Weighted())
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	w, _ = g.Weight(g.NodeIndex(value.Ident("c")), g.NodeIndex(value.Ident("d")))
	assert.Equal(t, 5.0, w)
}

func TestParse_GraphAttributes(t *testing.T) {
	g, err := dot.Parse(`strict graph "my net" {
		// comment
		# another
		/* block
		   comment */
		rankdir = LR
		graph [weighted=true]
		"x y" -- 3 -- -1.5
	}`)
	require.NoError(t, err)
	assert.Equal(t, "my net", g.Name())
	assert.True(t, g.Weighted())
	k, ok := g.TagKey("rankdir")
	require.True(t, ok)
	v, _ := g.Attributes().Get(k)
	assert.Equal(t, "LR", v.String())

	assert.Equal(t, value.KindString, g.Node(0).Kind())
	assert.Equal(t, value.KindInt, g.Node(1).Kind())
	assert.Equal(t, value.KindFloat, g.Node(2).Kind())
	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
}

func TestParse_DuplicateEdgeMerges(t *testing.T) {
	g, err := dot.Parse(`graph { a -- b [color=red]; b -- a [style=dotted]; a -- a }`)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	a, _ := g.EdgeAttributes(0, 1)
	assert.Equal(t, map[string]string{"color": "red", "style": "dotted"}, attrText(g, a))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind error
	}{
		{"empty", ``, dot.ErrSyntax},
		{"no header", `{ a }`, dot.ErrSyntax},
		{"wrong op graph", `graph { a -> b }`, dot.ErrOperatorMismatch},
		{"wrong op digraph", `digraph { a -- b }`, dot.ErrOperatorMismatch},
		{"unterminated string", `graph { "abc }`, dot.ErrUnterminated},
		{"unterminated comment", `graph { a /* x }`, dot.ErrUnterminated},
		{"missing brace", `graph { a -- b`, dot.ErrUnterminated},
		{"dangling op", `graph { a -- ; }`, dot.ErrSyntax},
		{"leading op", `graph { -- a }`, dot.ErrSyntax},
		{"bad attrs", `graph { a [color red] }`, dot.ErrSyntax},
		{"attr without stmt", `graph { [color=red] }`, dot.ErrSyntax},
		{"late strict", `graph { strict }`, dot.ErrSyntax},
		{"nested digraph", `graph { digraph { a } }`, dot.ErrSyntax},
		{"trailing", `graph { a } b`, dot.ErrSyntax},
		{"extra brace", `graph { a } }`, dot.ErrSyntax},
		{"port", `graph { a:n -- b }`, dot.ErrSyntax},
		{"bad number", `graph { 1x }`, dot.ErrSyntax},
		{"unterminated attrs", `graph { a [color=red`, dot.ErrUnterminated},
		{"symbolic weight", `graph { a -- b [weight=abc] }`, dot.ErrSyntax},
		{"symbolic default weight", `graph { edge [weight="x y"]; a -- b }`, dot.ErrSyntax},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := dot.Parse(c.src)
			assert.Nil(t, g)
			require.Error(t, err)
			assert.ErrorIs(t, err, c.kind)
			assert.ErrorIs(t, err, core.ErrDOTRead)
			var pe *dot.ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestFile_RoundTrip(t *testing.T) {
	g, err := dot.Parse(`graph { a -- b -- c -- a }`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tri.dot")
	require.NoError(t, dot.WriteFile(path, g))
	back, err := dot.ReadFile(path)
	require.NoError(t, err)
	assertSameGraph(t, g, back)

	_, err = dot.ReadFile(filepath.Join(t.TempDir(), "missing.dot"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.dot")
	require.NoError(t, os.WriteFile(bad, []byte("graph { a -> b }"), 0o644))
	_, err = dot.ReadFile(bad)
	assert.ErrorIs(t, err, core.ErrDOTRead)
}

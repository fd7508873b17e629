package codec_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/graphkit/codec"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dot"
	"github.com/katalvlaran/graphkit/value"
)

// sample builds a small weighted digraph carrying user tags on every level.
func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithName("sample"))
	rank := g.RegisterTag("rank")
	g.Attributes().Set(g.RegisterTag("origin"), value.Str("unit test"))

	a := g.AddNode(value.Ident("a"))
	b := g.AddNode(value.Int(7))
	c := g.AddNode(value.Str("c d"))
	g.NodeAttributes(b).Set(rank, value.Float(1.5))
	g.NodeAttributes(c).Set(core.KeyPosition, value.List(value.Int(1), value.Int(2)))

	require.True(t, g.AddEdge(a, b))
	require.True(t, g.AddEdge(b, c))
	require.True(t, g.AddEdge(c, a))
	g.SetWeight(a, b, 2)
	g.SetWeight(b, c, 0.25)
	g.SetWeight(c, a, -1)
	attrs, ok := g.EdgeAttributes(c, a)
	require.True(t, ok)
	attrs.Set(core.KeyColor, value.Ident("red"))
	return g
}

func TestValue_RoundTrip(t *testing.T) {
	g := sample(t)
	back, err := codec.FromValue(codec.ToValue(g))
	require.NoError(t, err)

	assert.Equal(t, dot.Marshal(g), dot.Marshal(back))
	assert.Equal(t, g.UserTags(), back.UserTags())
	assert.True(t, back.Directed())
	assert.True(t, back.Weighted())
	assert.Equal(t, "sample", back.Name())
	w, ok := back.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 0.25, w)
}

func TestValue_Layout(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(value.Ident("a"))
	b := g.AddNode(value.Ident("b"))
	g.AddEdge(a, b)

	v := codec.ToValue(g)
	require.Equal(t, value.KindList, v.Kind())
	require.Equal(t, 4, v.Len())
	// vertex a: {label, attrs, {{1, {}}}}
	va := v.Items()[2]
	assert.Equal(t, "a", va.Items()[0].String())
	nbrs := va.Items()[2].Items()
	require.Len(t, nbrs, 1)
	j, ok := nbrs[0].Items()[0].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(1), j)
	assert.Equal(t, 0, v.Items()[3].Items()[2].Len())
}

func TestValue_Undirected(t *testing.T) {
	g, err := dot.Parse(`graph g { a -- b -- c; c -- a [color=blue] }`)
	require.NoError(t, err)
	back, err := codec.FromValue(codec.ToValue(g))
	require.NoError(t, err)
	assert.False(t, back.Directed())
	assert.Equal(t, 3, back.EdgeCount())
	assert.Equal(t, dot.Marshal(g), dot.Marshal(back))
}

func TestFromValue_Malformed(t *testing.T) {
	noFlags := value.List()
	vertex := func(label value.Value, nbrs ...value.Value) value.Value {
		return value.List(label, value.List(), value.List(nbrs...))
	}
	nbr := func(j int64) value.Value { return value.List(value.Int(j), value.List()) }

	cases := []struct {
		name string
		in   value.Value
		want error
	}{
		{"scalar", value.Int(3), codec.ErrMalformed},
		{"short", value.List(noFlags), codec.ErrMalformed},
		{"bad tags", value.List(noFlags, value.Int(1)), codec.ErrMalformed},
		{"bad attr pair", value.List(value.List(value.Int(1)), value.List()), codec.ErrMalformed},
		{"unknown key", value.List(value.List(value.List(value.Int(99), value.Int(1))), value.List()), codec.ErrMalformed},
		{"short vertex", value.List(noFlags, value.List(), value.List(value.Ident("a"))), codec.ErrMalformed},
		{"duplicate label", value.List(noFlags, value.List(), vertex(value.Ident("a")), vertex(value.Ident("a"))), codec.ErrMalformed},
		{"neighbour out of range", value.List(noFlags, value.List(), vertex(value.Ident("a"), nbr(4))), core.ErrMalformedEdge},
		{"loop", value.List(noFlags, value.List(), vertex(value.Ident("a"), nbr(0))), core.ErrMalformedEdge},
		{"duplicate edge", value.List(noFlags, value.List(), vertex(value.Ident("a"), nbr(1), nbr(1)), vertex(value.Ident("b"))), core.ErrMalformedEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.FromValue(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestToValue_Nil(t *testing.T) {
	assert.True(t, codec.ToValue(nil).IsZero())
}

func TestBinary_RoundTrip(t *testing.T) {
	g := sample(t)
	data, err := codec.Marshal(g)
	require.NoError(t, err)

	back, err := codec.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, dot.Marshal(g), dot.Marshal(back))
	assert.Equal(t, []string{"rank", "origin"}, back.UserTags())
}

func TestBinary_Format(t *testing.T) {
	data, err := msgpack.Marshal(map[string]interface{}{"format": "other/9"})
	require.NoError(t, err)
	_, err = codec.Unmarshal(data)
	assert.ErrorIs(t, err, codec.ErrFormat)

	_, err = codec.Unmarshal([]byte{0xc1})
	assert.ErrorIs(t, err, codec.ErrMalformed)

	assert.ErrorIs(t, codec.Encode(&bytes.Buffer{}, nil), core.ErrNotAGraph)
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g"+codec.FileExt)
	g := sample(t)
	require.NoError(t, codec.WriteFile(path, g))

	back, err := codec.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dot.Marshal(g), dot.Marshal(back))

	_, err = codec.ReadFile(filepath.Join(t.TempDir(), "missing.gk"))
	assert.Error(t, err)
}

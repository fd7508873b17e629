// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// Format identifies the binary document layout written by Marshal.
const Format = "graphkit/1"

// FileExt is the conventional extension of binary graph files.
const FileExt = ".gk"

type document struct {
	Format   string      `msgpack:"format"`
	Name     string      `msgpack:"name,omitempty"`
	Directed bool        `msgpack:"directed"`
	Weighted bool        `msgpack:"weighted"`
	Tags     []string    `msgpack:"tags,omitempty"`
	Attrs    []attribute `msgpack:"attrs,omitempty"`
	Vertices []vertex    `msgpack:"vertices"`
	Edges    []edge      `msgpack:"edges"`
}

type vertex struct {
	Label scalar      `msgpack:"label"`
	Attrs []attribute `msgpack:"attrs,omitempty"`
}

type edge struct {
	From  int         `msgpack:"from"`
	To    int         `msgpack:"to"`
	Attrs []attribute `msgpack:"attrs,omitempty"`
}

// attribute is keyed by tag name so that documents do not depend on the
// numbering of user keys.
type attribute struct {
	Tag   string `msgpack:"tag"`
	Value scalar `msgpack:"value"`
}

type scalar struct {
	Kind  value.Kind `msgpack:"k"`
	Int   int64      `msgpack:"i,omitempty"`
	Float float64    `msgpack:"f,omitempty"`
	Text  string     `msgpack:"s,omitempty"`
	Items []scalar   `msgpack:"l,omitempty"`
}

func toScalar(v value.Value) scalar {
	s := scalar{Kind: v.Kind()}
	switch v.Kind() {
	case value.KindInt:
		s.Int, _ = v.AsInt()
	case value.KindFloat:
		s.Float, _ = v.AsFloat()
	case value.KindString, value.KindIdent:
		s.Text, _ = v.AsString()
	case value.KindList:
		for _, it := range v.Items() {
			s.Items = append(s.Items, toScalar(it))
		}
	}
	return s
}

func (s scalar) value() (value.Value, error) {
	switch s.Kind {
	case value.KindNone:
		return value.Value{}, nil
	case value.KindInt:
		return value.Int(s.Int), nil
	case value.KindFloat:
		return value.Float(s.Float), nil
	case value.KindString:
		return value.Str(s.Text), nil
	case value.KindIdent:
		return value.Ident(s.Text), nil
	case value.KindList:
		items := make([]value.Value, len(s.Items))
		for i, it := range s.Items {
			v, err := it.value()
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.List(items...), nil
	}
	return value.Value{}, fmt.Errorf("value kind %d: %w", s.Kind, ErrMalformed)
}

func toAttributes(g *core.Graph, a *core.Attributes) []attribute {
	var out []attribute
	for _, k := range a.Keys() {
		name, ok := g.TagName(k)
		if !ok {
			continue
		}
		v, _ := a.Get(k)
		out = append(out, attribute{Tag: name, Value: toScalar(v)})
	}
	return out
}

func fromAttributes(g *core.Graph, in []attribute) (*core.Attributes, error) {
	a := core.NewAttributes()
	for _, at := range in {
		if at.Tag == "" {
			return nil, fmt.Errorf("empty tag: %w", ErrMalformed)
		}
		v, err := at.Value.value()
		if err != nil {
			return nil, err
		}
		a.Set(g.RegisterTag(at.Tag), v)
	}
	return a, nil
}

func toDocument(g *core.Graph) document {
	doc := document{
		Format:   Format,
		Name:     g.Name(),
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Tags:     g.UserTags(),
		Attrs:    toAttributes(g, g.Attributes()),
		Vertices: make([]vertex, g.NodeCount()),
		Edges:    make([]edge, 0, g.EdgeCount()),
	}
	for i := range doc.Vertices {
		doc.Vertices[i] = vertex{Label: toScalar(g.Node(i)), Attrs: toAttributes(g, g.NodeAttributes(i))}
	}
	g.ForEachEdge(func(e core.Edge, a *core.Attributes) bool {
		doc.Edges = append(doc.Edges, edge{From: e.From, To: e.To, Attrs: toAttributes(g, a)})
		return true
	})
	return doc
}

func fromDocument(doc *document) (*core.Graph, error) {
	if doc.Format != Format {
		return nil, fmt.Errorf("format %q: %w", doc.Format, ErrFormat)
	}
	opts := []core.GraphOption{core.WithDirected(doc.Directed), core.WithName(doc.Name)}
	if doc.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, t := range doc.Tags {
		g.RegisterTag(t)
	}
	ga, err := fromAttributes(g, doc.Attrs)
	if err != nil {
		return nil, fmt.Errorf("graph attributes: %w", err)
	}
	g.Attributes().Merge(ga)

	for i, vd := range doc.Vertices {
		label, err := vd.Label.value()
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		if label.IsZero() || g.NodeIndex(label) >= 0 {
			return nil, fmt.Errorf("vertex %d: label %s: %w", i, label, ErrMalformed)
		}
		attrs, err := fromAttributes(g, vd.Attrs)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		g.AddNodeAttrs(label, attrs)
	}
	for _, ed := range doc.Edges {
		attrs, err := fromAttributes(g, ed.Attrs)
		if err != nil {
			return nil, fmt.Errorf("edge %d-%d: %w", ed.From, ed.To, err)
		}
		if !g.AddEdgeAttrs(ed.From, ed.To, attrs) {
			return nil, fmt.Errorf("edge %d-%d: %w", ed.From, ed.To, core.ErrMalformedEdge)
		}
	}
	return g, nil
}

// Marshal encodes g as a MessagePack document.
func Marshal(g *core.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a document produced by Marshal.
func Unmarshal(data []byte) (*core.Graph, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes g to w as a MessagePack document.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNotAGraph
	}
	return errors.Wrap(msgpack.NewEncoder(w).Encode(toDocument(g)), "codec: encode")
}

// Decode reads one document from r.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "codec: decode: %v", err)
	}
	g, err := fromDocument(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "codec: decode")
	}
	return g, nil
}

// ReadFile decodes the graph stored at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "codec: open %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile writes g to path, replacing any existing file.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "codec: create %s", path)
	}
	if err = Encode(f, g); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "codec: close %s", path)
}

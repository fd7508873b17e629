// SPDX-License-Identifier: MIT

package dot

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// Write emits g as a DOT document:
//
//	graph|digraph [name] {
//	  graph [k=v,...];          graph attributes, weighted=true when weighted
//	  label [k=v,...];          one statement per vertex, in index order
//	  a -- { b c };             unattributed edges stored at a, grouped
//	  a -- d [k=v,...];         one statement per attributed edge
//	}
//
// Vertex statements come first so that re-reading the document assigns the
// same vertex indices.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNotAGraph
	}
	_, err := io.WriteString(w, Marshal(g))
	return errors.Wrap(err, "dot: write")
}

// Marshal returns the DOT text of g.
func Marshal(g *core.Graph) string {
	var b strings.Builder
	kw, op := "graph", " -- "
	if g.Directed() {
		kw, op = "digraph", " -> "
	}
	b.WriteString(kw)
	if g.Name() != "" {
		b.WriteByte(' ')
		b.WriteString(formatID(value.Parse(g.Name())))
	}
	b.WriteString(" {\n")

	ga := g.Attributes().Clone()
	if g.Weighted() {
		ga.Set(core.KeyWeighted, value.Ident("true"))
	}
	if ga.Len() > 0 {
		b.WriteString("  graph ")
		b.WriteString(formatAttrs(g, ga))
		b.WriteString(";\n")
	}

	labels := g.Nodes()
	for i, l := range labels {
		b.WriteString("  ")
		b.WriteString(formatID(l))
		if a := g.NodeAttributes(i); a.Len() > 0 {
			b.WriteByte(' ')
			b.WriteString(formatAttrs(g, a))
		}
		b.WriteString(";\n")
	}

	type attributed struct {
		to    int
		attrs *core.Attributes
	}
	var (
		from  = -1
		plain []int
		rich  []attributed
	)
	emit := func() {
		if from < 0 {
			return
		}
		src := formatID(labels[from])
		if len(plain) > 0 {
			b.WriteString("  " + src + op + "{")
			for _, j := range plain {
				b.WriteString(" " + formatID(labels[j]))
			}
			b.WriteString(" };\n")
		}
		for _, r := range rich {
			b.WriteString("  " + src + op + formatID(labels[r.to]) + " " + formatAttrs(g, r.attrs) + ";\n")
		}
		plain, rich = plain[:0], rich[:0]
	}
	g.ForEachEdge(func(e core.Edge, a *core.Attributes) bool {
		if e.From != from {
			emit()
			from = e.From
		}
		if a.Len() == 0 {
			plain = append(plain, e.To)
		} else {
			rich = append(rich, attributed{to: e.To, attrs: a})
		}
		return true
	})
	emit()

	b.WriteString("}\n")
	return b.String()
}

// formatAttrs prints an attribute list as [k=v,k=v] in key order.
func formatAttrs(g *core.Graph, a *core.Attributes) string {
	var b strings.Builder
	b.WriteByte('[')
	n := 0
	for _, k := range a.Keys() {
		name, ok := g.TagName(k)
		if !ok {
			continue
		}
		v, _ := a.Get(k)
		if n > 0 {
			b.WriteByte(',')
		}
		n++
		b.WriteString(formatID(value.Ident(name)))
		b.WriteByte('=')
		b.WriteString(formatID(v))
	}
	b.WriteByte(']')
	return b.String()
}

// formatID prints v as a DOT ID that reads back as an equal value.
// Identifiers that collide with keywords, non-finite numbers and lists are
// quoted.
func formatID(v value.Value) string {
	switch v.Kind() {
	case value.KindInt:
		return v.String()
	case value.KindFloat:
		if s := v.String(); value.IsNumeral(s) {
			return s
		}
	case value.KindIdent:
		if s, _ := v.AsString(); value.IsIdentifier(s) && !isKeyword(s) {
			return s
		}
	}
	return value.Quote(v.Text())
}

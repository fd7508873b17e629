// SPDX-License-Identifier: MIT

package dot

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// refKind distinguishes the two kinds of edge-chain endpoints.
type refKind uint8

const (
	refVertex refKind = iota
	refSubgraph
)

// chainRef is one endpoint of an edge chain: a vertex index or a subgraph id.
type chainRef struct {
	kind  refKind
	index int
}

// scope is the parse state of one brace block.
type scope struct {
	id      int
	members []int
	seen    map[int]struct{}

	nodeDefaults *core.Attributes
	edgeDefaults *core.Attributes

	chain []chainRef
	// pendingOp is set after an edge operator until its right operand.
	pendingOp bool
	// attrs holds the [..] list of the current statement.
	attrs *core.Attributes
}

func newScope(id int, parent *scope) *scope {
	sc := &scope{id: id, seen: make(map[int]struct{})}
	if parent != nil {
		sc.nodeDefaults = parent.nodeDefaults.Clone()
		sc.edgeDefaults = parent.edgeDefaults.Clone()
	} else {
		sc.nodeDefaults = core.NewAttributes()
		sc.edgeDefaults = core.NewAttributes()
	}
	return sc
}

func (sc *scope) addMember(i int) {
	if _, ok := sc.seen[i]; ok {
		return
	}
	sc.seen[i] = struct{}{}
	sc.members = append(sc.members, i)
}

type parser struct {
	s         *session
	g         *core.Graph
	scopes    []*scope
	subgraphs map[int][]int
	nextID    int
	sawWeight bool
}

// Parse reads a DOT document from a string.
func Parse(src string) (*core.Graph, error) {
	p := &parser{s: newSession(src), subgraphs: make(map[int][]int)}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.g, nil
}

// Read reads a DOT document from r.
func Read(r io.Reader) (*core.Graph, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "dot: read input")
	}
	return Parse(string(b))
}

func (p *parser) top() *scope { return p.scopes[len(p.scopes)-1] }

func (p *parser) parse() error {
	t, err := p.s.next()
	if err != nil {
		return err
	}
	if t.keyword("strict") {
		if t, err = p.s.next(); err != nil {
			return err
		}
	}
	var directed bool
	switch {
	case t.keyword("graph"):
	case t.keyword("digraph"):
		directed = true
	default:
		return p.s.errorf(ErrSyntax, "expected graph or digraph, got %s", t.describe())
	}
	if t, err = p.s.next(); err != nil {
		return err
	}
	name := ""
	if t.isID() {
		name = t.text
		if t, err = p.s.next(); err != nil {
			return err
		}
	}
	if !t.is("{") {
		return p.s.errorf(ErrSyntax, "expected '{', got %s", t.describe())
	}
	p.g = core.NewGraph(core.WithDirected(directed), core.WithName(name))
	p.scopes = []*scope{newScope(p.newID(), nil)}
	if err = p.body(); err != nil {
		return err
	}
	return p.finish()
}

func (p *parser) newID() int {
	p.nextID++
	return p.nextID
}

// body consumes statements until the root block closes.
func (p *parser) body() error {
	for {
		t, err := p.s.next()
		if err != nil {
			return err
		}
		sc := p.top()
		switch {
		case t.kind == tokEOF:
			return p.s.errorf(ErrUnterminated, "missing '}'")

		case t.is("}"):
			if err = p.flush(sc); err != nil {
				return err
			}
			p.scopes = p.scopes[:len(p.scopes)-1]
			if len(p.scopes) == 0 {
				return nil
			}
			p.subgraphs[sc.id] = sc.members
			parent := p.top()
			for _, m := range sc.members {
				parent.addMember(m)
			}
			if err = p.operand(parent, chainRef{kind: refSubgraph, index: sc.id}); err != nil {
				return err
			}

		case t.is(";"):
			if err = p.flush(sc); err != nil {
				return err
			}

		case t.is("{"):
			if err = p.openBlock(sc); err != nil {
				return err
			}

		case t.is("["):
			if len(sc.chain) == 0 || sc.pendingOp || sc.attrs != nil {
				return p.s.errorf(ErrSyntax, "misplaced attribute list")
			}
			if sc.attrs, err = p.attrList(); err != nil {
				return err
			}

		case t.is("--") || t.is("->"):
			if err = p.checkOperator(t); err != nil {
				return err
			}
			if len(sc.chain) == 0 || sc.pendingOp || sc.attrs != nil {
				return p.s.errorf(ErrSyntax, "edge operator %q without left operand", t.text)
			}
			sc.pendingOp = true

		case t.keyword("subgraph"):
			if err = p.openSubgraph(sc); err != nil {
				return err
			}

		case t.keyword("graph") || t.keyword("node") || t.keyword("edge"):
			if err = p.attrStatement(sc, strings.ToLower(t.text)); err != nil {
				return err
			}

		case t.keyword("strict") || t.keyword("digraph"):
			return p.s.errorf(ErrSyntax, "unexpected keyword %q", t.text)

		case t.isID():
			if err = p.idStatement(sc, t); err != nil {
				return err
			}

		default:
			return p.s.errorf(ErrSyntax, "unexpected %s", t.describe())
		}
	}
}

// checkOperator enforces '--' for graphs and '->' for digraphs.
func (p *parser) checkOperator(t token) error {
	want, kind := "--", "graph"
	if p.g.Directed() {
		want, kind = "->", "digraph"
	}
	if t.text != want {
		return p.s.errorf(ErrOperatorMismatch, "%q used in a %s", t.text, kind)
	}
	return nil
}

// endStatement flushes sc when a complete statement is followed by the
// start of a new one without a separator.
func (p *parser) endStatement(sc *scope) error {
	if len(sc.chain) > 0 && !sc.pendingOp {
		return p.flush(sc)
	}
	return nil
}

func (p *parser) openBlock(sc *scope) error {
	if err := p.endStatement(sc); err != nil {
		return err
	}
	p.scopes = append(p.scopes, newScope(p.newID(), sc))
	return nil
}

func (p *parser) openSubgraph(sc *scope) error {
	t, err := p.s.next()
	if err != nil {
		return err
	}
	if t.isID() {
		if t, err = p.s.next(); err != nil {
			return err
		}
	}
	if !t.is("{") {
		return p.s.errorf(ErrSyntax, "expected '{' after subgraph, got %s", t.describe())
	}
	return p.openBlock(sc)
}

// idStatement handles an ID: either `ID = ID` or a vertex reference.
func (p *parser) idStatement(sc *scope, t token) error {
	if err := p.endStatement(sc); err != nil {
		return err
	}
	if len(sc.chain) == 0 {
		nt, err := p.s.peek()
		if err != nil {
			return err
		}
		if nt.is("=") {
			p.s.next()
			v, err := p.s.next()
			if err != nil {
				return err
			}
			if !v.isID() {
				return p.s.errorf(ErrSyntax, "expected value after %q =, got %s", t.text, v.describe())
			}
			if len(p.scopes) == 1 {
				p.graphAttr(t.text, tokenValue(v))
			}
			return nil
		}
	}
	return p.operand(sc, chainRef{kind: refVertex, index: p.vertex(sc, t)})
}

// operand appends ref to the chain of sc.
func (p *parser) operand(sc *scope, ref chainRef) error {
	if err := p.endStatement(sc); err != nil {
		return err
	}
	sc.chain = append(sc.chain, ref)
	sc.pendingOp = false
	return nil
}

// vertex resolves t to a vertex index, creating the vertex with the
// node defaults of sc when needed.
func (p *parser) vertex(sc *scope, t token) int {
	label := tokenValue(t)
	i := p.g.NodeIndex(label)
	if i < 0 {
		i = p.g.AddNodeAttrs(label, sc.nodeDefaults)
	}
	sc.addMember(i)
	return i
}

// attrStatement handles `graph [..]`, `node [..]` and `edge [..]`.
func (p *parser) attrStatement(sc *scope, kind string) error {
	if err := p.endStatement(sc); err != nil {
		return err
	}
	if len(sc.chain) > 0 {
		return p.s.errorf(ErrSyntax, "unexpected keyword %q in edge chain", kind)
	}
	t, err := p.s.next()
	if err != nil {
		return err
	}
	if !t.is("[") {
		return p.s.errorf(ErrSyntax, "expected '[' after %s, got %s", kind, t.describe())
	}
	attrs, err := p.attrList()
	if err != nil {
		return err
	}
	switch kind {
	case "graph":
		if len(p.scopes) == 1 {
			for _, k := range attrs.Keys() {
				v, _ := attrs.Get(k)
				name, _ := p.g.TagName(k)
				p.graphAttr(name, v)
			}
		}
	case "node":
		sc.nodeDefaults.Merge(attrs)
	case "edge":
		sc.edgeDefaults.Merge(attrs)
	}
	return nil
}

// graphAttr applies one graph-level attribute.
func (p *parser) graphAttr(name string, v value.Value) {
	switch name {
	case "weighted":
		p.g.SetWeighted(truthy(v))
	case "directed":
		// Direction is fixed by the graph/digraph header.
	default:
		p.g.Attributes().Set(p.g.RegisterTag(name), v)
	}
}

// attrList reads `k=v` pairs up to the closing ']'; the '[' is consumed.
func (p *parser) attrList() (*core.Attributes, error) {
	attrs := core.NewAttributes()
	for {
		t, err := p.s.next()
		if err != nil {
			return nil, err
		}
		switch {
		case t.kind == tokEOF:
			return nil, p.s.errorf(ErrUnterminated, "unterminated attribute list")
		case t.is("]"):
			return attrs, nil
		case t.is(",") || t.is(";"):
			continue
		case !t.isID():
			return nil, p.s.errorf(ErrSyntax, "expected attribute name, got %s", t.describe())
		}
		eq, err := p.s.next()
		if err != nil {
			return nil, err
		}
		if !eq.is("=") {
			return nil, p.s.errorf(ErrSyntax, "expected '=' after attribute %q, got %s", t.text, eq.describe())
		}
		v, err := p.s.next()
		if err != nil {
			return nil, err
		}
		if !v.isID() {
			return nil, p.s.errorf(ErrSyntax, "expected value for attribute %q, got %s", t.text, v.describe())
		}
		k, val := p.g.RegisterTag(t.text), tokenValue(v)
		if k == core.KeyWeight && !val.IsNumber() {
			return nil, p.s.errorf(ErrSyntax, "weight must be a number, got %s", v.describe())
		}
		attrs.Set(k, val)
	}
}

// flush completes the pending statement of sc: a single vertex receives the
// statement attributes, a chain expands to its pairwise edges.
func (p *parser) flush(sc *scope) error {
	if sc.pendingOp {
		return p.s.errorf(ErrSyntax, "edge operator without right operand")
	}
	switch {
	case len(sc.chain) == 1:
		for _, i := range p.members(sc.chain[0]) {
			p.g.NodeAttributes(i).Merge(sc.attrs)
		}
	case len(sc.chain) > 1:
		for k := 0; k+1 < len(sc.chain); k++ {
			for _, u := range p.members(sc.chain[k]) {
				for _, v := range p.members(sc.chain[k+1]) {
					p.edge(sc, u, v)
				}
			}
		}
	}
	sc.chain = sc.chain[:0]
	sc.attrs = nil
	return nil
}

func (p *parser) members(ref chainRef) []int {
	if ref.kind == refVertex {
		return []int{ref.index}
	}
	return p.subgraphs[ref.index]
}

// edge adds u→v with the scope defaults and statement attributes; a repeated
// edge merges the new attributes into the existing one. Self-loops are dropped.
func (p *parser) edge(sc *scope, u, v int) {
	if u == v {
		return
	}
	attrs := sc.edgeDefaults.Clone()
	attrs.Merge(sc.attrs)
	if attrs.Has(core.KeyWeight) {
		p.sawWeight = true
	}
	if !p.g.AddEdgeAttrs(u, v, attrs) {
		if existing, ok := p.g.EdgeAttributes(u, v); ok {
			existing.Merge(attrs)
		}
	}
}

// finish checks the session state after the root block and settles the
// weight invariant.
func (p *parser) finish() error {
	t, err := p.s.next()
	if err != nil {
		return err
	}
	if t.kind != tokEOF {
		return p.s.errorf(ErrSyntax, "unexpected %s after closing '}'", t.describe())
	}
	if p.s.level != 0 || p.s.inAttrs || p.s.readingValue {
		return p.s.errorf(ErrUnterminated, "incomplete input")
	}
	if p.sawWeight {
		p.g.SetWeighted(true)
	}
	if p.g.Weighted() {
		p.g.ForEachEdge(func(_ core.Edge, a *core.Attributes) bool {
			if !a.Has(core.KeyWeight) {
				a.Set(core.KeyWeight, value.Int(1))
			}
			return true
		})
	}
	return nil
}

// tokenValue converts an ID token to a value. Quoting does not matter:
// "A" and A name the same vertex, and "3" is the number 3. A quoted
// numeral that does not print back the same way ("011", "1.50") stays a
// string.
func tokenValue(t token) value.Value {
	v := value.Parse(t.text)
	if t.kind == tokString && v.IsNumber() && v.String() != t.text {
		return value.Str(t.text)
	}
	return v
}

// truthy interprets a DOT attribute value as a boolean.
func truthy(v value.Value) bool {
	if f, ok := v.AsFloat(); ok {
		return f != 0
	}
	switch strings.ToLower(v.Text()) {
	case "true", "yes", "on":
		return true
	}
	return false
}

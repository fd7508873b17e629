// SPDX-License-Identifier: MIT

// Package dot reads and writes core.Graph values in the DOT graph
// description language.
//
// Supported subset:
//
//	[strict] (graph|digraph) [ID] { stmt* }
//	stmt: ID [attrs]                     vertex statement
//	      ref (--|->) ref ... [attrs]    edge chain, ref = ID or subgraph
//	      (graph|node|edge) [attrs]      attribute statement
//	      ID = ID                        graph attribute
//	      [subgraph [ID]] { stmt* }      subgraph
//
// Statements may be separated by ';' or by juxtaposition. A chain endpoint
// that is a subgraph expands to every vertex of that subgraph, so
// `{a b} -- {c d}` yields four edges. node/edge defaults are scoped to the
// enclosing block and inherited by nested blocks.
//
// Every parse runs in its own session (tokenizer position, nesting level,
// attribute-list and value flags, line counter); there is no package state.
// A parse either succeeds completely or returns a *ParseError; no partial
// graph is ever returned.
//
// Vertex labels and attribute values map to value.Value through
// value.Parse, whether quoted or not: "A" and A are the same vertex. Only
// a quoted numeral that would not print back unchanged ("007") stays a
// String. Inside quotes \" and \\ are escapes. The writer prints values
// so that Marshal followed by Parse reproduces the labels, edges and
// attributes of the graph; a String that reads as an identifier or a
// number comes back as that Ident or number. A weight attribute must be
// numeric.
package dot

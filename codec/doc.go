// SPDX-License-Identifier: MIT

// Package codec converts graphs to and from portable representations.
//
// ToValue and FromValue map a graph onto a nested value.List so that it can
// travel through anything that carries values:
//
//	{ attrs, tags, vertex_0, vertex_1, ... }
//
//	attrs    = { {key, value}, ... }            graph attributes; the name,
//	                                            directed and weighted flags
//	                                            are stored under their
//	                                            reserved keys
//	tags     = { "tag", ... }                   user tags in key order
//	vertex_i = { label, attrs, { {j, attrs}, ... } }
//
// Each edge appears once, in the neighbour list of the endpoint that stores
// it (the smaller index for undirected graphs).
//
// Marshal and Unmarshal use a self-describing MessagePack document keyed by
// tag names, suitable for files (.gk) and the store package.
package codec

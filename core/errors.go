// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors. They form the error taxonomy reported to end users;
//       wrap them with fmt.Errorf("%w") for context and test with errors.Is.

package core

import "errors"

var (
	// ErrNotAGraph indicates that an argument is not a (non-nil) graph.
	ErrNotAGraph = errors.New("core: argument is not a graph")

	// ErrWeightedRequired indicates an operation that needs a weighted graph.
	ErrWeightedRequired = errors.New("core: weighted graph required")

	// ErrUnweightedRequired indicates an operation that needs an unweighted graph.
	ErrUnweightedRequired = errors.New("core: unweighted graph required")

	// ErrDirectedRequired indicates an operation that needs a directed graph.
	ErrDirectedRequired = errors.New("core: directed graph required")

	// ErrUndirectedRequired indicates an operation that needs an undirected graph.
	ErrUndirectedRequired = errors.New("core: undirected graph required")

	// ErrMalformedEdge indicates an edge specification that cannot be used
	// (self-loop, wrong arity, unknown endpoint).
	ErrMalformedEdge = errors.New("core: malformed edge specification")

	// ErrEdgeTypeMixing indicates that edges and arcs were mixed in one input.
	ErrEdgeTypeMixing = errors.New("core: mixing edges and arcs is not allowed")

	// ErrAsymmetricWeights indicates a non-symmetric weight matrix given for an undirected graph.
	ErrAsymmetricWeights = errors.New("core: weight matrix of an undirected graph must be symmetric")

	// ErrNonSquareMatrix indicates a matrix whose shape does not match the vertex count.
	ErrNonSquareMatrix = errors.New("core: matrix must be square and match the vertex count")

	// ErrDOTRead indicates that a DOT document could not be read.
	ErrDOTRead = errors.New("core: failed to read DOT graph")

	// ErrEdgeNotFound indicates a reference to a missing edge or arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrVertexNotFound indicates a reference to a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNodeNotIsolated indicates an attempt to remove a vertex that still has edges
	// through RemoveIsolatedNode.
	ErrNodeNotIsolated = errors.New("core: vertex is not isolated")

	// ErrGraphNotEmpty indicates a copy target that already holds vertices.
	ErrGraphNotEmpty = errors.New("core: target graph is not empty")
)

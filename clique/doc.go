// SPDX-License-Identifier: MIT

// Package clique enumerates the maximal cliques of an undirected core.Graph
// with the Bron–Kerbosch algorithm using Tomita pivoting.
//
// The recursion works on three sorted vertex sets: R (the clique being
// built), P (candidates that extend R) and X (vertices already tried). The
// pivot is the vertex of P∪X with the most neighbours in P, and only the
// vertices of P outside the pivot's neighbourhood are branched on.
//
// Every reported clique is sorted ascending. The enumeration order is fixed
// by vertex indices, so repeated runs give the same sequence.
//
// Complexity: O(3^(V/3)) worst case, which is the number of maximal cliques
// a graph can have; memory is O(V²) for the recursion's set copies.
package clique

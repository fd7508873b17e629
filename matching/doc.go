// SPDX-License-Identifier: MIT

// Package matching computes matchings in undirected core.Graph values.
//
//   - Maximal(g): greedy maximal matching, O(V+E). No edge can be added to
//     the result, but it is not necessarily maximum.
//   - Maximum(g, opts...): Edmonds' blossom algorithm, O(V³). Repeatedly
//     grows an alternating forest from each exposed vertex, contracts odd
//     cycles (blossoms) by relabelling their base, and flips the augmenting
//     path it finds.
//
// A Matching is a list of disjoint canonical edges (i<j).
//
// Errors:
//
//   - core.ErrNotAGraph         if g is nil.
//   - core.ErrUndirectedRequired if g is directed.
//   - ErrInvalidMatching        if an initial matching is not a matching of g.
//   - context errors            if the context passed via WithContext is done.
package matching

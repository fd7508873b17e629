// SPDX-License-Identifier: MIT

// Package store keeps named graphs in a single bbolt database file.
//
// Graphs are serialized with codec.Marshal and kept in one bucket keyed by
// name. A Store is safe for concurrent use; bbolt serializes writers and
// lets readers proceed in parallel.
//
//	s, err := store.Open("graphs.db", store.WithLogger(log))
//	...
//	defer s.Close()
//	err = s.Put("petersen", g)
package store

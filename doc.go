// Package graphkit is an in-memory graph engine: labelled, attributed
// graphs plus the algorithms and tooling around them.
//
// What is in the box?
//
//	• Core model: directed or undirected, optionally weighted graphs with
//	  arbitrary vertex labels and small-integer attribute keys
//	• DOT: a reader for the practical subset of Graphviz DOT and a writer
//	  whose output reads back to the same graph
//	• Matching: greedy maximal and Edmonds blossom maximum matchings
//	• Connectivity: components, cut vertices, blocks and bridges
//	• Cliques: Bron–Kerbosch enumeration of maximal cliques
//	• Layout: force-directed and multilevel spring embedding in 2D or 3D
//	• Generators: classic, symmetric, fractal and random families
//	• Traversal: BFS, DFS, topological order, Dijkstra, Prim and Kruskal
//
// Packages:
//
//	value/        — the label and attribute value type (ints, floats, strings, lists)
//	core/         — Graph, Edge, Attributes and the shared error taxonomy
//	dot/          — DOT parser and writer
//	codec/        — graph ⇄ value list and MessagePack (.gk) serialization
//	matching/     — maximal and maximum cardinality matchings
//	connectivity/ — components and low-link analysis
//	clique/       — maximal clique enumeration
//	layout/       — spring embedders and 2D post-processing
//	builder/      — graph generators
//	bfs/, dfs/    — traversals, topological sort, cycle detection
//	dijkstra/     — weighted shortest paths
//	prim_kruskal/ — minimum spanning trees
//	store/        — named graphs in a bbolt database
//	config/       — YAML configuration of the command
//	cmd/graphkit  — the command line front end
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.LCFNotation("[5,-5]^7"))
//	m, _ := matching.Maximum(g)
//	fmt.Println(m.Size()) // 7, the Heawood graph has a perfect matching
//
//	go install github.com/katalvlaran/graphkit/cmd/graphkit@latest
package graphkit

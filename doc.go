// Package pathkit is a small toolkit for single-source shortest paths
// on weighted, directed graphs.
//
// 🚀 What is pathkit?
//
//	A focused, reusable library with two layers:
//		• graph/    — immutable Vertex, Edge and Graph value types (the data model)
//		• dijkstra/ — the label-setting shortest-path engine with path reconstruction
//
// ✨ Why choose pathkit?
//
//   - Minimal API – construct a graph, run the engine, query paths & distances
//   - Predictable – explicit contracts for unreachable targets, ties and re-runs
//   - Pure values – the graph is an immutable snapshot; engines never share state
//
// Quick ASCII example:
//
//	    A──10──B
//	    │      │
//	    80     20
//	    │      │
//	    D──40──E
//
//	g := graph.New(vertices, edges)
//	eng := dijkstra.New(g)
//	if err := eng.Run(a); err != nil { ... }
//	route := eng.Path(e)        // ["A", "B", "E"]
//	cost, ok := eng.Distance(e) // 30, true
//
// See the package documentation of graph and dijkstra for the full contracts.
package pathkit

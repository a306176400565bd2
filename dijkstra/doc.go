// Package dijkstra provides a label-setting shortest-path engine for
// weighted, directed graphs with non-negative edge weights.
//
// Overview:
//
//   - Engine consumes an immutable graph.Graph snapshot and computes the
//     minimum-cost distance from a single source vertex to every reachable
//     vertex, recording predecessor links for path reconstruction.
//   - Run may be invoked repeatedly on the same Engine with different
//     sources; every invocation rebuilds the run-state from scratch, so no
//     state leaks between runs.
//   - Path and Distance query the results of the most recent Run.
//
// Algorithm:
//
// The engine maintains the classic settled/unsettled partition. Each
// iteration selects the unsettled (frontier) vertex with the smallest
// tentative distance, settles it, and relaxes its outgoing edges against
// every not-yet-settled destination: a strictly smaller candidate distance
// replaces the previous one and updates the predecessor link. Parallel
// edges between the same ordered pair are relaxed independently, so the
// cheapest one wins; self-loops can never strictly improve and are no-ops;
// vertices with no path from the source are never touched and stay absent
// from all results.
//
// Frontier modes:
//
//   - Baseline: minimum selection by linear scan of the frontier and
//     adjacency by linear scan of the full edge list. O(V·E) time, no
//     preprocessing.
//   - WithIndexedFrontier(): a one-time adjacency index plus a changeable
//     int-keyed min-heap drive selection in O((V+E) log V). Final distances
//     are identical to the baseline.
//
// Ties:
//
// When several frontier vertices share the minimum distance, whichever is
// selected first is implementation-defined (map iteration order in the
// baseline, heap order in indexed mode). Final distances are deterministic
// regardless; only the predecessor choice among equal-cost paths may vary
// between runs. Do not rely on a particular tie order.
//
// Path reconstruction:
//
// Path walks predecessor links backward from the target and reverses the
// result. A target with no predecessor entry yields an empty path; note
// that this conflates "target is the source" (a valid zero-length path)
// with "target unreachable". Callers distinguish the two by comparing IDs
// or by checking Distance, which reports 0, true for the source. This
// mirrors the behavior of predecessor-only reconstruction and is kept
// deliberately.
//
// Errors:
//
// Unreachable targets, empty graphs and isolated sources are all normal
// results, never errors. The only error Run can return is
// ErrFrontierCorrupted, a defensive check for a non-empty frontier with no
// selectable minimum; it indicates an implementation bug, not bad input.
// Negative edge weights are out of contract and are not detected: feeding
// them in yields undefined results.
//
// Concurrency:
//
// An Engine owns its run-state exclusively. Concurrent Run calls on one
// Engine require external exclusion; distinct Engines over the same
// graph.Graph may run concurrently without interference.
package dijkstra

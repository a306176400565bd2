// Package graph defines the immutable data model consumed by the
// shortest-path engine: Vertex, Edge and Graph value types.
//
// Overview:
//
//   - Vertex carries a unique ID (its identity) and a display Name.
//     Two vertices are equal iff their IDs match; Name never participates
//     in equality or set membership.
//   - Edge is directed (Source → Destination only) and weighted. Weights
//     are expected to be non-negative; the model performs no validation
//     (see "Validation" below).
//   - Graph is an ordered sequence of vertices and an ordered sequence of
//     edges. Construction copies both sequences in, and accessors return
//     fresh copies, so a Graph is a read-only snapshot: callers may keep
//     mutating their own slices without affecting it.
//
// Validation:
//
// The model is deliberately permissive. Duplicate vertex IDs, edges whose
// endpoints do not appear in the vertex list, and self-loops are all
// accepted silently; they are harmless to the algorithms built on top.
// Negative edge weights are out of contract for shortest-path computation
// and are neither detected nor rejected here.
//
// Concurrency:
//
// All types in this package are plain immutable values. A Graph may be
// shared freely across goroutines once constructed.
package graph
